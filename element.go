package shapesync

// Element is the capability surface of a live tree node. The reader, writer
// and reconciler only ever touch a host tree through it, so any retained tree
// (the in-memory [Node], a DOM binding, a scene graph) can be reconciled.
//
// Implementations need not be safe for concurrent use; callers serialize
// access to overlapping subtrees.
type Element interface {
	// Kind returns the host tag name ("g", "path", "text", ...).
	Kind() string
	// Attributes returns a snapshot of the element's attributes.
	Attributes() Attributes
	// Attribute returns the value of name and whether it is set.
	Attribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	// Children returns the element's children in document order, including
	// those of kinds this package does not accept.
	Children() []Element
	AppendChild(child Element)
}

// Document creates live elements. WriteNode uses it to materialize new
// subtrees; the reconciler never creates or removes elements.
type Document interface {
	CreateElement(tag string) Element
}

// acceptedChildren returns el's children of accepted kinds, in order.
func acceptedChildren(el Element) []Element {
	all := el.Children()
	out := make([]Element, 0, len(all))
	for _, c := range all {
		if IsAcceptedKind(c.Kind()) {
			out = append(out, c)
		}
	}
	return out
}
