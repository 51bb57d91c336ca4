package shapesync

import "fmt"

// UpdateNode mutates the live subtree rooted at el until it matches fs, and
// returns el.
//
// Children are paired purely by position among el's accepted-kind children.
// Target children without a live counterpart, and live children without a
// target, are left alone: UpdateNode never creates, removes or reorders
// elements.
//
// Each node is processed in a fixed order. A leaf first compares the codec's
// rendering of fs.Points with its geometry attribute and writes it only on
// change. A group then reconciles its children. Finally the node's own
// attributes (minus excluded and core names) are diffed against
// fs.Attributes; stale names are removed and changed names set. Attributes
// that already match are never written, so a repeated call with the same fs
// performs no mutations.
//
// Only <path> leaves can take an arbitrary outline. Any other leaf kind
// (rect, circle, polygon and so on) returns ErrUnsupportedKind, even though
// it passes entry validation; replace such leaves with WriteNode instead.
//
// Inputs are validated before this node is mutated. Mutations made by
// already-completed child calls are not undone when a later child fails.
func (m *Mapper) UpdateNode(el Element, fs *FrameShape) (Element, error) {
	if m.validating() {
		if err := checkElement(el); err != nil {
			return nil, err
		}
		if err := checkFrameShape(fs); err != nil {
			return nil, err
		}
		if err := checkPairing(el, fs); err != nil {
			return nil, err
		}
	}

	tag := el.Kind()
	if fs.IsGroup() {
		children := acceptedChildren(el)
		if len(children) != len(fs.Children) {
			Logger().Debug("shapesync: child count mismatch",
				"tag", tag, "live", len(children), "target", len(fs.Children))
		}
		n := min(len(children), len(fs.Children))
		for i := 0; i < n; i++ {
			if _, err := m.UpdateNode(children[i], fs.Children[i]); err != nil {
				return nil, fmt.Errorf("update child %d: %w", i, err)
			}
		}
	} else {
		attr := GeometryAttribute(tag)
		if attr == "" {
			return nil, fmt.Errorf("%w: <%s> cannot take an outline; materialize it with WriteNode", ErrUnsupportedKind, tag)
		}
		next := m.codec.ToPath(fs.Points)
		if cur, ok := el.Attribute(attr); !ok || cur != next {
			el.SetAttribute(attr, next)
		}
	}

	core := CoreAttributeNames(tag)
	current := m.attributes(el).Without(core...)
	next := fs.Attributes
	for _, name := range core {
		if _, ok := next[name]; ok {
			next = next.Without(core...)
			break
		}
	}
	diff := DiffAttributes(current, next)
	for _, name := range diff.Remove {
		el.RemoveAttribute(name)
	}
	for _, name := range diff.Set.Keys() {
		el.SetAttribute(name, diff.Set[name])
	}
	return el, nil
}
