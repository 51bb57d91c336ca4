package shapesync

// MutationType identifies a change made to a live Node.
type MutationType uint8

const (
	MutationSetAttribute    MutationType = iota // SetAttribute call
	MutationRemoveAttribute                     // attribute deleted
	MutationAddChild                            // child appended or inserted
)

// String returns a short name for the mutation type.
func (t MutationType) String() string {
	switch t {
	case MutationSetAttribute:
		return "set-attribute"
	case MutationRemoveAttribute:
		return "remove-attribute"
	case MutationAddChild:
		return "add-child"
	default:
		return "unknown"
	}
}

// MutationEvent describes a single mutation of a Node owned by a Tree.
type MutationEvent struct {
	Type   MutationType
	NodeID uint32
	Tag    string
	// Attribute fields (MutationSetAttribute, MutationRemoveAttribute)
	Name  string
	Value string
	// Child fields (MutationAddChild)
	ChildID uint32
	Index   int
}

// MutationSink receives every mutation made to a Tree's nodes, in order.
type MutationSink interface {
	Mutated(ev MutationEvent)
}

// MutationFunc adapts a function to MutationSink.
type MutationFunc func(ev MutationEvent)

// Mutated calls f(ev).
func (f MutationFunc) Mutated(ev MutationEvent) { f(ev) }

// Tree owns a root group node and creates nodes that report their mutations
// to an optional MutationSink. It implements [Document].
type Tree struct {
	root  *Node
	sink  MutationSink
	debug bool
}

// NewTree creates a tree with an empty root group.
func NewTree() *Tree {
	t := &Tree{}
	t.root = t.NewNode(KindGroup.String())
	return t
}

// Root returns the tree's root group.
func (t *Tree) Root() *Node {
	return t.root
}

// NewNode creates a detached node that belongs to t.
func (t *Tree) NewNode(tag string) *Node {
	n := NewNode(tag)
	n.tree = t
	return n
}

// CreateElement implements Document.
func (t *Tree) CreateElement(tag string) Element {
	return t.NewNode(tag)
}

// SetMutationSink sets the sink that receives node mutations. Pass nil to
// stop reporting.
func (t *Tree) SetMutationSink(sink MutationSink) {
	t.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, use of disposed
// nodes panics and deep trees or very wide groups are logged as warnings.
func (t *Tree) SetDebugMode(enabled bool) {
	t.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Tree debug flag so that node
// operations (which lack a Tree pointer when detached) can check it cheaply.
// Only valid with a single Tree; multiple Trees with differing debug modes
// will reflect whichever called SetDebugMode last.
var globalDebug bool
