package shapesync

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; shapesync is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the in-memory live tree element. It implements [Element], keeps
// parent links for cycle checks and reports attribute and child mutations to
// the owning [Tree]'s [MutationSink].
type Node struct {
	ID     uint32
	Parent *Node

	tag      string
	attrs    Attributes
	children []*Node
	tree     *Tree

	disposed bool
}

// NewNode creates a detached node with the given tag and no attributes.
func NewNode(tag string) *Node {
	return &Node{ID: nextNodeID(), tag: tag, attrs: Attributes{}}
}

// Kind returns the node's tag name.
func (n *Node) Kind() string {
	return n.tag
}

// Tree returns the tree the node reports mutations to, or nil.
func (n *Node) Tree() *Tree {
	return n.tree
}

// --- Attributes ---

// Attributes returns a copy of the node's attributes.
func (n *Node) Attributes() Attributes {
	return n.attrs.Clone()
}

// Attribute returns the value of name and whether it is set.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttribute sets name to value. Every call is reported to the mutation
// sink, even when the value does not change.
func (n *Node) SetAttribute(name, value string) {
	if globalDebug {
		debugCheckDisposed(n, "SetAttribute")
	}
	n.attrs[name] = value
	n.emit(MutationEvent{Type: MutationSetAttribute, NodeID: n.ID, Tag: n.tag, Name: name, Value: value})
}

// RemoveAttribute deletes name. Removing an absent attribute is a no-op and
// is not reported.
func (n *Node) RemoveAttribute(name string) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveAttribute")
	}
	if _, ok := n.attrs[name]; !ok {
		return
	}
	delete(n.attrs, name)
	n.emit(MutationEvent{Type: MutationRemoveAttribute, NodeID: n.ID, Tag: n.tag, Name: name})
}

// --- Tree manipulation ---

// AppendChild appends child, which must be a *Node.
func (n *Node) AppendChild(child Element) {
	c, ok := child.(*Node)
	if !ok {
		panic("shapesync: cannot append a foreign element to a Node")
	}
	n.AddChild(c)
}

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("shapesync: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("shapesync: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.adopt(child, len(n.children)-1)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("shapesync: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("shapesync: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("shapesync: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.adopt(child, index)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("shapesync: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("shapesync: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.Parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// Children returns the children as Elements. The slice is freshly allocated.
func (n *Node) Children() []Element {
	out := make([]Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// ChildNodes returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) ChildNodes() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.tree = nil
}

// IsDisposed reports whether this node has been disposed. A nil *Node counts
// as disposed.
func (n *Node) IsDisposed() bool {
	return n == nil || n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// adopt moves child's subtree into n's tree and reports the insertion.
func (n *Node) adopt(child *Node, index int) {
	if n.tree != nil && child.tree != n.tree {
		setSubtreeTree(child, n.tree)
	}
	n.emit(MutationEvent{Type: MutationAddChild, NodeID: n.ID, Tag: n.tag, ChildID: child.ID, Index: index})
}

// setSubtreeTree points node and all its descendants at t.
func setSubtreeTree(node *Node, t *Tree) {
	node.tree = t
	for _, child := range node.children {
		setSubtreeTree(child, t)
	}
}

func (n *Node) emit(ev MutationEvent) {
	if n.tree != nil && n.tree.sink != nil {
		n.tree.sink.Mutated(ev)
	}
}
