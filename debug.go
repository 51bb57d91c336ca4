package shapesync

import "fmt"

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("shapesync debug: %s on disposed <%s> node", op, n.tag))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 64

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("shapesync: tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "tag", n.tag, "id", n.ID)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("shapesync: node child count exceeds threshold",
			"children", len(n.children), "threshold", debugMaxChildCount, "tag", n.tag, "id", n.ID)
	}
}
