// Package shapesync maps live trees of vector shape nodes to value snapshots
// and reconciles live trees in place.
//
// A live tree is anything implementing [Element]: the in-memory [Node] and
// [Tree] provided here, or a binding to another retained tree. Accepted kinds
// are g, circle, ellipse, line, path, polygon, polyline and rect; children of
// other kinds are ignored everywhere.
//
// # Value forms
//
// A [FrameShape] separates geometry from everything else. Leaves carry their
// outline as [points.Points] and their remaining attributes; groups carry
// child frame shapes. An animation driver interpolates frame shapes and hands
// each frame to [UpdateNode].
//
// A [PlainShape] is the flattened form: a type tag, attributes, typed core
// geometry for leaves and child shapes for groups. It marshals to a single
// flat JSON object.
//
// # Operations
//
//	tree := shapesync.NewTree()
//	src, _ := shapesync.ParseMarkupString(tree, `<rect width="10" height="10" fill="red"/>`)
//
//	fs, _ := shapesync.ReadFrameShape(src)          // live -> frame shape
//	el, _ := shapesync.WriteNode(tree, fs)          // frame shape -> new <path>
//	tree.Root().AppendChild(el)
//
//	// every tick:
//	shapesync.UpdateNode(el, nextFrame)             // minimal in-place mutation
//
// [UpdateNode] pairs children by position only and never creates or removes
// elements. It writes an attribute only when its value changes, so calling it
// twice with the same frame shape leaves the tree untouched the second time.
//
// # Validation
//
// The public operations validate their inputs eagerly and return errors
// wrapping [ErrNotALiveNode], [ErrUnsupportedKind] or [ErrMalformedFrameShape].
// Hot loops may switch validation off with [SetValidation] or
// [Config.Validation].
//
// # Rendering
//
// [Draw] fills and strokes a live tree onto an [ebiten.Image], honoring
// transform attributes and inherited paint. It is enough to preview
// reconciled frames in an Ebitengine game loop.
package shapesync
