package shapesync

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/phanxgames/shapesync/points"
)

// --- Geometry ---

func TestUpdateNodeLeafGeometry(t *testing.T) {
	tree := NewTree()
	n := mustParse(t, tree, `<path d="M0,0H10"/>`)

	fs := NewLeafShape(Attributes{}, points.Points{{X: 10, Y: 10, MoveTo: true}, {X: 20, Y: 10}})
	got, err := UpdateNode(n, fs)
	if err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if got != Element(n) {
		t.Error("UpdateNode should return the same element")
	}
	if d := attr(t, n, "d"); d != "M10,10H20" {
		t.Errorf("d = %q, want %q", d, "M10,10H20")
	}
}

func TestUpdateNodeUnchangedGeometryNotWritten(t *testing.T) {
	tree := NewTree()
	n := mustParse(t, tree, `<path d="M10,10H20" fill="red"/>`)
	el, c := counting(n)

	fs := NewLeafShape(Attributes{"fill": "red"}, points.Points{{X: 10, Y: 10, MoveTo: true}, {X: 20, Y: 10}})
	if _, err := UpdateNode(el, fs); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if c.sets != 0 || c.removes != 0 {
		t.Errorf("mutations = %v, want none", c.log)
	}
}

// --- Attributes ---

func TestUpdateNodeAttributes(t *testing.T) {
	tree := NewTree()
	n := mustParse(t, tree, `<path d="M0,0H1" fill="yellow" stroke="blue" opacity="1"/>`)
	el, c := counting(n)

	fs := NewLeafShape(Attributes{"fill": "red", "class": "potato", "opacity": "1"},
		points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 1, Y: 0}})
	if _, err := UpdateNode(el, fs); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}

	want := Attributes{"d": "M0,0H1", "fill": "red", "class": "potato", "opacity": "1"}
	if got := n.Attributes(); len(got) != len(want) {
		t.Errorf("attributes = %v, want %v", got, want)
	} else {
		for k, v := range want {
			if got[k] != v {
				t.Errorf("%s = %q, want %q", k, got[k], v)
			}
		}
	}
	if c.setsOf("opacity") != 0 {
		t.Error("unchanged opacity should not be written")
	}
	if c.removes != 1 {
		t.Errorf("removes = %d, want 1 (stroke)", c.removes)
	}
}

func TestUpdateNodeIsMinimal(t *testing.T) {
	tree := NewTree()
	n := mustParse(t, tree, `<path d="M0,0H5" fill="red" stroke="blue" stroke-width="2"/>`)
	el, c := counting(n)

	fs := NewLeafShape(Attributes{"fill": "red", "stroke": "green", "stroke-width": "2"},
		points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 5, Y: 0}})
	if _, err := UpdateNode(el, fs); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if c.sets != 1 || c.setsOf("stroke") != 1 {
		t.Errorf("mutations = %v, want a single stroke write", c.log)
	}
}

func TestUpdateNodeIdempotent(t *testing.T) {
	tree := NewTree()
	g := mustParse(t, tree, `<g fill="blue"><path d="M0,0H1"/><path d="M0,0V1" class="a"/></g>`)
	el, c := counting(g)

	fs := NewGroupShape(Attributes{"fill": "red", "opacity": "0.5"},
		NewLeafShape(Attributes{"stroke": "black"}, points.Points{{X: 1, Y: 1, MoveTo: true}, {X: 4, Y: 5}}),
		NewLeafShape(Attributes{}, points.Points{{X: 2, Y: 2, MoveTo: true}, {X: 2, Y: 8}}),
	)
	if _, err := UpdateNode(el, fs); err != nil {
		t.Fatalf("first UpdateNode: %v", err)
	}
	if c.sets == 0 {
		t.Fatal("first call should mutate")
	}

	c.reset()
	if _, err := UpdateNode(el, fs); err != nil {
		t.Fatalf("second UpdateNode: %v", err)
	}
	if c.sets != 0 || c.removes != 0 {
		t.Errorf("second call mutations = %v, want none", c.log)
	}
}

func TestUpdateNodeKeepsExcludedAttributes(t *testing.T) {
	tree := NewTree()
	g := mustParse(t, tree, `<g xmlns="http://www.w3.org/2000/svg" fill="red"></g>`)

	if _, err := UpdateNode(g, NewGroupShape(Attributes{})); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if _, ok := g.Attribute("xmlns"); !ok {
		t.Error("excluded xmlns attribute should survive reconciliation")
	}
	if _, ok := g.Attribute("fill"); ok {
		t.Error("fill should be removed")
	}
}

func TestUpdateNodeIgnoresGeometryNameInAttributes(t *testing.T) {
	tree := NewTree()
	n := mustParse(t, tree, `<path d="M0,0H1"/>`)
	fs := NewLeafShape(Attributes{"d": "M9,9H99"}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 3, Y: 0}})
	if _, err := UpdateNode(n, fs); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if d := attr(t, n, "d"); d != "M0,0H3" {
		t.Errorf("d = %q, want geometry from points", d)
	}
}

// --- Groups ---

func TestUpdateNodeGroupWithChildren(t *testing.T) {
	tree := NewTree()
	g := mustParse(t, tree, `<g fill="blue"><path d="M0,0H1"/><path d="M0,0H2"/></g>`)

	fs := NewGroupShape(Attributes{"fill": "red"},
		NewLeafShape(Attributes{}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 0, Y: 10}}),
		NewLeafShape(Attributes{}, points.Points{{X: 5, Y: 5, MoveTo: true}, {X: 6, Y: 7}}),
	)
	if _, err := UpdateNode(g, fs); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if fill := attr(t, g, "fill"); fill != "red" {
		t.Errorf("group fill = %q, want red", fill)
	}
	if d := attr(t, g.ChildAt(0), "d"); d != "M0,0V10" {
		t.Errorf("child 0 d = %q, want M0,0V10", d)
	}
	if d := attr(t, g.ChildAt(1), "d"); d != "M5,5L6,7" {
		t.Errorf("child 1 d = %q, want M5,5L6,7", d)
	}
}

func TestUpdateNodeAlignsByPosition(t *testing.T) {
	tree := NewTree()
	g := mustParse(t, tree, `<g><path id="a" d="M0,0H1"/><path id="b" d="M0,0H2"/></g>`)
	a, b := g.ChildAt(0), g.ChildAt(1)

	// Target lists b's description first; it must land on live child 0.
	fs := NewGroupShape(Attributes{},
		NewLeafShape(Attributes{"id": "b"}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 2, Y: 0}}),
		NewLeafShape(Attributes{"id": "a"}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 1, Y: 0}}),
	)
	if _, err := UpdateNode(g, fs); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if g.ChildAt(0) != a || g.ChildAt(1) != b {
		t.Fatal("children must not be reordered")
	}
	if id, d := attr(t, a, "id"), attr(t, a, "d"); id != "b" || d != "M0,0H2" {
		t.Errorf("live child 0 = (id %q, d %q), want (b, M0,0H2)", id, d)
	}
	if id, d := attr(t, b, "id"), attr(t, b, "d"); id != "a" || d != "M0,0H1" {
		t.Errorf("live child 1 = (id %q, d %q), want (a, M0,0H1)", id, d)
	}
}

func TestUpdateNodeSkipsUnsupportedChildren(t *testing.T) {
	tree := NewTree()
	g := mustParse(t, tree, `<g><text x="1">hi</text><path d="M0,0H1"/></g>`)

	fs := NewGroupShape(Attributes{},
		NewLeafShape(Attributes{}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 0, Y: 4}}),
	)
	if _, err := UpdateNode(g, fs); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if d := attr(t, g.ChildAt(1), "d"); d != "M0,0V4" {
		t.Errorf("path d = %q, want M0,0V4", d)
	}
	if x := attr(t, g.ChildAt(0), "x"); x != "1" {
		t.Errorf("text x = %q, want untouched 1", x)
	}
}

func TestUpdateNodeChildCountMismatch(t *testing.T) {
	tree := NewTree()

	// More live children than targets: the extra child is untouched.
	g := mustParse(t, tree, `<g><path d="M0,0H1"/><path d="M0,0H2" fill="red"/></g>`)
	fs := NewGroupShape(Attributes{},
		NewLeafShape(Attributes{}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 9, Y: 0}}),
	)
	if _, err := UpdateNode(g, fs); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if d := attr(t, g.ChildAt(1), "d"); d != "M0,0H2" {
		t.Errorf("extra live child d = %q, want untouched", d)
	}
	if fill := attr(t, g.ChildAt(1), "fill"); fill != "red" {
		t.Errorf("extra live child fill = %q, want untouched", fill)
	}

	// More targets than live children: nothing is created.
	fs = NewGroupShape(Attributes{},
		NewLeafShape(Attributes{}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 9, Y: 0}}),
		NewLeafShape(Attributes{}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 8, Y: 0}}),
		NewLeafShape(Attributes{}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 7, Y: 0}}),
	)
	if _, err := UpdateNode(g, fs); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if g.NumChildren() != 2 {
		t.Errorf("NumChildren = %d, want 2", g.NumChildren())
	}
	if d := attr(t, g.ChildAt(1), "d"); d != "M0,0H8" {
		t.Errorf("child 1 d = %q, want M0,0H8", d)
	}
}

func TestUpdateNodeLogsChildCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	tree := NewTree()
	g := mustParse(t, tree, `<g><path d="M0,0H1"/></g>`)
	if _, err := UpdateNode(g, NewGroupShape(Attributes{})); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if !strings.Contains(buf.String(), "child count mismatch") {
		t.Errorf("log = %q, want child count mismatch record", buf.String())
	}
}

// --- Validation ---

func TestUpdateNodeRejectsMalformedFrameShape(t *testing.T) {
	tree := NewTree()
	n := mustParse(t, tree, `<path d="M0,0H10" fill="red"/>`)
	el, c := counting(n)

	_, err := UpdateNode(el, &FrameShape{Attributes: Attributes{}})
	if !errors.Is(err, ErrMalformedFrameShape) {
		t.Fatalf("err = %v, want ErrMalformedFrameShape", err)
	}
	if c.sets != 0 || c.removes != 0 {
		t.Errorf("mutations = %v, want none", c.log)
	}
}

func TestUpdateNodeValidationErrors(t *testing.T) {
	tree := NewTree()
	leaf := NewLeafShape(Attributes{}, points.Points{{X: 0, Y: 0, MoveTo: true}})
	disposed := tree.NewNode("path")
	disposed.Dispose()

	tests := []struct {
		name string
		el   Element
		fs   *FrameShape
		want error
	}{
		{"nil element", nil, leaf, ErrNotALiveNode},
		{"nil node", (*Node)(nil), leaf, ErrNotALiveNode},
		{"disposed node", disposed, leaf, ErrNotALiveNode},
		{"unsupported kind", mustParse(t, tree, `<text/>`), leaf, ErrUnsupportedKind},
		{"rect cannot take outline", mustParse(t, tree, `<rect width="1" height="1"/>`), leaf, ErrUnsupportedKind},
		{"nil frame shape", mustParse(t, tree, `<path/>`), nil, ErrMalformedFrameShape},
		{"missing attributes", mustParse(t, tree, `<path/>`), &FrameShape{Points: points.Points{}}, ErrMalformedFrameShape},
		{
			"both points and children",
			mustParse(t, tree, `<path/>`),
			&FrameShape{Attributes: Attributes{}, Points: points.Points{}, Children: []*FrameShape{}},
			ErrMalformedFrameShape,
		},
		{"group shape for leaf", mustParse(t, tree, `<path/>`), NewGroupShape(nil), ErrMalformedFrameShape},
		{"leaf shape for group", mustParse(t, tree, `<g/>`), leaf, ErrMalformedFrameShape},
		{
			"nil child",
			mustParse(t, tree, `<g><path/></g>`),
			&FrameShape{Attributes: Attributes{}, Children: []*FrameShape{nil}},
			ErrMalformedFrameShape,
		},
		{
			"malformed child",
			mustParse(t, tree, `<g><path/></g>`),
			NewGroupShape(nil, &FrameShape{Attributes: Attributes{}}),
			ErrMalformedFrameShape,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UpdateNode(tt.el, tt.fs)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Errorf("result = %v, want nil on error", got)
			}
		})
	}
}

func TestUpdateNodeDeepErrorKeepsEarlierSiblingMutations(t *testing.T) {
	tree := NewTree()
	g := mustParse(t, tree, `<g><path d="M0,0H1"/><g><path d="M0,0H2"/></g></g>`)

	fs := NewGroupShape(Attributes{},
		NewLeafShape(Attributes{}, points.Points{{X: 0, Y: 0, MoveTo: true}, {X: 5, Y: 0}}),
		NewGroupShape(Attributes{}, &FrameShape{Attributes: Attributes{}}),
	)
	_, err := UpdateNode(g, fs)
	if !errors.Is(err, ErrMalformedFrameShape) {
		t.Fatalf("err = %v, want ErrMalformedFrameShape", err)
	}
	if !strings.Contains(err.Error(), "update child 1") {
		t.Errorf("err = %q, want child index context", err)
	}
	if d := attr(t, g.ChildAt(0), "d"); d != "M0,0H5" {
		t.Errorf("completed sibling d = %q, want M0,0H5 (not rolled back)", d)
	}
	if d := attr(t, g.ChildAt(1).ChildAt(0), "d"); d != "M0,0H2" {
		t.Errorf("failed subtree d = %q, want untouched", d)
	}
}

func TestUpdateNodeValidationOff(t *testing.T) {
	tree := NewTree()
	n := mustParse(t, tree, `<path d="M0,0H10"/>`)
	m := New(Config{Validation: ValidationOff})

	if _, err := m.UpdateNode(n, &FrameShape{Attributes: Attributes{}}); err != nil {
		t.Fatalf("UpdateNode with validation off: %v", err)
	}
	if d := attr(t, n, "d"); d != "" {
		t.Errorf("d = %q, want empty outline", d)
	}
}

func TestSetValidationControlsDefaultMapper(t *testing.T) {
	SetValidation(false)
	defer SetValidation(true)
	if ValidationEnabled() {
		t.Fatal("ValidationEnabled should be false")
	}

	tree := NewTree()
	n := mustParse(t, tree, `<path d="M0,0H10"/>`)
	if _, err := UpdateNode(n, &FrameShape{Attributes: Attributes{}}); err != nil {
		t.Errorf("err = %v, want validation skipped", err)
	}

	m := New(Config{Validation: ValidationOn})
	if _, err := m.UpdateNode(n, &FrameShape{Attributes: Attributes{}}); !errors.Is(err, ErrMalformedFrameShape) {
		t.Errorf("ValidationOn mapper: err = %v, want ErrMalformedFrameShape", err)
	}
}

// --- Custom codec ---

type fixedCodec struct{ path string }

func (c fixedCodec) ToPoints(*PlainShape) (points.Points, error) { return points.Points{}, nil }
func (c fixedCodec) ToPath(points.Points) string                { return c.path }

func TestUpdateNodeUsesConfiguredCodec(t *testing.T) {
	tree := NewTree()
	n := mustParse(t, tree, `<path d="M0,0H10"/>`)
	m := New(Config{Codec: fixedCodec{path: "M1,1Z"}})

	if _, err := m.UpdateNode(n, NewLeafShape(nil, nil)); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if d := attr(t, n, "d"); d != "M1,1Z" {
		t.Errorf("d = %q, want codec output", d)
	}
}

func TestUpdateNodeRejectsOwnReadOfNonPathLeaf(t *testing.T) {
	tree := NewTree()
	n := mustParse(t, tree, `<rect width="4" height="2" fill="red"/>`)
	fs, err := ReadFrameShape(n)
	if err != nil {
		t.Fatalf("ReadFrameShape: %v", err)
	}
	c, counter := counting(n)
	if _, err := UpdateNode(c, fs); !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("err = %v, want ErrUnsupportedKind", err)
	}
	if counter.sets+counter.removes != 0 {
		t.Errorf("rejected update mutated: %v", counter.log)
	}

	// WriteNode materializes the same frame shape as a path.
	out, err := WriteNode(tree, fs)
	if err != nil {
		t.Fatalf("WriteNode: %v", err)
	}
	if out.Kind() != "path" || attr(t, out, "d") != "M0,0H4V2H0Z" {
		t.Errorf("written <%s d=%q>, want rect outline path", out.Kind(), attr(t, out, "d"))
	}
}
