package shapesync

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseMarkup(t *testing.T) {
	tree := NewTree()
	n, err := ParseMarkup(tree, strings.NewReader(`<?xml version="1.0"?>
<!-- drawing -->
<g id="root" xlink:href="#a">
  <path d="M0,0H1"/>
  <text>hello</text>
</g>`))
	if err != nil {
		t.Fatalf("ParseMarkup: %v", err)
	}
	if n.Kind() != "g" || n.Parent != nil || n.Tree() != tree {
		t.Fatalf("root = <%s> parent=%v, want detached g owned by tree", n.Kind(), n.Parent)
	}
	if v, _ := n.Attribute("xlink:href"); v != "#a" {
		t.Errorf("xlink:href = %q, want #a", v)
	}
	if n.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", n.NumChildren())
	}
	if n.ChildAt(1).Kind() != "text" {
		t.Errorf("child 1 = <%s>, want text kept", n.ChildAt(1).Kind())
	}
	if n.ChildAt(0).Parent != n {
		t.Error("child parent link not set")
	}
}

func TestParseMarkupErrors(t *testing.T) {
	tree := NewTree()
	for _, src := range []string{
		``,
		`just text`,
		`<g><path/>`,
		`<g/><g/>`,
		`<g></path>`,
	} {
		if _, err := ParseMarkupString(tree, src); err == nil {
			t.Errorf("ParseMarkupString(%q) should fail", src)
		}
	}
}

func TestWriteMarkup(t *testing.T) {
	tree := NewTree()
	g := tree.NewNode("g")
	g.SetAttribute("z", "1")
	g.SetAttribute("a", `a<b&"c"`)
	g.AddChild(tree.NewNode("path"))

	var buf bytes.Buffer
	if err := WriteMarkup(&buf, g); err != nil {
		t.Fatalf("WriteMarkup: %v", err)
	}
	want := `<g a="a&lt;b&amp;&#34;c&#34;" z="1"><path/></g>`
	if buf.String() != want {
		t.Errorf("markup = %s, want %s", buf.String(), want)
	}
}

func TestMarkupRoundTrip(t *testing.T) {
	src := `<g fill="red"><circle cx="1" cy="2" r="3"/><g><path d="M0,0H1" title="a&amp;b"/></g></g>`
	tree := NewTree()
	n := mustParse(t, tree, src)
	if got := MarkupString(n); got != src {
		t.Errorf("MarkupString = %s, want %s", got, src)
	}
}
