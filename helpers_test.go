package shapesync

import (
	"fmt"
	"strings"
	"testing"
)

// mutationCounter records attribute writes made through countingElement.
type mutationCounter struct {
	sets    int
	removes int
	log     []string
}

func (c *mutationCounter) reset() {
	c.sets, c.removes, c.log = 0, 0, nil
}

func (c *mutationCounter) setsOf(name string) int {
	n := 0
	for _, entry := range c.log {
		f := strings.Fields(entry)
		if len(f) >= 3 && f[0] == "set" && f[2] == name {
			n++
		}
	}
	return n
}

// countingElement wraps an Element and counts every attribute mutation made
// through it or through the wrapped children it hands out.
type countingElement struct {
	Element
	c *mutationCounter
}

func counting(el Element) (*countingElement, *mutationCounter) {
	c := &mutationCounter{}
	return &countingElement{Element: el, c: c}, c
}

func (e *countingElement) SetAttribute(name, value string) {
	e.c.sets++
	e.c.log = append(e.c.log, fmt.Sprintf("set %s %s %s", e.Kind(), name, value))
	e.Element.SetAttribute(name, value)
}

func (e *countingElement) RemoveAttribute(name string) {
	e.c.removes++
	e.c.log = append(e.c.log, fmt.Sprintf("remove %s %s", e.Kind(), name))
	e.Element.RemoveAttribute(name)
}

func (e *countingElement) Children() []Element {
	kids := e.Element.Children()
	out := make([]Element, len(kids))
	for i, k := range kids {
		out[i] = &countingElement{Element: k, c: e.c}
	}
	return out
}

func mustParse(t testing.TB, tree *Tree, markup string) *Node {
	t.Helper()
	n, err := ParseMarkupString(tree, markup)
	if err != nil {
		t.Fatalf("ParseMarkupString(%q): %v", markup, err)
	}
	return n
}

func attr(t testing.TB, el Element, name string) string {
	t.Helper()
	v, ok := el.Attribute(name)
	if !ok {
		t.Fatalf("<%s> has no %s attribute", el.Kind(), name)
	}
	return v
}
