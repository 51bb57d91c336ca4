package shapesync

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseMarkup builds nodes owned by t from an SVG/XML fragment and returns
// the first top-level element, detached. Text, comments and processing
// instructions are dropped; elements of every tag are kept so that
// unsupported children are still present in the live tree. Prefixed names
// keep their prefix ("xlink:href").
func ParseMarkup(t *Tree, r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("shapesync: parse markup: %w", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			n := t.NewNode(qualifiedName(tok.Name))
			for _, a := range tok.Attr {
				n.attrs[qualifiedName(a.Name)] = a.Value
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AddChild(n)
			} else if root == nil {
				root = n
			} else {
				return nil, fmt.Errorf("shapesync: parse markup: multiple top-level elements")
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 || stack[len(stack)-1].tag != qualifiedName(tok.Name) {
				return nil, fmt.Errorf("shapesync: parse markup: unexpected </%s>", qualifiedName(tok.Name))
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("shapesync: parse markup: unclosed <%s>", stack[len(stack)-1].tag)
	}
	if root == nil {
		return nil, fmt.Errorf("shapesync: parse markup: no element")
	}
	return root, nil
}

// ParseMarkupString is ParseMarkup over a string.
func ParseMarkupString(t *Tree, s string) (*Node, error) {
	return ParseMarkup(t, strings.NewReader(s))
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// WriteMarkup serializes the subtree rooted at el. Attributes are written in
// sorted order and childless elements self-close, so equal trees produce
// equal output.
func WriteMarkup(w io.Writer, el Element) error {
	bw := bufio.NewWriter(w)
	if err := writeElement(bw, el); err != nil {
		return err
	}
	return bw.Flush()
}

// MarkupString returns the serialized subtree rooted at el.
func MarkupString(el Element) string {
	var b strings.Builder
	_ = WriteMarkup(&b, el)
	return b.String()
}

func writeElement(w *bufio.Writer, el Element) error {
	tag := el.Kind()
	w.WriteByte('<')
	w.WriteString(tag)
	attrs := el.Attributes()
	for _, name := range attrs.Keys() {
		w.WriteByte(' ')
		w.WriteString(name)
		w.WriteString(`="`)
		if err := xml.EscapeText(w, []byte(attrs[name])); err != nil {
			return err
		}
		w.WriteByte('"')
	}
	children := el.Children()
	if len(children) == 0 {
		_, err := w.WriteString("/>")
		return err
	}
	w.WriteByte('>')
	for _, c := range children {
		if err := writeElement(w, c); err != nil {
			return err
		}
	}
	w.WriteString("</")
	w.WriteString(tag)
	_, err := w.WriteString(">")
	return err
}
