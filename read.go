package shapesync

import (
	"fmt"

	"github.com/phanxgames/shapesync/points"
)

// ReadFrameShape returns the frame shape of the live subtree rooted at el.
//
// Groups keep all their attributes and read every accepted-kind child in
// order. Leaves split their attributes: core attributes are coerced and run
// through the codec to produce Points, the rest become Attributes. Excluded
// host attributes are dropped everywhere. A leaf without geometry reads as
// an empty, non-nil Points.
//
// el must be a live element of an accepted kind.
func (m *Mapper) ReadFrameShape(el Element) (*FrameShape, error) {
	if m.validating() {
		if err := checkElement(el); err != nil {
			return nil, err
		}
	}
	return m.readFrameShape(el)
}

func (m *Mapper) readFrameShape(el Element) (*FrameShape, error) {
	tag := el.Kind()
	if tag == KindGroup.String() {
		children := m.readableChildren(el)
		fs := &FrameShape{
			Attributes: m.attributes(el),
			Children:   make([]*FrameShape, 0, len(children)),
		}
		for _, c := range children {
			child, err := m.readFrameShape(c)
			if err != nil {
				return nil, err
			}
			fs.Children = append(fs.Children, child)
		}
		return fs, nil
	}

	leaf := m.leafShape(el)
	pts, err := m.codec.ToPoints(leaf)
	if err != nil {
		return nil, fmt.Errorf("shapesync: read <%s> geometry: %w", tag, err)
	}
	if pts == nil {
		// A leaf with no geometry is still a leaf.
		pts = points.Points{}
	}
	return &FrameShape{Attributes: leaf.Attributes, Points: pts}, nil
}

// ReadPlainShape returns the flattened form of the live subtree rooted at el.
// Traversal matches ReadFrameShape; leaves keep their core attributes as
// typed Geometry instead of resolving them to points.
func (m *Mapper) ReadPlainShape(el Element) (*PlainShape, error) {
	if m.validating() {
		if err := checkElement(el); err != nil {
			return nil, err
		}
	}
	return m.readPlainShape(el), nil
}

func (m *Mapper) readPlainShape(el Element) *PlainShape {
	tag := el.Kind()
	if tag != KindGroup.String() {
		return m.leafShape(el)
	}
	children := m.readableChildren(el)
	s := &PlainShape{
		Type:       tag,
		Attributes: m.attributes(el),
		Shapes:     make([]*PlainShape, 0, len(children)),
	}
	for _, c := range children {
		s.Shapes = append(s.Shapes, m.readPlainShape(c))
	}
	return s
}

// leafShape splits a leaf's attributes into typed core geometry and generic
// attributes.
func (m *Mapper) leafShape(el Element) *PlainShape {
	tag := el.Kind()
	attrs := m.attributes(el)
	s := &PlainShape{Type: tag, Attributes: attrs, Geometry: map[string]Value{}}
	for _, name := range CoreAttributeNames(tag) {
		if v, ok := attrs[name]; ok {
			s.Geometry[name] = ParseValue(v)
			delete(attrs, name)
		}
	}
	return s
}

// readableChildren returns el's accepted-kind children, logging the rest.
func (m *Mapper) readableChildren(el Element) []Element {
	all := el.Children()
	out := make([]Element, 0, len(all))
	for _, c := range all {
		if tag := c.Kind(); !IsAcceptedKind(tag) {
			Logger().Debug("shapesync: skipping child of unsupported kind", "tag", tag)
			continue
		}
		out = append(out, c)
	}
	return out
}
