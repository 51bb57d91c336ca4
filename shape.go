package shapesync

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/phanxgames/shapesync/points"
)

// FrameShape is the normalized form of a live subtree, used as the target of
// UpdateNode. A leaf carries its outline in Points and never carries its
// kind's core attributes in Attributes; a group carries Children. Exactly one
// of Points and Children is non-nil, and Attributes is never nil.
type FrameShape struct {
	Attributes Attributes
	Points     points.Points
	Children   []*FrameShape
}

// NewLeafShape returns a leaf frame shape. A nil pts is stored as an empty
// outline so the result is always a leaf.
func NewLeafShape(attrs Attributes, pts points.Points) *FrameShape {
	if attrs == nil {
		attrs = Attributes{}
	}
	if pts == nil {
		pts = points.Points{}
	}
	return &FrameShape{Attributes: attrs, Points: pts}
}

// NewGroupShape returns a group frame shape with the given children.
func NewGroupShape(attrs Attributes, children ...*FrameShape) *FrameShape {
	if attrs == nil {
		attrs = Attributes{}
	}
	if children == nil {
		children = []*FrameShape{}
	}
	return &FrameShape{Attributes: attrs, Children: children}
}

// IsGroup reports whether fs is a group frame shape.
func (fs *FrameShape) IsGroup() bool {
	return fs.Children != nil
}

// Clone returns a deep copy of fs.
func (fs *FrameShape) Clone() *FrameShape {
	out := &FrameShape{Attributes: fs.Attributes.Clone(), Points: fs.Points.Clone()}
	if fs.Children != nil {
		out.Children = make([]*FrameShape, len(fs.Children))
		for i, c := range fs.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Value is an attribute value coerced to a number where the whole string
// parses as one.
type Value struct {
	Raw     string
	Num     float64
	Numeric bool
}

// ParseValue coerces raw. "10" and "-1.5e3" are numeric; "10px", " 10",
// "NaN" and "" are kept as strings.
func ParseValue(raw string) Value {
	v := Value{Raw: raw}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		v.Num = f
		v.Numeric = true
	}
	return v
}

// String returns the raw attribute value.
func (v Value) String() string { return v.Raw }

// PlainShape is the flattened, attribute-centric form of a live subtree.
// Type is the host tag; leaves hold their core attributes in Geometry as typed
// values and everything else in Attributes; groups hold Shapes.
type PlainShape struct {
	Type       string
	Attributes Attributes
	Geometry   map[string]Value
	Shapes     []*PlainShape
}

// MarshalJSON encodes s as a single flat object: "type", every attribute and
// geometry value (numbers where numeric) in sorted key order, then "shapes"
// for groups. Attributes named "type" or "shapes" are shadowed by the
// structural fields.
func (s *PlainShape) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(s.Attributes)+len(s.Geometry))
	for k, v := range s.Attributes {
		fields[k] = v
	}
	for k, v := range s.Geometry {
		if v.Numeric {
			fields[k] = v.Num
		} else {
			fields[k] = v.Raw
		}
	}
	delete(fields, "type")
	delete(fields, "shapes")

	var b bytes.Buffer
	b.WriteString(`{"type":`)
	if err := writeJSON(&b, s.Type); err != nil {
		return nil, err
	}
	for _, k := range sortedKeys(fields) {
		b.WriteByte(',')
		if err := writeJSON(&b, k); err != nil {
			return nil, err
		}
		b.WriteByte(':')
		if err := writeJSON(&b, fields[k]); err != nil {
			return nil, err
		}
	}
	if s.Shapes != nil {
		b.WriteString(`,"shapes":`)
		if err := writeJSON(&b, s.Shapes); err != nil {
			return nil, err
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(data)
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make(Attributes, len(m))
	for k := range m {
		keys[k] = ""
	}
	return keys.Keys()
}

// geometry converts typed core values back to raw strings for the codec.
func (s *PlainShape) geometry() points.Geometry {
	g := make(points.Geometry, len(s.Geometry))
	for k, v := range s.Geometry {
		g[k] = v.Raw
	}
	return g
}
