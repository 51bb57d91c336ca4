// Package points converts shape geometry to and from ordered point lists.
//
// A [Points] value is the resolved outline of a leaf shape: a sequence of
// [Point]s where each point either starts a new subpath ([Point.MoveTo]) or
// draws to its coordinates from the previous point, optionally along a
// [Curve]. [FromGeometry] builds points from a shape's core attributes,
// [Parse] reads SVG path data, and [Format] renders points back to path data.
package points

import "strconv"

// CurveType selects the segment drawn into a point.
type CurveType uint8

const (
	CurveArc       CurveType = iota + 1 // elliptical arc (A)
	CurveCubic                          // cubic Bézier (C)
	CurveQuadratic                      // quadratic Bézier (Q)
)

// String returns the lowercase curve name.
func (c CurveType) String() string {
	switch c {
	case CurveArc:
		return "arc"
	case CurveCubic:
		return "cubic"
	case CurveQuadratic:
		return "quadratic"
	default:
		return "CurveType(" + strconv.Itoa(int(c)) + ")"
	}
}

// Curve describes the segment leading into a point.
//
// Cubic curves use both control points, quadratic curves use X1/Y1 only and
// arcs use the radius, rotation and flag fields.
type Curve struct {
	Type CurveType

	X1, Y1 float64
	X2, Y2 float64

	Rx, Ry        float64
	XAxisRotation float64
	LargeArc      bool
	Sweep         bool
}

// Point is a single vertex of an outline.
type Point struct {
	X, Y   float64
	MoveTo bool
	Curve  *Curve
}

// Points is an ordered outline. The first point of every subpath has MoveTo
// set.
type Points []Point

// Clone returns a deep copy of p, including curves.
func (p Points) Clone() Points {
	if p == nil {
		return nil
	}
	out := make(Points, len(p))
	for i, pt := range p {
		out[i] = pt
		if pt.Curve != nil {
			c := *pt.Curve
			out[i].Curve = &c
		}
	}
	return out
}

// Equal reports whether p and q describe the same outline.
func (p Points) Equal(q Points) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		a, b := p[i], q[i]
		if a.X != b.X || a.Y != b.Y || a.MoveTo != b.MoveTo {
			return false
		}
		if (a.Curve == nil) != (b.Curve == nil) {
			return false
		}
		if a.Curve != nil && *a.Curve != *b.Curve {
			return false
		}
	}
	return true
}

// Subpaths splits p at every MoveTo point. A leading run without MoveTo is
// returned as its own subpath.
func (p Points) Subpaths() []Points {
	var out []Points
	start := 0
	for i := 1; i < len(p); i++ {
		if p[i].MoveTo {
			out = append(out, p[start:i])
			start = i
		}
	}
	if len(p) > 0 {
		out = append(out, p[start:])
	}
	return out
}
