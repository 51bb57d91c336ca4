package shapesync

import (
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// parseTransform reads an SVG transform list such as
// "translate(10 20) rotate(45)" into an affine matrix [a, b, c, d, tx, ty].
// The functions compose left to right, so the last one applies to points
// first. ok is false when the list is malformed.
func parseTransform(s string) (m [6]float64, ok bool) {
	m = identityTransform
	for {
		s = strings.TrimLeft(s, " \t\r\n,")
		if s == "" {
			return m, true
		}
		open := strings.IndexByte(s, '(')
		end := strings.IndexByte(s, ')')
		if open <= 0 || end < open {
			return identityTransform, false
		}
		name := strings.TrimSpace(s[:open])
		args, valid := transformArgs(s[open+1 : end])
		if !valid {
			return identityTransform, false
		}
		t, valid := transformFunc(name, args)
		if !valid {
			return identityTransform, false
		}
		m = multiplyAffine(m, t)
		s = s[end+1:]
	}
}

func transformArgs(s string) ([]float64, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func transformFunc(name string, v []float64) ([6]float64, bool) {
	switch {
	case name == "matrix" && len(v) == 6:
		return [6]float64{v[0], v[1], v[2], v[3], v[4], v[5]}, true
	case name == "translate" && len(v) == 1:
		return [6]float64{1, 0, 0, 1, v[0], 0}, true
	case name == "translate" && len(v) == 2:
		return [6]float64{1, 0, 0, 1, v[0], v[1]}, true
	case name == "scale" && len(v) == 1:
		return [6]float64{v[0], 0, 0, v[0], 0, 0}, true
	case name == "scale" && len(v) == 2:
		return [6]float64{v[0], 0, 0, v[1], 0, 0}, true
	case name == "rotate" && len(v) == 1:
		return rotation(v[0]), true
	case name == "rotate" && len(v) == 3:
		// Rotate about (cx, cy): translate(cx, cy) rotate(a) translate(-cx, -cy).
		m := multiplyAffine([6]float64{1, 0, 0, 1, v[1], v[2]}, rotation(v[0]))
		return multiplyAffine(m, [6]float64{1, 0, 0, 1, -v[1], -v[2]}), true
	case name == "skewX" && len(v) == 1:
		return [6]float64{1, 0, math.Tan(v[0] * math.Pi / 180), 1, 0, 0}, true
	case name == "skewY" && len(v) == 1:
		return [6]float64{1, math.Tan(v[0] * math.Pi / 180), 0, 1, 0, 0}, true
	}
	return identityTransform, false
}

// rotation returns the matrix rotating by deg degrees.
func rotation(deg float64) [6]float64 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// affineToGeoM converts a [a, b, c, d, tx, ty] matrix to an ebiten.GeoM.
func affineToGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// elementGeoM returns the transform that maps el's coordinates onto the
// canvas, given the transform of its parent. A malformed transform attribute
// is ignored.
func elementGeoM(el Element, parent ebiten.GeoM) ebiten.GeoM {
	v, ok := el.Attribute("transform")
	if !ok {
		return parent
	}
	m, valid := parseTransform(v)
	if !valid {
		Logger().Debug("shapesync: ignoring malformed transform", "tag", el.Kind(), "transform", v)
		return parent
	}
	g := affineToGeoM(m)
	g.Concat(parent)
	return g
}
