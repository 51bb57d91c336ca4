package points

import (
	"strconv"
	"strings"
)

// Format renders p as SVG path data.
//
// Subpath starts become M commands, straight segments along one axis become H
// or V, other straight segments become L, and curves become A, C or Q. When
// the last point of a subpath returns to its start, a Z is emitted instead of
// (or after, for curves) the closing segment. A subpath with a single point
// is a lone M, and a point repeating its predecessor is an explicit L, so
// Parse(Format(p)) keeps the point count of p.
//
//	Format(Points{{X: 10, Y: 10, MoveTo: true}, {X: 20, Y: 10}}) // "M10,10H20"
func Format(p Points) string {
	var b strings.Builder
	var start Point
	for i, pt := range p {
		first := i == 0 || pt.MoveTo
		last := i == len(p)-1 || p[i+1].MoveTo
		closes := last && pt.X == start.X && pt.Y == start.Y

		if first {
			start = pt
			b.WriteByte('M')
			writePair(&b, pt.X, pt.Y)
			continue
		}

		prev := p[i-1]
		switch {
		case pt.Curve != nil:
			writeCurve(&b, pt)
			if closes {
				b.WriteByte('Z')
			}
		case closes:
			b.WriteByte('Z')
		case pt.X != prev.X && pt.Y != prev.Y:
			b.WriteByte('L')
			writePair(&b, pt.X, pt.Y)
		case pt.X != prev.X:
			b.WriteByte('H')
			b.WriteString(formatNumber(pt.X))
		case pt.Y != prev.Y:
			b.WriteByte('V')
			b.WriteString(formatNumber(pt.Y))
		default:
			b.WriteByte('L')
			writePair(&b, pt.X, pt.Y)
		}
	}
	return b.String()
}

func writeCurve(b *strings.Builder, pt Point) {
	c := pt.Curve
	switch c.Type {
	case CurveArc:
		b.WriteByte('A')
		writeList(b, c.Rx, c.Ry, c.XAxisRotation, flag(c.LargeArc), flag(c.Sweep), pt.X, pt.Y)
	case CurveCubic:
		b.WriteByte('C')
		writeList(b, c.X1, c.Y1, c.X2, c.Y2, pt.X, pt.Y)
	case CurveQuadratic:
		b.WriteByte('Q')
		writeList(b, c.X1, c.Y1, pt.X, pt.Y)
	default:
		b.WriteByte('L')
		writePair(b, pt.X, pt.Y)
	}
}

func writePair(b *strings.Builder, x, y float64) {
	writeList(b, x, y)
}

func writeList(b *strings.Builder, vs ...float64) {
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatNumber(v))
	}
}

func flag(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// formatNumber writes the shortest decimal form that round-trips v.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
