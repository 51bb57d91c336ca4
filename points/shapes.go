package points

import (
	"fmt"
	"strconv"
	"strings"
)

// Geometry holds the raw core attribute values of a leaf shape, keyed by
// attribute name. Missing numeric attributes read as zero.
type Geometry map[string]string

// FromGeometry resolves the outline of a leaf shape of the given tag.
//
// Circles and ellipses become two arcs starting at the top, rects run
// clockwise from the top-left (with corner arcs when rx or ry is set), lines
// are a single segment, polygons close back to their first point and
// polylines stay open. Paths are parsed from their d attribute.
func FromGeometry(tag string, g Geometry) (Points, error) {
	switch tag {
	case "circle":
		v, err := g.numbers(tag, "cx", "cy", "r")
		if err != nil {
			return nil, err
		}
		return ellipse(v[0], v[1], v[2], v[2]), nil
	case "ellipse":
		v, err := g.numbers(tag, "cx", "cy", "rx", "ry")
		if err != nil {
			return nil, err
		}
		return ellipse(v[0], v[1], v[2], v[3]), nil
	case "line":
		v, err := g.numbers(tag, "x1", "y1", "x2", "y2")
		if err != nil {
			return nil, err
		}
		return Points{{X: v[0], Y: v[1], MoveTo: true}, {X: v[2], Y: v[3]}}, nil
	case "path":
		p, err := Parse(g["d"])
		if err != nil {
			return nil, fmt.Errorf("points: path d: %w", err)
		}
		return p, nil
	case "polygon":
		p, err := ParseList(g["points"])
		if err != nil {
			return nil, fmt.Errorf("points: polygon points: %w", err)
		}
		if len(p) > 0 {
			p = append(p, Point{X: p[0].X, Y: p[0].Y})
		}
		return p, nil
	case "polyline":
		p, err := ParseList(g["points"])
		if err != nil {
			return nil, fmt.Errorf("points: polyline points: %w", err)
		}
		return p, nil
	case "rect":
		v, err := g.numbers(tag, "x", "y", "width", "height", "rx", "ry")
		if err != nil {
			return nil, err
		}
		return rect(v[0], v[1], v[2], v[3], v[4], v[5]), nil
	}
	return nil, fmt.Errorf("points: no geometry for %q", tag)
}

// ParseList reads a polygon/polyline points attribute ("x1,y1 x2,y2 ...").
// The first point starts a subpath.
func ParseList(s string) (Points, error) {
	sc := scanner{s: s}
	var out Points
	for {
		sc.skipSeparators()
		if sc.done() {
			break
		}
		v, err := sc.numbers(2)
		if err != nil {
			return nil, err
		}
		out = append(out, Point{X: v[0], Y: v[1], MoveTo: len(out) == 0})
	}
	return out, nil
}

func (g Geometry) numbers(tag string, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		raw, ok := g[name]
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("points: %s %s=%q is not a number", tag, name, raw)
		}
		out[i] = v
	}
	return out, nil
}

func ellipse(cx, cy, rx, ry float64) Points {
	arc := func() *Curve { return &Curve{Type: CurveArc, Rx: rx, Ry: ry, Sweep: true} }
	return Points{
		{X: cx, Y: cy - ry, MoveTo: true},
		{X: cx, Y: cy + ry, Curve: arc()},
		{X: cx, Y: cy - ry, Curve: arc()},
	}
}

func rect(x, y, w, h, rx, ry float64) Points {
	if rx == 0 && ry == 0 {
		return Points{
			{X: x, Y: y, MoveTo: true},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
			{X: x, Y: y},
		}
	}
	if rx == 0 {
		rx = ry
	}
	if ry == 0 {
		ry = rx
	}
	arc := func() *Curve { return &Curve{Type: CurveArc, Rx: rx, Ry: ry, Sweep: true} }
	return Points{
		{X: x + rx, Y: y, MoveTo: true},
		{X: x + w - rx, Y: y},
		{X: x + w, Y: y + ry, Curve: arc()},
		{X: x + w, Y: y + h - ry},
		{X: x + w - rx, Y: y + h, Curve: arc()},
		{X: x + rx, Y: y + h},
		{X: x, Y: y + h - ry, Curve: arc()},
		{X: x, Y: y + ry},
		{X: x + rx, Y: y, Curve: arc()},
	}
}
