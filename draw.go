package shapesync

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/shapesync/points"
)

// DrawOptions configures Draw. A nil *DrawOptions uses the zero value.
type DrawOptions struct {
	// GeoM maps the root's coordinates onto dst. Element transform
	// attributes compose on top of it. Stroke widths are not scaled.
	GeoM ebiten.GeoM
	// AntiAlias enables anti-aliased triangle rendering.
	AntiAlias bool
	// Mapper resolves leaf geometry with its codec and exclusions. Nil
	// means the default Mapper.
	Mapper *Mapper
}

// paint is the inherited presentation state while walking the tree.
type paint struct {
	fill        Color
	hasFill     bool
	stroke      Color
	hasStroke   bool
	strokeWidth float64
	opacity     float64
	evenOdd     bool
}

var rootPaint = paint{fill: ColorBlack, hasFill: true, strokeWidth: 1, opacity: 1}

// Draw renders the accepted-kind subtree rooted at el onto dst. Leaves are
// filled, then stroked. fill, stroke, stroke-width and fill-rule inherit
// from groups; opacity multiplies down the tree and fill-opacity and
// stroke-opacity apply per leaf. transform attributes compose down the tree.
// Leaves whose geometry fails to resolve are skipped.
func Draw(dst *ebiten.Image, el Element, opts *DrawOptions) {
	if opts == nil {
		opts = &DrawOptions{}
	}
	if opts.Mapper == nil {
		o := *opts
		o.Mapper = defaultMapper
		opts = &o
	}
	drawElement(dst, el, rootPaint, opts.GeoM, opts)
}

func drawElement(dst *ebiten.Image, el Element, parent paint, geoM ebiten.GeoM, opts *DrawOptions) {
	tag := el.Kind()
	if !IsAcceptedKind(tag) {
		return
	}
	p := resolvePaint(el, parent)
	geoM = elementGeoM(el, geoM)
	if tag == KindGroup.String() {
		for _, c := range el.Children() {
			drawElement(dst, c, p, geoM, opts)
		}
		return
	}

	m := opts.Mapper
	pts, err := m.codec.ToPoints(m.leafShape(el))
	if err != nil {
		Logger().Debug("shapesync: skipping leaf with bad geometry", "tag", tag, "err", err)
		return
	}
	path := buildPath(pts, geoM)

	if p.hasFill && tag != KindLine.String() {
		fill := p.fill
		fill.A *= p.opacity * opacityAttr(el, "fill-opacity")
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		rule := ebiten.FillRuleNonZero
		if p.evenOdd {
			rule = ebiten.FillRuleEvenOdd
		}
		drawTriangles(dst, vs, is, fill, rule, opts.AntiAlias)
	}
	if p.hasStroke && p.strokeWidth > 0 {
		stroke := p.stroke
		stroke.A *= p.opacity * opacityAttr(el, "stroke-opacity")
		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width:      float32(p.strokeWidth),
			LineJoin:   vector.LineJoinMiter,
			LineCap:    vector.LineCapButt,
			MiterLimit: 4,
		})
		drawTriangles(dst, vs, is, stroke, ebiten.FillRuleFillAll, opts.AntiAlias)
	}
}

// resolvePaint applies el's presentation attributes on top of parent.
func resolvePaint(el Element, parent paint) paint {
	p := parent
	if v, ok := el.Attribute("fill"); ok {
		p.fill, p.hasFill = ParseColor(v)
	}
	if v, ok := el.Attribute("stroke"); ok {
		p.stroke, p.hasStroke = ParseColor(v)
	}
	if v, ok := el.Attribute("stroke-width"); ok {
		if w, err := strconv.ParseFloat(v, 64); err == nil && w >= 0 {
			p.strokeWidth = w
		}
	}
	if v, ok := el.Attribute("fill-rule"); ok {
		p.evenOdd = v == "evenodd"
	}
	p.opacity *= opacityAttr(el, "opacity")
	return p
}

// opacityAttr returns the clamped value of an opacity attribute, or 1.
func opacityAttr(el Element, name string) float64 {
	v, ok := el.Attribute(name)
	if !ok {
		return 1
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 1
	}
	return clamp01(f)
}

// buildPath converts an outline to a vector path, applying m to every
// coordinate. Arcs are approximated with cubic curves, and subpaths that
// return to their start are closed so strokes join there.
func buildPath(pts points.Points, m ebiten.GeoM) *vector.Path {
	var path vector.Path
	apply := func(x, y float64) (float32, float32) {
		tx, ty := m.Apply(x, y)
		return float32(tx), float32(ty)
	}
	for _, sub := range pts.Subpaths() {
		start := sub[0]
		x, y := apply(start.X, start.Y)
		path.MoveTo(x, y)
		cx, cy := start.X, start.Y
		for _, pt := range sub[1:] {
			switch {
			case pt.Curve == nil:
				x, y := apply(pt.X, pt.Y)
				path.LineTo(x, y)
			case pt.Curve.Type == points.CurveCubic:
				x1, y1 := apply(pt.Curve.X1, pt.Curve.Y1)
				x2, y2 := apply(pt.Curve.X2, pt.Curve.Y2)
				x, y := apply(pt.X, pt.Y)
				path.CubicTo(x1, y1, x2, y2, x, y)
			case pt.Curve.Type == points.CurveQuadratic:
				x1, y1 := apply(pt.Curve.X1, pt.Curve.Y1)
				x, y := apply(pt.X, pt.Y)
				path.QuadTo(x1, y1, x, y)
			case pt.Curve.Type == points.CurveArc:
				for _, seg := range points.ArcToCubics(cx, cy, *pt.Curve, pt.X, pt.Y) {
					x1, y1 := apply(seg.X1, seg.Y1)
					x2, y2 := apply(seg.X2, seg.Y2)
					x, y := apply(seg.X, seg.Y)
					path.CubicTo(x1, y1, x2, y2, x, y)
				}
			}
			cx, cy = pt.X, pt.Y
		}
		if len(sub) > 1 && cx == start.X && cy == start.Y {
			path.Close()
		}
	}
	return &path
}

// drawTriangles tints tessellated vertices with c and draws them with the
// white pixel, as untextured polygon meshes are drawn.
func drawTriangles(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, c Color, rule ebiten.FillRule, antiAlias bool) {
	if len(vs) == 0 || len(is) == 0 || c.A <= 0 {
		return
	}
	r, g, b, a := c.premultiplied()
	for i := range vs {
		vs[i].SrcX = 0.5
		vs[i].SrcY = 0.5
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.FillRule = rule
	op.AntiAlias = antiAlias
	dst.DrawTriangles(vs, is, ensureWhitePixel(), &op)
}

// --- White pixel singleton (no sync.Once; shapesync is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
