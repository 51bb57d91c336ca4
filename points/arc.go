package points

import "math"

// Cubic is a cubic Bézier segment: two control points and an end point. The
// start point is implied by the preceding segment.
type Cubic struct {
	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
}

// ArcToCubics approximates the elliptical arc from (x0, y0) to (x, y)
// described by c with cubic Béziers of at most 90 degrees each.
//
// Out-of-range radii are scaled up as SVG requires. A zero radius yields a
// single straight segment, and coincident endpoints yield nothing.
func ArcToCubics(x0, y0 float64, c Curve, x, y float64) []Cubic {
	if x0 == x && y0 == y {
		return nil
	}
	rx, ry := math.Abs(c.Rx), math.Abs(c.Ry)
	if rx == 0 || ry == 0 {
		return []Cubic{{X1: x0, Y1: y0, X2: x, Y2: y, X: x, Y: y}}
	}

	sinPhi, cosPhi := math.Sincos(c.XAxisRotation * math.Pi / 180)

	// Endpoint to center parameterization.
	dx, dy := (x0-x)/2, (y0-y)/2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if c.LargeArc == c.Sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (x0+x)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+y)/2

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)
	if !c.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if c.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	// project maps a point on the unit circle onto the ellipse.
	project := func(u, v float64) (float64, float64) {
		return cx + rx*cosPhi*u - ry*sinPhi*v, cy + rx*sinPhi*u + ry*cosPhi*v
	}

	out := make([]Cubic, 0, n)
	for i := 0; i < n; i++ {
		sin1, cos1 := math.Sincos(theta)
		theta += step
		sin2, cos2 := math.Sincos(theta)

		var seg Cubic
		seg.X1, seg.Y1 = project(cos1-k*sin1, sin1+k*cos1)
		seg.X2, seg.Y2 = project(cos2+k*sin2, sin2-k*cos2)
		if i == n-1 {
			seg.X, seg.Y = x, y
		} else {
			seg.X, seg.Y = project(cos2, sin2)
		}
		out = append(out, seg)
	}
	return out
}

// vectorAngle returns the signed angle from u to v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
