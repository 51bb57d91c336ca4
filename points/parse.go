package points

import (
	"fmt"
	"strconv"
)

// Parse reads SVG path data into absolute points.
//
// All path commands are supported in both absolute and relative form.
// Smooth curves (S, T) are expanded to full cubic and quadratic curves, H and
// V become plain points, and Z appends a point at the subpath start unless a
// segment already ended there.
func Parse(d string) (Points, error) {
	sc := scanner{s: d}
	var (
		out      Points
		cx, cy   float64 // current point
		sx, sy   float64 // subpath start
		prev     byte
		ctrlX    float64 // last control point, for S and T reflection
		ctrlY    float64
		hasStart bool
	)

	for {
		sc.skipSeparators()
		if sc.done() {
			break
		}
		cmd := sc.peek()
		if isCommand(cmd) {
			sc.pos++
		} else {
			switch prev {
			case 0:
				return nil, fmt.Errorf("points: path data must start with a command, got %q at %d", cmd, sc.pos)
			case 'Z', 'z':
				return nil, fmt.Errorf("points: unexpected %q after close at %d", cmd, sc.pos)
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			default:
				cmd = prev
			}
		}
		if !hasStart && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("points: path data must start with a moveto, got %q", cmd)
		}

		rel := cmd >= 'a'
		ox, oy := 0.0, 0.0
		if rel {
			ox, oy = cx, cy
		}

		switch cmd {
		case 'M', 'm':
			v, err := sc.numbers(2)
			if err != nil {
				return nil, err
			}
			cx, cy = ox+v[0], oy+v[1]
			sx, sy = cx, cy
			hasStart = true
			out = append(out, Point{X: cx, Y: cy, MoveTo: true})

		case 'L', 'l':
			v, err := sc.numbers(2)
			if err != nil {
				return nil, err
			}
			cx, cy = ox+v[0], oy+v[1]
			out = append(out, Point{X: cx, Y: cy})

		case 'H', 'h':
			v, err := sc.numbers(1)
			if err != nil {
				return nil, err
			}
			cx = ox + v[0]
			out = append(out, Point{X: cx, Y: cy})

		case 'V', 'v':
			v, err := sc.numbers(1)
			if err != nil {
				return nil, err
			}
			cy = oy + v[0]
			out = append(out, Point{X: cx, Y: cy})

		case 'C', 'c':
			v, err := sc.numbers(6)
			if err != nil {
				return nil, err
			}
			c := &Curve{Type: CurveCubic, X1: ox + v[0], Y1: oy + v[1], X2: ox + v[2], Y2: oy + v[3]}
			cx, cy = ox+v[4], oy+v[5]
			ctrlX, ctrlY = c.X2, c.Y2
			out = append(out, Point{X: cx, Y: cy, Curve: c})

		case 'S', 's':
			v, err := sc.numbers(4)
			if err != nil {
				return nil, err
			}
			x1, y1 := cx, cy
			if isCubic(prev) {
				x1, y1 = 2*cx-ctrlX, 2*cy-ctrlY
			}
			c := &Curve{Type: CurveCubic, X1: x1, Y1: y1, X2: ox + v[0], Y2: oy + v[1]}
			cx, cy = ox+v[2], oy+v[3]
			ctrlX, ctrlY = c.X2, c.Y2
			out = append(out, Point{X: cx, Y: cy, Curve: c})

		case 'Q', 'q':
			v, err := sc.numbers(4)
			if err != nil {
				return nil, err
			}
			c := &Curve{Type: CurveQuadratic, X1: ox + v[0], Y1: oy + v[1]}
			cx, cy = ox+v[2], oy+v[3]
			ctrlX, ctrlY = c.X1, c.Y1
			out = append(out, Point{X: cx, Y: cy, Curve: c})

		case 'T', 't':
			v, err := sc.numbers(2)
			if err != nil {
				return nil, err
			}
			x1, y1 := cx, cy
			if isQuadratic(prev) {
				x1, y1 = 2*cx-ctrlX, 2*cy-ctrlY
			}
			c := &Curve{Type: CurveQuadratic, X1: x1, Y1: y1}
			cx, cy = ox+v[0], oy+v[1]
			ctrlX, ctrlY = x1, y1
			out = append(out, Point{X: cx, Y: cy, Curve: c})

		case 'A', 'a':
			c, x, y, err := sc.arc()
			if err != nil {
				return nil, err
			}
			cx, cy = ox+x, oy+y
			out = append(out, Point{X: cx, Y: cy, Curve: c})

		case 'Z', 'z':
			if last := out[len(out)-1]; last.MoveTo || cx != sx || cy != sy {
				out = append(out, Point{X: sx, Y: sy})
			}
			cx, cy = sx, sy
		}
		prev = cmd
	}
	return out, nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isCubic(c byte) bool     { return c == 'C' || c == 'c' || c == 'S' || c == 's' }
func isQuadratic(c byte) bool { return c == 'Q' || c == 'q' || c == 'T' || c == 't' }

// scanner tokenizes path data and point lists. Numbers may be separated by
// whitespace, commas, or nothing at all when the next number starts with a
// sign or a second decimal point ("10-5", ".5.5").
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) done() bool { return sc.pos >= len(sc.s) }
func (sc *scanner) peek() byte { return sc.s[sc.pos] }

func (sc *scanner) skipSeparators() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *scanner) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := sc.number()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (sc *scanner) number() (float64, error) {
	sc.skipSeparators()
	start := sc.pos
	s := sc.s
	i := sc.pos
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		if start >= len(s) {
			return 0, fmt.Errorf("points: expected number at end of input")
		}
		return 0, fmt.Errorf("points: expected number at %d, got %q", start, s[start])
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, fmt.Errorf("points: bad number %q: %w", s[start:i], err)
	}
	sc.pos = i
	return v, nil
}

// flag reads a single-character arc flag. Flags need no separator, so
// "a5,5 0 011,1" is valid.
func (sc *scanner) flag() (bool, error) {
	sc.skipSeparators()
	if sc.done() {
		return false, fmt.Errorf("points: expected arc flag at end of input")
	}
	switch sc.peek() {
	case '0':
		sc.pos++
		return false, nil
	case '1':
		sc.pos++
		return true, nil
	}
	return false, fmt.Errorf("points: expected arc flag at %d, got %q", sc.pos, sc.peek())
}

func (sc *scanner) arc() (*Curve, float64, float64, error) {
	v, err := sc.numbers(3)
	if err != nil {
		return nil, 0, 0, err
	}
	large, err := sc.flag()
	if err != nil {
		return nil, 0, 0, err
	}
	sweep, err := sc.flag()
	if err != nil {
		return nil, 0, 0, err
	}
	xy, err := sc.numbers(2)
	if err != nil {
		return nil, 0, 0, err
	}
	c := &Curve{
		Type:          CurveArc,
		Rx:            v[0],
		Ry:            v[1],
		XAxisRotation: v[2],
		LargeArc:      large,
		Sweep:         sweep,
	}
	return c, xy[0], xy[1], nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
