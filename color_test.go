package shapesync

import (
	"math"
	"testing"
)

func colorNear(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#f00", Color{1, 0, 0, 1}, true},
		{"#00ff00", Color{0, 1, 0, 1}, true},
		{"#0000ff80", Color{0, 0, 1, 128.0 / 255}, true},
		{" RED ", Color{1, 0, 0, 1}, true},
		{"white", Color{1, 1, 1, 1}, true},
		{"rgb(255, 0, 0)", Color{1, 0, 0, 1}, true},
		{"rgb(100%, 50%, 0%)", Color{1, 0.5, 0, 1}, true},
		{"rgba(0,0,255,0.5)", Color{0, 0, 1, 0.5}, true},
		{"rgb(300, -5, 0)", Color{1, 0, 0, 1}, true},
		{"transparent", Color{}, true},
		{"none", Color{}, false},
		{"", Color{}, false},
		{"#12345", Color{}, false},
		{"#ggg", Color{}, false},
		{"rgb(1,2)", Color{}, false},
		{"rgb(1,2,x)", Color{}, false},
		{"url(#grad)", Color{}, false},
		{"notacolor", Color{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || (ok && !colorNear(got, tt.want)) {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestColorPremultiplied(t *testing.T) {
	r, g, b, a := Color{1, 0.5, 0, 0.5}.premultiplied()
	if r != 0.5 || g != 0.25 || b != 0 || a != 0.5 {
		t.Errorf("premultiplied = %v %v %v %v, want 0.5 0.25 0 0.5", r, g, b, a)
	}
}
