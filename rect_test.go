package sdl3

import (
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero", Rect{}, true},
		{"negative width", Rect{0, 0, -1, 10}, true},
		{"zero height", Rect{0, 0, 10, 0}, true},
		{"normal", Rect{5, 5, 10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{15, 15}, true},
		{"top-left corner is inside", Point{10, 10}, true},
		{"bottom-right corner is outside", Point{30, 30}, false},
		{"left of rect", Point{9, 15}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Rect
		want    Rect
		overlap bool
	}{
		{"overlapping", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, Rect{5, 5, 5, 5}, true},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, Rect{}, false},
		{"touching edges do not overlap", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, Rect{}, false},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, Rect{10, 10, 5, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.overlap || got != tt.want {
				t.Errorf("Intersect() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.overlap)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{20, 20, 10, 10}
	if got := a.Union(b); got != (Rect{0, 0, 30, 30}) {
		t.Errorf("Union() = %v", got)
	}
	// Empty rects contribute nothing.
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %v, want %v", got, a)
	}
}

func TestColorRGBA(t *testing.T) {
	c := Color{R: 255, G: 128, B: 0, A: 255}
	r, g, b, a := c.RGBA()
	if r != 0xFFFF || a != 0xFFFF {
		t.Errorf("RGBA() = (%d, _, _, %d), want full-range channels", r, a)
	}
	if g != uint32(128)*0x101 || b != 0 {
		t.Errorf("RGBA() midtones = (%d, %d)", g, b)
	}
}

func TestInitFlagsString(t *testing.T) {
	tests := []struct {
		name  string
		flags InitFlags
		want  string
	}{
		{"none", 0, "none"},
		{"single", InitVideo, "video"},
		{"combined", InitVideo | InitAudio, "audio|video"},
		{"unknown bits", InitFlags(0x1), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInitFlagsRoundTrip(t *testing.T) {
	for _, fn := range initFlagNames {
		if got := InitFlagsFromNative(fn.flag.Native()); got != fn.flag {
			t.Errorf("%s: round trip = %v, want %v", fn.name, got, fn.flag)
		}
	}
}
