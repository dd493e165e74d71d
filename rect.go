package sdl3

// Geometry and color value types shared by the subsystem packages. They
// mirror SDL's structs field for field so they can be passed across the
// cgo boundary by pointer; rect_layout.go pins the layout at compile time.

// Point is an integer 2D point, mirroring SDL_Point.
type Point struct {
	X, Y int32
}

// FPoint is a float 2D point, mirroring SDL_FPoint.
type FPoint struct {
	X, Y float32
}

// Rect is an integer rectangle, mirroring SDL_Rect.
type Rect struct {
	X, Y, W, H int32
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the intersection of two rectangles and whether they
// overlap at all.
func (r Rect) Intersect(s Rect) (Rect, bool) {
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X+r.W, s.X+s.W)
	y2 := min(r.Y+r.H, s.Y+s.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, true
}

// Union returns the smallest rectangle covering both r and s. An empty
// rectangle contributes nothing.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x1 := min(r.X, s.X)
	y1 := min(r.Y, s.Y)
	x2 := max(r.X+r.W, s.X+s.W)
	y2 := max(r.Y+r.H, s.Y+s.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// FRect is a float rectangle, mirroring SDL_FRect.
type FRect struct {
	X, Y, W, H float32
}

// Empty reports whether the rectangle has no area.
func (r FRect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Color is an 8-bit RGBA color, mirroring SDL_Color.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

// FColor is a float RGBA color, mirroring SDL_FColor. The GPU API uses it
// for clear colors and blend constants.
type FColor struct {
	R, G, B, A float32
}
