package entity

// World dimensions in level-space units. Levels are authored against this
// fixed virtual canvas; the presentation layer scales it to the window.
const (
	WorldWidth  = 800
	WorldHeight = 450
)

// Point is a position in level space
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box given by its top-left corner and extent
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rect has no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Expand grows the rect outward by pad on every side.
// A negative pad shrinks it; the extent never goes below zero.
func (r Rect) Expand(pad float64) Rect {
	out := Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Overlaps reports whether the half-open boxes [x, x+w) x [y, y+h) of a and b
// intersect. Rects without area never overlap anything.
func Overlaps(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() && a.Right() > b.X &&
		a.Y < b.Bottom() && a.Bottom() > b.Y
}
