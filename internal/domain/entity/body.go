package entity

// Body represents the player's physical body.
// Position is the top-left corner in level-space units, velocity is units per tick.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	// OnGround is edge-triggered: it is only true on a tick whose downward
	// motion was stopped by a platform.
	OnGround bool
}

// HazardPadding is the inward shrink applied to the body for hazard tests
type HazardPadding struct {
	X, Y float64
}

// NewBody creates a body of the given size resting at the start point
func NewBody(start Point, w, h float64) *Body {
	return &Body{X: start.X, Y: start.Y, W: w, H: h}
}

// Rect returns the full body rectangle used for platform and goal tests
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// HazardBox returns the shrunk hitbox used only for hazard overlap tests.
// Each extent is at least 2 units so a tiny body can still be hit.
func (b *Body) HazardBox(pad HazardPadding) Rect {
	return Rect{
		X: b.X + pad.X,
		Y: b.Y + pad.Y,
		W: max(2, b.W-2*pad.X),
		H: max(2, b.H-2*pad.Y),
	}
}

// Respawn moves the body to p and stops it
func (b *Body) Respawn(p Point) {
	b.X = p.X
	b.Y = p.Y
	b.VX = 0
	b.VY = 0
	b.OnGround = false
}
