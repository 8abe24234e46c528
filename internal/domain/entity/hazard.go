package entity

// HazardKind identifies a hazard variant
type HazardKind int

const (
	HazardStatic HazardKind = iota
	HazardTimed
	HazardPatrol
)

// String returns the string representation of the hazard kind
func (k HazardKind) String() string {
	switch k {
	case HazardStatic:
		return "Static"
	case HazardTimed:
		return "Timed"
	case HazardPatrol:
		return "Patrol"
	default:
		return "Unknown"
	}
}

// Hazard is anything that reloads the level when the player's hazard box touches it
type Hazard interface {
	Kind() HazardKind
	// Bounds returns the drawn rectangle
	Bounds() Rect
	// LethalBox returns the rectangle that kills on overlap at the given frame.
	// ok is false while the hazard is inactive.
	LethalBox(frame int) (box Rect, ok bool)
}

// StaticHazard is a spike strip that is always lethal
type StaticHazard struct {
	Rect
}

// Kind returns HazardStatic
func (h *StaticHazard) Kind() HazardKind { return HazardStatic }

// Bounds returns the spike strip
func (h *StaticHazard) Bounds() Rect { return h.Rect }

// LethalBox returns the strip on every frame
func (h *StaticHazard) LethalBox(int) (Rect, bool) {
	return h.Rect, true
}

// TimedHazard is a spike strip that is lethal for the first Up frames of
// every Period-frame cycle, shifted by Phase
type TimedHazard struct {
	Rect
	Period int
	Up     int
	Phase  int
}

// Kind returns HazardTimed
func (h *TimedHazard) Kind() HazardKind { return HazardTimed }

// Bounds returns the spike strip, raised or not
func (h *TimedHazard) Bounds() Rect { return h.Rect }

// Active reports whether the hazard is raised at the given frame.
// A non-positive period is never active.
func (h *TimedHazard) Active(frame int) bool {
	if h.Period <= 0 {
		return false
	}
	m := (frame + h.Phase) % h.Period
	if m < 0 {
		m += h.Period
	}
	return m < h.Up
}

// LethalBox returns the strip only while it is raised
func (h *TimedHazard) LethalBox(frame int) (Rect, bool) {
	if !h.Active(frame) {
		return Rect{}, false
	}
	return h.Rect, true
}

// PatrolHazard walks horizontally between MinX and MaxX.
// Its lethal box is the drawn rect grown by Pad on every side.
type PatrolHazard struct {
	Rect
	MinX, MaxX float64
	Speed      float64
	Dir        int // -1 or +1
	Pad        float64
}

// Kind returns HazardPatrol
func (p *PatrolHazard) Kind() HazardKind { return HazardPatrol }

// Bounds returns the drawn rect at the current position
func (p *PatrolHazard) Bounds() Rect { return p.Rect }

// LethalBox returns the drawn rect grown by Pad
func (p *PatrolHazard) LethalBox(int) (Rect, bool) {
	return p.Rect.Expand(p.Pad), true
}

// Advance moves the patrol one tick. Crossing a bound snaps the patrol onto
// it and flips the direction on the same tick.
func (p *PatrolHazard) Advance() {
	if p.Dir != -1 {
		p.Dir = 1
	}
	p.X += p.Speed * float64(p.Dir)
	if p.X < p.MinX {
		p.X = p.MinX
		p.Dir = 1
	} else if p.Right() > p.MaxX {
		p.X = p.MaxX - p.W
		p.Dir = -1
	}
}
