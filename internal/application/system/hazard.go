package system

import (
	"github.com/younwookim/catleap/internal/domain/entity"
)

// HazardSystem moves patrols and finds the first hazard touching the player
type HazardSystem struct {
	pad entity.HazardPadding
}

// NewHazardSystem creates a hazard system using the player's hazard padding
func NewHazardSystem(pad entity.HazardPadding) *HazardSystem {
	return &HazardSystem{pad: pad}
}

// Advance moves every patrol in the level by one tick
func (s *HazardSystem) Advance(level *entity.LevelRuntime) {
	for _, h := range level.Hazards {
		if p, ok := h.(*entity.PatrolHazard); ok {
			p.Advance()
		}
	}
}

// FirstLethal returns the first hazard, in category order, whose lethal box
// overlaps the body's hazard box at the given frame
func (s *HazardSystem) FirstLethal(level *entity.LevelRuntime, body *entity.Body, frame int) (entity.Hazard, bool) {
	hitbox := body.HazardBox(s.pad)
	for _, h := range level.Hazards {
		box, ok := h.LethalBox(frame)
		if ok && entity.Overlaps(hitbox, box) {
			return h, true
		}
	}
	return nil, false
}
