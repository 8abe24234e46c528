package session

import (
	"github.com/younwookim/catleap/internal/application/state"
	"github.com/younwookim/catleap/internal/domain/entity"
)

// HazardView is one hazard as the renderer sees it
type HazardView struct {
	Kind   entity.HazardKind
	Rect   entity.Rect
	Active bool // false only for a lowered timed hazard
}

// View is a copy of everything needed to draw one frame.
// It shares no memory with the session.
type View struct {
	Mode    state.GameMode
	Message string

	LevelIndex int
	LevelCount int
	LevelName  string
	Frame      int

	Player    entity.Rect
	Goal      entity.Rect
	Platforms []entity.Rect
	Hazards   []HazardView
}

// Snapshot copies the current state for rendering
func (s *Session) Snapshot() View {
	v := View{
		Mode:       s.mode,
		Message:    s.message,
		LevelIndex: s.level.Index,
		LevelCount: s.loader.Count(),
		LevelName:  s.level.Template.Name,
		Frame:      s.lastFrame,
		Player:     s.player.Rect(),
		Goal:       s.level.Goal(),
		Platforms:  append([]entity.Rect(nil), s.level.Platforms()...),
		Hazards:    make([]HazardView, 0, len(s.level.Hazards)),
	}

	for _, h := range s.level.Hazards {
		_, active := h.LethalBox(s.lastFrame)
		v.Hazards = append(v.Hazards, HazardView{
			Kind:   h.Kind(),
			Rect:   h.Bounds(),
			Active: active,
		})
	}
	return v
}
