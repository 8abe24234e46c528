// Package session owns one running game: the player, the level catalog, the
// live level, the overlay mode and the frame counter.
//
// A host calls Tick once per fixed timestep and renders from Snapshot. Nothing
// here blocks or starts goroutines; the session is single-writer.
package session

import (
	"errors"

	"github.com/younwookim/catleap/internal/application/state"
	"github.com/younwookim/catleap/internal/application/system"
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/config"
)

// ErrEmptyCatalog is returned when a session is given no levels
var ErrEmptyCatalog = errors.New("session: catalog has no levels")

// Status reports what a tick did
type Status int

const (
	StatusContinue Status = iota
	// StatusDied means a hazard or a fall reloaded the current level
	StatusDied
	// StatusLevelComplete means the goal was reached and a message is showing
	StatusLevelComplete
	// StatusGameComplete means the goal of the last level was reached
	StatusGameComplete
	// StatusLevelLoaded means an acknowledge dismissed the overlay and loaded a level
	StatusLevelLoaded
	// StatusWaiting means the world is frozen behind an overlay
	StatusWaiting
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "Continue"
	case StatusDied:
		return "Died"
	case StatusLevelComplete:
		return "LevelComplete"
	case StatusGameComplete:
		return "GameComplete"
	case StatusLevelLoaded:
		return "LevelLoaded"
	case StatusWaiting:
		return "Waiting"
	default:
		return "Unknown"
	}
}

// Session is the simulation context
type Session struct {
	cfg     *config.PhysicsConfig
	physics *system.PhysicsSystem
	hazards *system.HazardSystem
	loader  *system.LevelLoader

	finalMessage string

	player *entity.Body
	level  *entity.LevelRuntime

	mode    state.GameMode
	message string
	pending int

	frame     int // next tick's frame
	lastFrame int // frame the current world state was evaluated at
	deaths    int
}

// New creates a session at level 0.
// A nil cfg uses config.DefaultPhysicsConfig.
func New(catalog []entity.LevelTemplate, cfg *config.PhysicsConfig, finalMessage string) (*Session, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if cfg == nil {
		cfg = config.DefaultPhysicsConfig()
	}
	if finalMessage == "" {
		finalMessage = config.DefaultFinalMessage
	}

	pad := entity.HazardPadding{X: cfg.Player.HazardPadX, Y: cfg.Player.HazardPadY}
	s := &Session{
		cfg:          cfg,
		physics:      system.NewPhysicsSystem(cfg),
		hazards:      system.NewHazardSystem(pad),
		loader:       system.NewLevelLoader(catalog),
		finalMessage: finalMessage,
	}

	tpl := s.loader.Template(0)
	s.player = entity.NewBody(tpl.Start, cfg.Player.Width, cfg.Player.Height)
	s.LoadLevel(0)
	return s, nil
}

// LoadLevel makes the level at the clamped index current, respawns the player
// at its start and returns to Playing
func (s *Session) LoadLevel(index int) {
	s.level = s.loader.Load(index)
	s.player.Respawn(s.level.Start())
	s.mode = state.ModePlaying
	s.message = ""
}

// Tick advances the session by one fixed step.
// The frame counter advances on every tick, frozen or not.
func (s *Session) Tick(in system.Intent) Status {
	f := s.frame
	s.frame++
	s.lastFrame = f

	if s.mode.Frozen() {
		if in.Acknowledge && s.Acknowledge() {
			return StatusLevelLoaded
		}
		return StatusWaiting
	}

	s.physics.Step(s.player, s.level.Platforms(), in)
	s.hazards.Advance(s.level)

	if entity.Overlaps(s.player.Rect(), s.level.Goal()) {
		return s.complete()
	}

	if _, hit := s.hazards.FirstLethal(s.level, s.player, f); hit {
		s.die()
		return StatusDied
	}

	if s.player.Y > entity.WorldHeight+s.cfg.Hazards.FallMargin {
		s.die()
		return StatusDied
	}

	return StatusContinue
}

// Acknowledge dismisses the overlay. From a level message it loads the next
// level, from the final message it restarts at level 0. Reports false while
// Playing, where it has no effect.
func (s *Session) Acknowledge() bool {
	switch s.mode {
	case state.ModeShowingMessage:
		s.LoadLevel(s.pending)
	case state.ModeShowingFinal:
		s.LoadLevel(0)
	default:
		return false
	}
	return true
}

// ReplaceCatalog swaps in freshly loaded levels. The current index is kept
// (clamped) and rebuilt; the player only respawns while Playing.
func (s *Session) ReplaceCatalog(catalog []entity.LevelTemplate) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	s.loader = system.NewLevelLoader(catalog)
	index := s.level.Index

	if s.mode == state.ModePlaying {
		s.LoadLevel(index)
		return nil
	}
	s.level = s.loader.Load(index)
	return nil
}

func (s *Session) complete() Status {
	next := s.level.Index + 1
	if next < s.loader.Count() {
		s.mode = state.ModeShowingMessage
		s.message = s.level.Template.Message
		if s.message == "" {
			s.message = config.DefaultLevelMessage
		}
		s.pending = next
		return StatusLevelComplete
	}

	s.mode = state.ModeShowingFinal
	s.message = s.finalMessage
	s.pending = 0
	return StatusGameComplete
}

func (s *Session) die() {
	s.deaths++
	s.LoadLevel(s.level.Index)
}

// Mode returns the current mode
func (s *Session) Mode() state.GameMode { return s.mode }

// Frame returns the frame the next tick will evaluate
func (s *Session) Frame() int { return s.frame }

// LevelIndex returns the current level index
func (s *Session) LevelIndex() int { return s.level.Index }

// LevelCount returns the number of levels in the catalog
func (s *Session) LevelCount() int { return s.loader.Count() }

// PendingLevel returns the index an acknowledge will load
func (s *Session) PendingLevel() int { return s.pending }

// Deaths returns how many reloads hazards and falls have caused
func (s *Session) Deaths() int { return s.deaths }

// Player returns a copy of the player body
func (s *Session) Player() entity.Body { return *s.player }
