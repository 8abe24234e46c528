package config

import (
	"errors"
	"fmt"
)

// Validate reports authoring defects in the loaded configuration.
// None of them stop the game: the level builder clamps what it receives,
// so callers usually log the result as a warning.
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Physics != nil {
		if err := c.Physics.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Campaign != nil && len(c.Campaign.Messages) > 0 && len(c.Campaign.Messages) < len(c.Levels) {
		errs = append(errs, fmt.Errorf("campaign: %d messages for %d levels", len(c.Campaign.Messages), len(c.Levels)))
	}
	for _, lvl := range c.Levels {
		if err := lvl.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks the physics tuning
func (p *PhysicsConfig) Validate() error {
	var errs []error
	if p.Physics.Damping < 0 || p.Physics.Damping >= 1 {
		errs = append(errs, fmt.Errorf("physics: damping %v outside [0, 1)", p.Physics.Damping))
	}
	if p.Physics.MaxSpeedX <= 0 {
		errs = append(errs, fmt.Errorf("physics: maxSpeedX must be positive"))
	}
	if p.Player.Width <= 0 || p.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player: size %vx%v must be positive", p.Player.Width, p.Player.Height))
	}
	if p.Hazards.DefaultPeriod <= 0 {
		errs = append(errs, fmt.Errorf("hazards: defaultPeriod must be positive"))
	}
	return errors.Join(errs...)
}

// Validate checks a level for defects that would make hazards degenerate
func (l *LevelConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("level %s: "+format, append([]any{l.Name}, args...)...))
	}

	if badExtent(l.Goal) {
		add("goal has non-positive extent")
	}
	for i, p := range l.Platforms {
		if badExtent(p) {
			add("platform %d has non-positive extent", i)
		}
	}
	for i, s := range l.Obstacles.Spikes {
		if badExtent(s) {
			add("spike %d has non-positive extent", i)
		}
	}
	for i, s := range l.Obstacles.TimedSpikes {
		if s.Period != nil && *s.Period <= 0 {
			add("timed spike %d: period %d must be positive", i, *s.Period)
		}
		if s.Period != nil && s.Up != nil && (*s.Up < 0 || *s.Up > *s.Period) {
			add("timed spike %d: up %d outside [0, %d]", i, *s.Up, *s.Period)
		}
	}
	for i, p := range l.Obstacles.Patrols {
		if p.MinX > p.MaxX {
			add("patrol %d: minX %v > maxX %v", i, p.MinX, p.MaxX)
		}
		if p.X < p.MinX || p.X+p.W > p.MaxX {
			add("patrol %d starts outside [%v, %v]", i, p.MinX, p.MaxX)
		}
		if p.Dir != 0 && p.Dir != 1 && p.Dir != -1 {
			add("patrol %d: dir %d must be -1 or 1", i, p.Dir)
		}
	}
	if a := l.AutoHazards; a != nil {
		if a.Period <= 0 {
			add("autoHazards: period must be positive")
		} else if a.Up < 0 || a.Up > a.Period {
			add("autoHazards: up %d outside [0, %d]", a.Up, a.Period)
		}
	}
	return errors.Join(errs...)
}

func badExtent(r RectConfig) bool {
	return r.W <= 0 || r.H <= 0
}
