package entity

// AutoHazards configures the timed strips generated above thin platforms.
// Values are tuned per level.
type AutoHazards struct {
	Period    int
	Up        int
	PhaseStep int

	SpikeHeight   float64
	ThinMaxHeight float64 // platforms with H <= ThinMaxHeight get a strip
}

// LevelTemplate is an authored level. It is never mutated after loading;
// every (re)load derives a fresh LevelRuntime from it.
type LevelTemplate struct {
	Name      string
	Message   string // shown when the level is completed
	Start     Point
	Goal      Rect
	Platforms []Rect

	Spikes      []StaticHazard
	TimedSpikes []TimedHazard
	Patrols     []PatrolHazard

	Auto *AutoHazards // nil on levels without generated strips
}

// LevelRuntime is the live state of the current level
type LevelRuntime struct {
	Index    int
	Template *LevelTemplate

	// Hazards are ordered by category: static, then timed, then patrol.
	Hazards []Hazard
}

// Goal returns the goal rectangle
func (l *LevelRuntime) Goal() Rect { return l.Template.Goal }

// Platforms returns the solid rectangles
func (l *LevelRuntime) Platforms() []Rect { return l.Template.Platforms }

// Start returns the player start point
func (l *LevelRuntime) Start() Point { return l.Template.Start }

// Patrols returns the live patrol hazards
func (l *LevelRuntime) Patrols() []*PatrolHazard {
	var out []*PatrolHazard
	for _, h := range l.Hazards {
		if p, ok := h.(*PatrolHazard); ok {
			out = append(out, p)
		}
	}
	return out
}

// TimedHazards returns the live timed hazards, authored first then generated
func (l *LevelRuntime) TimedHazards() []*TimedHazard {
	var out []*TimedHazard
	for _, h := range l.Hazards {
		if t, ok := h.(*TimedHazard); ok {
			out = append(out, t)
		}
	}
	return out
}
