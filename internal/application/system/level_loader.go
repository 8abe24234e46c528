package system

import (
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/config"
)

// BuildCatalog converts the loaded configuration into level templates in campaign order
func BuildCatalog(cfg *config.GameConfig) []entity.LevelTemplate {
	physics := cfg.Physics
	if physics == nil {
		physics = config.DefaultPhysicsConfig()
	}
	campaign := cfg.Campaign
	if campaign == nil {
		campaign = &config.CampaignConfig{}
	}

	templates := make([]entity.LevelTemplate, 0, len(cfg.Levels))
	for i, lvl := range cfg.Levels {
		templates = append(templates, LoadLevelTemplate(lvl, campaign.MessageFor(i), physics))
	}
	return templates
}

// LoadLevelTemplate converts a LevelConfig into a LevelTemplate.
// Missing schedule fields take the physics defaults and defects are clamped
// so the runtime never sees a negative extent or an empty period.
func LoadLevelTemplate(cfg *config.LevelConfig, message string, physics *config.PhysicsConfig) entity.LevelTemplate {
	tpl := entity.LevelTemplate{
		Name:    cfg.Name,
		Message: message,
		Start:   entity.Point{X: cfg.Start.X, Y: cfg.Start.Y},
		Goal:    toRect(cfg.Goal),
	}

	for _, p := range cfg.Platforms {
		tpl.Platforms = append(tpl.Platforms, toRect(p))
	}
	for _, s := range cfg.Obstacles.Spikes {
		tpl.Spikes = append(tpl.Spikes, entity.StaticHazard{Rect: toRect(s)})
	}
	for _, s := range cfg.Obstacles.TimedSpikes {
		tpl.TimedSpikes = append(tpl.TimedSpikes, loadTimed(s, physics.Hazards))
	}
	for _, p := range cfg.Obstacles.Patrols {
		tpl.Patrols = append(tpl.Patrols, loadPatrol(p, physics.Hazards.PatrolPad))
	}

	if a := cfg.AutoHazards; a != nil {
		period := a.Period
		if period <= 0 {
			period = physics.Hazards.DefaultPeriod
		}
		tpl.Auto = &entity.AutoHazards{
			Period:        period,
			Up:            clampInt(a.Up, 0, period),
			PhaseStep:     a.PhaseStep,
			SpikeHeight:   a.SpikeHeight,
			ThinMaxHeight: a.ThinMaxHeight,
		}
	}

	return tpl
}

func loadTimed(s config.TimedSpikeConfig, defaults config.HazardSettings) entity.TimedHazard {
	period := defaults.DefaultPeriod
	if s.Period != nil && *s.Period > 0 {
		period = *s.Period
	}
	if period <= 0 {
		period = 60
	}
	up := defaults.DefaultUp
	if s.Up != nil {
		up = *s.Up
	}
	phase := 0
	if s.Phase != nil {
		phase = *s.Phase
	}
	return entity.TimedHazard{
		Rect:   toRect(s.RectConfig),
		Period: period,
		Up:     clampInt(up, 0, period),
		Phase:  phase,
	}
}

func loadPatrol(p config.PatrolConfig, pad float64) entity.PatrolHazard {
	r := toRect(p.RectConfig)
	minX, maxX := p.MinX, p.MaxX
	if maxX < minX+r.W {
		maxX = minX + r.W
	}
	if r.X < minX {
		r.X = minX
	}
	if r.Right() > maxX {
		r.X = maxX - r.W
	}
	dir := 1
	if p.Dir < 0 {
		dir = -1
	}
	return entity.PatrolHazard{
		Rect:  r,
		MinX:  minX,
		MaxX:  maxX,
		Speed: p.Speed,
		Dir:   dir,
		Pad:   pad,
	}
}

// GenerateAutoHazards places a timed strip on top of every thin platform.
// Phases step backwards per thin platform so a climbing path sees the strips
// rise in a reverse wave.
func GenerateAutoHazards(platforms []entity.Rect, auto *entity.AutoHazards) []entity.TimedHazard {
	if auto == nil || auto.Period <= 0 {
		return nil
	}

	var out []entity.TimedHazard
	idx := 0
	for _, plat := range platforms {
		if plat.H > auto.ThinMaxHeight {
			continue
		}
		step := (idx * auto.PhaseStep) % auto.Period
		if step < 0 {
			step += auto.Period
		}
		out = append(out, entity.TimedHazard{
			Rect: entity.Rect{
				X: plat.X,
				Y: plat.Y - auto.SpikeHeight,
				W: plat.W,
				H: auto.SpikeHeight,
			},
			Period: auto.Period,
			Up:     auto.Up,
			Phase:  (auto.Period - step) % auto.Period,
		})
		idx++
	}
	return out
}

// LevelLoader derives live levels from the immutable catalog
type LevelLoader struct {
	templates []entity.LevelTemplate
}

// NewLevelLoader creates a loader over the given templates
func NewLevelLoader(templates []entity.LevelTemplate) *LevelLoader {
	return &LevelLoader{templates: templates}
}

// Count returns the number of levels
func (l *LevelLoader) Count() int {
	return len(l.templates)
}

// Template returns the template at a clamped index
func (l *LevelLoader) Template(index int) *entity.LevelTemplate {
	if len(l.templates) == 0 {
		return nil
	}
	return &l.templates[l.Clamp(index)]
}

// Clamp maps any integer onto a valid level index
func (l *LevelLoader) Clamp(index int) int {
	return clampInt(index, 0, len(l.templates)-1)
}

// Load builds a fresh runtime for the level at the clamped index.
// Every call copies hazards out of the template, so patrol movement never
// leaks back and repeated loads produce identical hazard lists.
// Returns nil only for an empty catalog.
func (l *LevelLoader) Load(index int) *entity.LevelRuntime {
	if len(l.templates) == 0 {
		return nil
	}
	index = l.Clamp(index)
	tpl := &l.templates[index]

	generated := GenerateAutoHazards(tpl.Platforms, tpl.Auto)
	hazards := make([]entity.Hazard, 0, len(tpl.Spikes)+len(tpl.TimedSpikes)+len(generated)+len(tpl.Patrols))

	for _, s := range tpl.Spikes {
		hazards = append(hazards, &s)
	}
	for _, t := range tpl.TimedSpikes {
		hazards = append(hazards, &t)
	}
	for i := range generated {
		hazards = append(hazards, &generated[i])
	}
	for _, p := range tpl.Patrols {
		hazards = append(hazards, &p)
	}

	return &entity.LevelRuntime{
		Index:    index,
		Template: tpl,
		Hazards:  hazards,
	}
}

func toRect(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: max(0, r.W), H: max(0, r.H)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
