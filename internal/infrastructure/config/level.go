package config

// LevelConfig is the root config for levels/<name>.yaml.
// The field names match the authored level schema so JSON-authored levels
// decode unchanged.
type LevelConfig struct {
	Name        string            `yaml:"name"`
	Start       PointConfig       `yaml:"start"`
	Goal        RectConfig        `yaml:"goal"`
	Platforms   []RectConfig      `yaml:"platforms"`
	Obstacles   ObstaclesConfig   `yaml:"obstacles"`
	AutoHazards *AutoHazardConfig `yaml:"autoHazards,omitempty"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type ObstaclesConfig struct {
	Spikes      []RectConfig       `yaml:"spikes"`
	TimedSpikes []TimedSpikeConfig `yaml:"timedSpikes"`
	Patrols     []PatrolConfig     `yaml:"patrols"`
}

// TimedSpikeConfig leaves the schedule fields optional: a missing value takes
// the physics.yaml default, an explicit one is kept as written.
type TimedSpikeConfig struct {
	RectConfig `yaml:",inline"`
	Period     *int `yaml:"period,omitempty"`
	Up         *int `yaml:"up,omitempty"`
	Phase      *int `yaml:"phase,omitempty"`
}

type PatrolConfig struct {
	RectConfig `yaml:",inline"`
	MinX       float64 `yaml:"minX"`
	MaxX       float64 `yaml:"maxX"`
	Speed      float64 `yaml:"speed"`
	Dir        int     `yaml:"dir,omitempty"` // 0 means +1
}

// AutoHazardConfig marks a level whose thin platforms get generated timed strips
type AutoHazardConfig struct {
	Period        int     `yaml:"period"`
	Up            int     `yaml:"up"`
	PhaseStep     int     `yaml:"phaseStep"`
	SpikeHeight   float64 `yaml:"spikeHeight"`
	ThinMaxHeight float64 `yaml:"thinMaxHeight"`
}
