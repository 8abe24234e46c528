package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display DisplayConfig   `yaml:"display"`
	Physics PhysicsSettings `yaml:"physics"`
	Player  PlayerConfig    `yaml:"player"`
	Hazards HazardSettings  `yaml:"hazards"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// PhysicsSettings holds the per-tick movement constants.
// All values are level-space units per tick (or per tick squared).
type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`
	Acceleration float64 `yaml:"acceleration"` // vx increment while a direction is held
	Damping      float64 `yaml:"damping"`      // vx multiplier while no direction is held
	MaxSpeedX    float64 `yaml:"maxSpeedX"`
	JumpStrength float64 `yaml:"jumpStrength"`
}

type PlayerConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	HazardPadX float64 `yaml:"hazardPadX"`
	HazardPadY float64 `yaml:"hazardPadY"`
}

type HazardSettings struct {
	PatrolPad     float64 `yaml:"patrolPad"`  // outward grow of patrol lethal boxes
	FallMargin    float64 `yaml:"fallMargin"` // below the world bottom before a fall reloads
	DefaultPeriod int     `yaml:"defaultPeriod"`
	DefaultUp     int     `yaml:"defaultUp"`
}

// DefaultPhysicsConfig returns the tuning the bundled levels were authored against
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 450,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:      0.7,
			Acceleration: 0.4,
			Damping:      0.8,
			MaxSpeedX:    3.5,
			JumpStrength: 13.0,
		},
		Player: PlayerConfig{
			Width:      36,
			Height:     48,
			HazardPadX: 6,
			HazardPadY: 6,
		},
		Hazards: HazardSettings{
			PatrolPad:     6,
			FallMargin:    200,
			DefaultPeriod: 60,
			DefaultUp:     30,
		},
	}
}
