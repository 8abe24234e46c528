package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Campaign *CampaignConfig
	Levels   []*LevelConfig // in campaign order
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.yaml on top of DefaultPhysicsConfig,
// so a partial file only overrides what it names
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	cfg := DefaultPhysicsConfig()
	if err := l.decode("physics.yaml", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadCampaign loads campaign.yaml
func (l *Loader) LoadCampaign() (*CampaignConfig, error) {
	var cfg CampaignConfig
	if err := l.decode("campaign.yaml", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("campaign.yaml lists no levels")
	}
	return &cfg, nil
}

// LoadLevel loads a level YAML file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := l.decode(path.Join("levels", name+".yaml"), &cfg); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	return &cfg, nil
}

// LoadAll loads physics, the campaign and every level it lists
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	campaign, err := l.LoadCampaign()
	if err != nil {
		return nil, err
	}

	levels := make([]*LevelConfig, 0, len(campaign.Levels))
	for _, name := range campaign.Levels {
		lvl, err := l.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}

	return &GameConfig{
		Physics:  physics,
		Campaign: campaign,
		Levels:   levels,
	}, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
