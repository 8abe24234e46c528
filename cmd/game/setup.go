package main

import (
	"io"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/younwookim/catleap/internal/application/system"
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/config"
)

// newLoader reads from dir, or from the bundled configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadCatalog loads every config file and builds the level templates.
// Authoring defects are logged as warnings; the level builder clamps them.
func loadCatalog(loader *config.Loader, logger *log.Logger) (*config.GameConfig, []entity.LevelTemplate, error) {
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		logger.Warn("config has defects, clamping", "dir", loader.BasePath(), "err", err)
	}
	return cfg, system.BuildCatalog(cfg), nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "catleap",
	}), nil
}
