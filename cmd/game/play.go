package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/catleap/internal/application/game"
	"github.com/younwookim/catleap/internal/application/scene/playing"
	"github.com/younwookim/catleap/internal/application/session"
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/assets"
	"github.com/younwookim/catleap/internal/infrastructure/config"
)

var (
	flagRecord     string
	flagStartLevel int
	flagWatch      bool
	flagSprite     string
	flagGoalSprite string
	flagBackground string
)

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	cmd.Flags().IntVar(&flagStartLevel, "start-level", 1, "Level to start on (1-based)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files under --config-dir change")
	cmd.Flags().StringVar(&flagSprite, "sprite", "", "Player image (PNG or JPEG)")
	cmd.Flags().StringVar(&flagGoalSprite, "goal-sprite", "", "Goal image (PNG or JPEG)")
	cmd.Flags().StringVar(&flagBackground, "background", "", "Background image (PNG or JPEG)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}
	if flagWatch && flagConfigDir == "" {
		return errors.New("--watch needs --config-dir")
	}

	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, catalog, err := loadCatalog(loader, logger)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sess, err := session.New(catalog, cfg.Physics, cfg.Campaign.FinalMessage)
	if err != nil {
		return err
	}
	sess.LoadLevel(flagStartLevel - 1)

	images := loadImages(logger, flagSprite, flagGoalSprite, flagBackground)

	display := cfg.Physics.Display
	opts := playing.Options{
		Logger:       logger,
		RecordPath:   flagRecord,
		Images:       images,
		Title:        cfg.Campaign.Title,
		ScreenWidth:  display.ScreenWidth,
		ScreenHeight: display.ScreenHeight,
	}

	if flagWatch {
		watcher, err := config.NewWatcher(flagConfigDir, filepath.Join(flagConfigDir, "levels"))
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", flagConfigDir, err)
		}
		defer func() { _ = watcher.Close() }()

		opts.Changes = watcher
		opts.Reload = func() ([]entity.LevelTemplate, error) {
			_, catalog, err := loadCatalog(loader, logger)
			return catalog, err
		}
		logger.Info("watching for level changes", "dir", flagConfigDir)
	}

	g := game.New(playing.New(sess, opts), display.ScreenWidth, display.ScreenHeight, display.Framerate)
	defer g.Close()

	scale := max(1, display.Scale)
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle(windowTitle(cfg.Campaign.Title))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}

// loadImages loads the optional images. One that cannot be loaded is left
// nil and drawn as a solid-colour placeholder.
func loadImages(logger *log.Logger, player, goal, background string) assets.Images {
	return assets.Images{
		Player:     loadOptional(logger, player),
		Goal:       loadOptional(logger, goal),
		Background: loadOptional(logger, background),
	}
}

func loadOptional(logger *log.Logger, path string) *assets.Sprite {
	s, err := assets.LoadSprite(path)
	if err != nil {
		logger.Warn("image unavailable, using placeholder", "file", path, "err", err)
		return nil
	}
	return s
}

func windowTitle(title string) string {
	if title == "" {
		return "Cat Leap"
	}
	return title
}
