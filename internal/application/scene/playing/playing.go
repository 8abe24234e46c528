// Package playing provides the main gameplay scene.
package playing

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/catleap/internal/application/scene"
	"github.com/younwookim/catleap/internal/application/session"
	"github.com/younwookim/catleap/internal/application/system"
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/assets"
)

// IntentSource produces the intent for one tick
type IntentSource interface {
	Poll() system.Intent
}

// ChangeSource reports changed configuration files without blocking.
// *config.Watcher implements it.
type ChangeSource interface {
	Poll() []string
}

// ReloadFunc rebuilds the level catalog from disk
type ReloadFunc func() ([]entity.LevelTemplate, error)

// Options configures a Playing scene. The zero value plays with keyboard,
// mouse and touch input and no recording or hot reload.
type Options struct {
	Logger *log.Logger
	Input  IntentSource

	// RecordPath enables input recording when not empty
	RecordPath string

	// Changes and Reload enable hot reload when both are set
	Changes ChangeSource
	Reload  ReloadFunc

	Images assets.Images
	Title  string

	ScreenWidth  int
	ScreenHeight int
}

// Playing is the main gameplay scene
type Playing struct {
	sess   *session.Session
	input  IntentSource
	touch  *system.InputSystem
	logger *log.Logger

	recorder       *Recorder
	recordFilename string

	changes ChangeSource
	reload  ReloadFunc

	images  assets.Images
	title   string
	screenW int
	screenH int

	// showTouch turns on once a touch is seen, so desktop players never see the buttons
	showTouch bool
	renderer  *renderer
}

// New creates a new Playing scene around a session
func New(sess *session.Session, opts Options) *Playing {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.ScreenWidth <= 0 || opts.ScreenHeight <= 0 {
		opts.ScreenWidth, opts.ScreenHeight = int(entity.WorldWidth), int(entity.WorldHeight)
	}

	touch := system.NewInputSystem(system.DefaultTouchLayout(opts.ScreenWidth, opts.ScreenHeight))
	input := opts.Input
	if input == nil {
		input = touch
	}

	p := &Playing{
		sess:           sess,
		input:          input,
		touch:          touch,
		logger:         opts.Logger,
		recordFilename: opts.RecordPath,
		images:         opts.Images,
		title:          opts.Title,
		screenW:        opts.ScreenWidth,
		screenH:        opts.ScreenHeight,
	}
	if opts.Changes != nil && opts.Reload != nil {
		p.changes = opts.Changes
		p.reload = opts.Reload
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(sess.LevelIndex())
		p.logger.Info("recording enabled", "file", opts.RecordPath, "level", sess.LevelIndex())
	}

	return p
}

// Update advances the session by one tick (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.pollReload()

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		p.showTouch = true
	}

	in := p.input.Poll()

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	p.logStatus(p.sess.Tick(in))

	return nil, nil // nil = stay on this scene
}

func (p *Playing) logStatus(status session.Status) {
	switch status {
	case session.StatusDied:
		p.logger.Debug("level reloaded", "level", p.sess.LevelIndex()+1, "deaths", p.sess.Deaths())
	case session.StatusLevelComplete:
		p.logger.Info("level complete", "level", p.sess.LevelIndex()+1, "next", p.sess.PendingLevel()+1)
	case session.StatusGameComplete:
		p.logger.Info("game complete", "deaths", p.sess.Deaths(), "frames", p.sess.Frame())
		// A recording covers one run: save it and stop at the finale
		p.finishRecording()
	case session.StatusLevelLoaded:
		p.logger.Info("level started", "level", p.sess.LevelIndex()+1, "of", p.sess.LevelCount())
	}
}

// pollReload rebuilds the catalog when watched files changed.
// Runs on the tick goroutine so the session keeps a single writer.
func (p *Playing) pollReload() {
	if p.changes == nil {
		return
	}
	changed := p.changes.Poll()
	if len(changed) == 0 {
		return
	}

	catalog, err := p.reload()
	if err != nil {
		p.logger.Error("reload failed, keeping current levels", "err", err)
		return
	}
	if err := p.sess.ReplaceCatalog(catalog); err != nil {
		p.logger.Error("reload failed, keeping current levels", "err", err)
		return
	}
	p.logger.Info("levels reloaded", "files", changed, "levels", len(catalog))
}

// saveRecording saves the current recording to file. Nothing is written
// before the first recorded tick.
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

// Draw renders the current snapshot (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.renderer == nil {
		p.renderer = newRenderer(p.screenW, p.screenH, p.images)
	}
	p.renderer.draw(screen, p.sess.Snapshot(), p.title)
	if p.showTouch {
		p.renderer.drawTouchButtons(screen, p.touch.Layout())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("level started", "level", p.sess.LevelIndex()+1, "of", p.sess.LevelCount())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.finishRecording()
}

// finishRecording saves and stops a recording that is still running
func (p *Playing) finishRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.saveRecording()
	p.recorder.Stop()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
