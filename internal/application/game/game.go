// Package game runs the ebiten loop and hands it to the current scene.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/catleap/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
// The screen is a fixed logical size that ebiten scales into the window.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	// quitKey ends the run cleanly; ebiten.Key(-1) disables it
	quitKey ebiten.Key
	closed  bool
}

// New creates a new Game with the given initial scene ticking at tps
// updates per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
		quitKey: ebiten.KeyEscape,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.quitKey >= 0 && inpututil.IsKeyJustPressed(g.quitKey) {
		g.Close()
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene once. Call it after ebiten.RunGame returns
// so a window close still flushes scene state such as recordings.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}
