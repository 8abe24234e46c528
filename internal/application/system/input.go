package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchButton identifies an on-screen control
type TouchButton int

const (
	TouchLeft TouchButton = iota
	TouchRight
	TouchJump
)

// String returns the label drawn on the button
func (b TouchButton) String() string {
	switch b {
	case TouchLeft:
		return "<"
	case TouchRight:
		return ">"
	case TouchJump:
		return "^"
	default:
		return "?"
	}
}

// TouchLayout places the on-screen buttons in screen coordinates
type TouchLayout struct {
	Left  image.Rectangle
	Right image.Rectangle
	Jump  image.Rectangle
}

// DefaultTouchLayout puts left/right in the bottom-left corner and jump in the
// bottom-right corner of a w x h screen
func DefaultTouchLayout(w, h int) TouchLayout {
	const size, margin = 56, 16
	y := h - size - margin
	return TouchLayout{
		Left:  image.Rect(margin, y, margin+size, y+size),
		Right: image.Rect(2*margin+size, y, 2*margin+2*size, y+size),
		Jump:  image.Rect(w-margin-size, y, w-margin, y+size),
	}
}

// TouchRegion is one button and where it sits
type TouchRegion struct {
	Button TouchButton
	Rect   image.Rectangle
}

// Buttons returns every button with its rectangle, in draw order
func (l TouchLayout) Buttons() []TouchRegion {
	return []TouchRegion{
		{Button: TouchLeft, Rect: l.Left},
		{Button: TouchRight, Rect: l.Right},
		{Button: TouchJump, Rect: l.Jump},
	}
}

// ButtonAt returns the button under the given screen point
func (l TouchLayout) ButtonAt(p image.Point) (TouchButton, bool) {
	switch {
	case p.In(l.Left):
		return TouchLeft, true
	case p.In(l.Right):
		return TouchRight, true
	case p.In(l.Jump):
		return TouchJump, true
	default:
		return 0, false
	}
}

// RawInput is one tick of device state, before mapping to an Intent
type RawInput struct {
	LeftKey  bool
	RightKey bool
	JumpKey  bool

	// AckKey is true on the tick an acknowledge key went down
	AckKey bool
	// Click is true on the tick the primary mouse button went down
	Click bool

	// Touches are the active touch points; NewTouch is set when one started this tick
	Touches  []image.Point
	NewTouch bool
}

// InputSystem maps keyboard, mouse and touch state to an Intent
type InputSystem struct {
	layout  TouchLayout
	touches []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem(layout TouchLayout) *InputSystem {
	return &InputSystem{layout: layout}
}

// Layout returns the touch button layout
func (s *InputSystem) Layout() TouchLayout {
	return s.layout
}

// Poll reads the current device state.
// Must be called from the ebiten Update goroutine.
func (s *InputSystem) Poll() Intent {
	return s.Resolve(s.read())
}

func (s *InputSystem) read() RawInput {
	raw := RawInput{
		LeftKey:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		RightKey: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		JumpKey: ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
			ebiten.IsKeyPressed(ebiten.KeyW) ||
			ebiten.IsKeyPressed(ebiten.KeySpace),
		AckKey: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Click: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}

	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		raw.Touches = append(raw.Touches, image.Pt(x, y))
	}
	raw.NewTouch = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0

	return raw
}

// Resolve maps raw device state to an Intent. A touch on a button holds the
// matching direction or jump; any new press acknowledges.
func (s *InputSystem) Resolve(raw RawInput) Intent {
	in := Intent{
		Left:        raw.LeftKey,
		Right:       raw.RightKey,
		Jump:        raw.JumpKey,
		Acknowledge: raw.AckKey || raw.Click || raw.NewTouch,
	}

	for _, p := range raw.Touches {
		btn, ok := s.layout.ButtonAt(p)
		if !ok {
			continue
		}
		switch btn {
		case TouchLeft:
			in.Left = true
		case TouchRight:
			in.Right = true
		case TouchJump:
			in.Jump = true
		}
	}

	return in
}
