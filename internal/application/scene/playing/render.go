package playing

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/catleap/internal/application/session"
	"github.com/younwookim/catleap/internal/application/state"
	"github.com/younwookim/catleap/internal/application/system"
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/assets"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{31, 33, 64, 255}
	colorPlatform  = color.RGBA{123, 211, 137, 255}
	colorSpike     = color.RGBA{230, 57, 70, 255}
	colorSpikeDim  = color.RGBA{80, 20, 25, 89} // colorSpike at 35% alpha, premultiplied
	colorPatrol    = color.RGBA{255, 159, 28, 255}
	colorGoal      = color.RGBA{255, 114, 182, 255}
	colorPlayer    = color.RGBA{255, 209, 102, 255}
	colorText      = color.RGBA{255, 255, 255, 255}
	colorFinalText = color.RGBA{255, 221, 232, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
	colorFinalBG   = color.RGBA{0, 0, 0, 153}
	colorButton    = color.RGBA{255, 255, 255, 96}
)

const goalImageScale = 0.9

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
)

// newFace returns a Go Regular face of the given size, or the fixed basic
// font when the TTF cannot be parsed
func newFace(size float64) text.Face {
	fontOnce.Do(func() {
		fontSource, _ = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if fontSource == nil {
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return &text.GoTextFace{Source: fontSource, Size: size}
}

type renderer struct {
	w, h   int
	images assets.Images

	hud     text.Face
	message text.Face
	final   text.Face
	hint    text.Face

	pixel *ebiten.Image
}

func newRenderer(w, h int, images assets.Images) *renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &renderer{
		w:       w,
		h:       h,
		images:  images,
		hud:     newFace(16),
		message: newFace(20),
		final:   newFace(28),
		hint:    newFace(14),
		pixel:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (r *renderer) draw(screen *ebiten.Image, v session.View, title string) {
	r.drawBackground(screen)

	for _, plat := range v.Platforms {
		fillRect(screen, plat, colorPlatform)
	}

	for _, h := range v.Hazards {
		switch h.Kind {
		case entity.HazardStatic:
			r.drawSpikes(screen, h.Rect, colorSpike)
		case entity.HazardTimed:
			if h.Active {
				r.drawSpikes(screen, h.Rect, colorSpike)
			} else {
				r.drawSpikes(screen, h.Rect, colorSpikeDim)
			}
		case entity.HazardPatrol:
			fillRect(screen, h.Rect, colorPatrol)
		}
	}

	r.drawGoal(screen, v.Goal)
	r.drawPlayer(screen, v.Player)

	hud := fmt.Sprintf("Level %d / %d", v.LevelIndex+1, v.LevelCount)
	if title != "" {
		hud = title + "  " + hud
	}
	r.drawText(screen, hud, r.hud, 12, 12, text.AlignStart, colorText)

	switch v.Mode {
	case state.ModeShowingMessage:
		r.drawOverlay(screen, v.Message, overlayStyle{
			bg: colorOverlay, fg: colorText, face: r.message,
			maxWidth: 520, lineHeight: 24, offsetY: -10,
			hint: "Tap or press to continue", hintY: 120,
		})
	case state.ModeShowingFinal:
		r.drawOverlay(screen, v.Message, overlayStyle{
			bg: colorFinalBG, fg: colorFinalText, face: r.final,
			maxWidth: 600, lineHeight: 32, offsetY: -12,
			hint: "Tap to restart", hintY: 140,
		})
	}
}

func (r *renderer) drawBackground(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if bg := r.images.Background; bg != nil {
		drawSprite(screen, bg, entity.Rect{W: float64(r.w), H: float64(r.h)})
	}
}

func (r *renderer) drawGoal(screen *ebiten.Image, goal entity.Rect) {
	if s := r.images.Goal; s != nil {
		drawSprite(screen, s, assets.FitInside(goal, s.Crop.Dx(), s.Crop.Dy(), goalImageScale))
		return
	}
	fillRect(screen, goal, colorGoal)
}

func (r *renderer) drawPlayer(screen *ebiten.Image, player entity.Rect) {
	if s := r.images.Player; s != nil {
		drawSprite(screen, s, player)
		return
	}
	fillRect(screen, player, colorPlayer)
}

// drawSpikes fills a strip of teeth standing on the bottom edge of rect
func (r *renderer) drawSpikes(screen *ebiten.Image, rect entity.Rect, clr color.RGBA) {
	teeth := spikeTeeth(rect)
	if len(teeth) == 0 {
		return
	}

	cr := float32(clr.R) / 0xff
	cg := float32(clr.G) / 0xff
	cb := float32(clr.B) / 0xff
	ca := float32(clr.A) / 0xff

	vs := make([]ebiten.Vertex, 0, len(teeth)*3)
	is := make([]uint16, 0, len(teeth)*3)
	for _, tri := range teeth {
		for _, pt := range tri {
			is = append(is, uint16(len(vs)))
			vs = append(vs, ebiten.Vertex{
				DstX:   float32(pt.X),
				DstY:   float32(pt.Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
	}
	screen.DrawTriangles(vs, is, r.pixel, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}

// overlayStyle positions the message block relative to the screen centre
type overlayStyle struct {
	bg, fg     color.RGBA
	face       text.Face
	maxWidth   float64
	lineHeight float64
	offsetY    float64
	hint       string
	hintY      float64
}

func (r *renderer) drawOverlay(screen *ebiten.Image, msg string, st overlayStyle) {
	vector.FillRect(screen, 0, 0, float32(r.w), float32(r.h), st.bg, false)

	lines := wrapLines(msg, st.maxWidth, func(s string) float64 { return text.Advance(s, st.face) })
	cx := float64(r.w) / 2
	y := float64(r.h)/2 + st.offsetY - float64(len(lines)-1)*st.lineHeight/2
	for _, line := range lines {
		r.drawText(screen, line, st.face, cx, y, text.AlignCenter, st.fg)
		y += st.lineHeight
	}

	r.drawText(screen, st.hint, r.hint, cx, float64(r.h)/2+st.hintY, text.AlignCenter, colorText)
}

func (r *renderer) drawTouchButtons(screen *ebiten.Image, layout system.TouchLayout) {
	for _, b := range layout.Buttons() {
		x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
		w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
		vector.StrokeRect(screen, x, y, w, h, 2, colorButton, false)

		c := b.Rect.Min.Add(b.Rect.Size().Div(2))
		r.drawText(screen, b.Button.String(), r.message, float64(c.X), float64(c.Y), text.AlignCenter, colorButton)
	}
}

// drawText draws one line vertically centred on y
func (r *renderer) drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

func fillRect(screen *ebiten.Image, r entity.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// drawSprite draws the visible crop of a sprite stretched over dst
func drawSprite(screen *ebiten.Image, s *assets.Sprite, dst entity.Rect) {
	if s.Crop.Empty() {
		return
	}
	src := s.Image.SubImage(s.Crop).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(s.Crop.Dx()), dst.H/float64(s.Crop.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(src, op)
}

// spikeTeeth splits a hazard rect into triangles standing on its bottom edge.
// Tooth width is a fifth of the strip, kept within [8, 24].
func spikeTeeth(r entity.Rect) [][3]entity.Point {
	if r.Empty() {
		return nil
	}
	base := r.Bottom()
	w := max(8, min(24, r.W/5))

	var out [][3]entity.Point
	for x := r.X; x < r.Right(); x += w {
		out = append(out, [3]entity.Point{
			{X: x, Y: base},
			{X: x + w/2, Y: base - r.H},
			{X: x + w, Y: base},
		})
	}
	return out
}
