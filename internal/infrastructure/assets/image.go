// Package assets loads optional images: the player sprite, the goal image and
// the background. Every image is optional; callers draw plain shapes when one
// is missing.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/catleap/internal/domain/entity"
)

// AlphaThreshold is the alpha a pixel must exceed to count as visible
const AlphaThreshold = 10

// Sprite is a loaded image plus the part of it worth drawing
type Sprite struct {
	Image *ebiten.Image
	// Crop is the visible region of Image, used as the draw source
	Crop image.Rectangle
}

// Images holds the optional images of a run
type Images struct {
	Player     *Sprite
	Goal       *Sprite
	Background *Sprite
}

// Decode decodes image bytes and computes the visible crop.
// A fully transparent image keeps its full bounds as the crop.
func Decode(b []byte) (image.Image, image.Rectangle, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("failed to decode image: %w", err)
	}
	crop, ok := VisibleBounds(img, AlphaThreshold)
	if !ok {
		crop = img.Bounds()
	}
	return img, crop, nil
}

// LoadSprite reads an image file and converts it to a Sprite.
// An empty path returns nil without error.
func LoadSprite(path string) (*Sprite, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	img, crop, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Sprite{Image: ebiten.NewImageFromImage(img), Crop: crop}, nil
}

// VisibleBounds returns the smallest rectangle holding every pixel whose
// alpha exceeds threshold. ok is false for a fully transparent image.
func VisibleBounds(img image.Image, threshold uint8) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	limit := uint32(threshold) * 0x101
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a <= limit {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// FitInside scales a w x h image to fit inside dst shrunk by scale, keeping
// the aspect ratio, and centres it
func FitInside(dst entity.Rect, w, h int, scale float64) entity.Rect {
	if w <= 0 || h <= 0 {
		return dst
	}
	if scale <= 0 {
		scale = 1
	}
	maxW, maxH := dst.W*scale, dst.H*scale
	s := min(maxW/float64(w), maxH/float64(h))
	dw, dh := float64(w)*s, float64(h)*s
	return entity.Rect{
		X: dst.X + (dst.W-dw)/2,
		Y: dst.Y + (dst.H-dh)/2,
		W: dw,
		H: dh,
	}
}
