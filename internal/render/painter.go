//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TexturePainter uploads gray texture buffers into a single ebiten image.
type TexturePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewTexturePainter allocates a painter for a texture of size w*h.
func NewTexturePainter(w, h int) *TexturePainter {
	tp := &TexturePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	tp.img = ebiten.NewImage(w, h)
	return tp
}

// Upload replaces the painter image with gray mapped onto the lo..hi ramp.
func (tp *TexturePainter) Upload(gray []uint8, lo, hi color.Color) {
	if len(gray) != tp.w*tp.h {
		return
	}
	FillRampRGBA(tp.buf, gray, lo, hi)
	tp.img.WritePixels(tp.buf)
}

// Blit draws the last uploaded texture scaled by scale.
func (tp *TexturePainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(tp.img, op)
}

// Size returns the dimensions of the underlying image.
func (tp *TexturePainter) Size() (int, int) { return tp.w, tp.h }
