//go:build ebiten

package ui

import (
	"image/color"

	"ctext/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay marks the texture points on top of the rendered texture.
type Overlay struct {
	scale   int
	visible bool
	markers []Marker
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay for the given view scale.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetPoints replaces the marked texture points.
func (o *Overlay) SetPoints(points []core.Point) {
	o.markers = Markers(points, o.scale)
}

// Update toggles visibility with the P key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.visible = !o.visible
	}
}

// Draw renders the markers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	size := float64(o.scale) * 1.5
	if size < 3 {
		size = 3
	}
	for _, m := range o.markers {
		o.drawPoint(screen, m.X, m.Y, size, color.RGBA{R: 255, G: 80, B: 60, A: 255})
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
