//go:build ebiten

package ui

import (
	"image/color"

	"ctext/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Panel renders the parameter listing to the right of the texture view.
type Panel struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	hints      []string
	lines      []Line
	status     string
}

// NewPanel constructs a panel of the given width.
func NewPanel(title string, width int, hints []string) *Panel {
	if width < 0 {
		width = 0
	}
	return &Panel{title: title, width: width, hints: hints}
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int {
	if p == nil {
		return 0
	}
	return p.width
}

// Update refreshes the listed parameters and the status line.
func (p *Panel) Update(provider core.ParameterProvider, status string) {
	if p == nil {
		return
	}
	p.lines = Lines(provider.Parameters(), p.hints)
	p.status = status
}

// Draw paints the panel at offsetX with the given height.
func (p *Panel) Draw(screen *ebiten.Image, offsetX, height int) {
	if p == nil || p.width <= 0 || height <= 0 {
		return
	}
	if p.panel == nil || p.lastHeight != height {
		p.panel = ebiten.NewImage(p.width, height)
		p.lastHeight = height
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(p.panel, p.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight
	for _, l := range p.lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		x := panelPadding + indent
		if l.Header {
			y += groupGap
			col = color.RGBA{R: 150, G: 180, B: 220, A: 255}
			x = panelPadding
		}
		text.Draw(p.panel, l.Text, face, x, y, col)
		y += lineHeight
	}
	if p.status != "" {
		text.Draw(p.panel, p.status, face, panelPadding, height-panelPadding, color.RGBA{R: 230, G: 120, B: 110, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.panel, op)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
	groupGap       = 8
	indent         = 8
)
