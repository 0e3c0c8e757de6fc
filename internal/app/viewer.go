//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"ctext/internal/core"
	"ctext/internal/encode"
	"ctext/internal/render"
	"ctext/internal/texture"
	"ctext/internal/ui"
	pcore "ctext/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 220

// Viewer adapts texture generation to the ebiten.Game interface.
type Viewer struct {
	cfg    texture.Config
	seed   int64
	points []core.Point
	tex    *texture.Texture
	status string

	painter *render.TexturePainter
	overlay *ui.Overlay
	panel   *ui.Panel

	lo, hi color.Color
	scale  int
	output string
}

// NewViewer constructs a Viewer and renders the first texture from seed.
func NewViewer(cfg texture.Config, seed int64, scale int, output string) *Viewer {
	if scale <= 0 {
		scale = 1
	}
	hints := []string{"R  new seed", "I  invert", "D  distance op", "M  metric", "P  show points", "Q  quit"}
	if output != "" {
		hints = append(hints[:len(hints)-1], "S  save", "Q  quit")
	}
	v := &Viewer{
		cfg:     cfg,
		painter: render.NewTexturePainter(cfg.Dimensions.W, cfg.Dimensions.H),
		overlay: ui.NewOverlay(scale),
		panel:   ui.NewPanel("ctext", panelWidth, hints),
		lo:      color.Black,
		hi:      color.White,
		scale:   scale,
		output:  output,
	}
	v.Reset(seed)
	return v
}

// Reset scatters a fresh point set from seed and re-renders.
func (v *Viewer) Reset(seed int64) {
	v.seed = seed
	v.points = texture.SamplePoints(pcore.NewRNG(seed), v.cfg.NumTexturePoints, v.cfg.Dimensions)
	v.overlay.SetPoints(v.points)
	v.render()
}

// Parameters reports the current configuration and seed.
func (v *Viewer) Parameters() core.ParameterSnapshot {
	s := v.cfg.Parameters()
	s.Groups = append(s.Groups, core.ParameterGroup{
		Name:   "Run",
		Params: []core.Parameter{{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: fmt.Sprint(v.seed)}},
	})
	return s
}

func (v *Viewer) render() {
	tex, err := texture.GenerateFromPoints(v.cfg, v.points)
	if err != nil {
		texture.Logger().Warn("texture generation failed", "err", err)
		v.status = err.Error()
		return
	}
	v.tex = tex
	v.status = ""
	v.painter.Upload(tex.Gray(), v.lo, v.hi)
}

// Update handles per-frame input.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		v.cfg.InvertColors = !v.cfg.InvertColors
		v.render()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.cfg.DistOp = v.cfg.DistOp.Next()
		v.render()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if v.cfg.Metric == texture.Wrapped {
			v.cfg.Metric = texture.Planar
		} else {
			v.cfg.Metric = texture.Wrapped
		}
		v.render()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && v.output != "" && v.tex != nil {
		d := v.tex.Dimensions
		if err := encode.WriteGray(v.output, d.W, d.H, v.tex.Gray(), 1); err != nil {
			v.status = err.Error()
		} else {
			v.status = "saved " + v.output
		}
	}

	v.overlay.Update()
	v.panel.Update(v, v.status)
	return nil
}

// Draw renders the texture, the point overlay and the panel.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.painter.Blit(screen, v.scale)
	v.overlay.Draw(screen)
	v.panel.Draw(screen, v.cfg.Dimensions.W*v.scale, v.cfg.Dimensions.H*v.scale)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Dimensions.W*v.scale + v.panel.Width(), v.cfg.Dimensions.H * v.scale
}
