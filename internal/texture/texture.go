// Package texture synthesizes grayscale cellular textures: every pixel is
// shaded by its distance to the nearest of a set of randomly scattered
// texture points.
package texture

import (
	"image"

	"ctext/internal/core"
	pcore "ctext/pkg/core"

	"github.com/pkg/errors"
)

// Pixel is a grid coordinate and its gray value.
type Pixel struct {
	Location core.Point
	Gray     uint8
}

// Texture is a generated image in row-major order.
type Texture struct {
	Dimensions core.Dimensions
	Pixels     []Pixel
}

// Gray returns the pixel intensities in row-major order.
func (t *Texture) Gray() []uint8 {
	out := make([]uint8, len(t.Pixels))
	for i, p := range t.Pixels {
		out[i] = p.Gray
	}
	return out
}

// Image returns the texture as an *image.Gray.
func (t *Texture) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, t.Dimensions.W, t.Dimensions.H))
	for _, p := range t.Pixels {
		img.Pix[img.PixOffset(p.Location.X, p.Location.Y)] = p.Gray
	}
	return img
}

// Generate samples cfg.NumTexturePoints points from src and renders the
// texture. The same source state and configuration always produce the same
// texture.
func Generate(cfg Config, src pcore.IntSource) (*Texture, error) {
	if err := checkDimensions(cfg.Dimensions); err != nil {
		return nil, err
	}
	points := SamplePoints(src, cfg.NumTexturePoints, cfg.Dimensions)
	Logger().Debug("sampled texture points", "count", len(points))
	return GenerateFromPoints(cfg, points)
}

// GenerateFromPoints renders the texture for a fixed set of texture points.
// cfg.NumTexturePoints is ignored.
func GenerateFromPoints(cfg Config, points []core.Point) (*Texture, error) {
	if err := checkDimensions(cfg.Dimensions); err != nil {
		return nil, err
	}
	log := Logger()

	index, err := NewIndex(points)
	if err != nil {
		return nil, errors.Wrap(err, "build spatial index")
	}
	log.Debug("built spatial index", "size", index.Len())

	field, err := Aggregate(cfg, index)
	if err != nil {
		return nil, err
	}
	log.Debug("accumulated distance field", "min", field.Min, "max", field.Max, "mean", field.Mean())

	gray, err := Normalize(field, cfg.InvertColors)
	if err != nil {
		return nil, err
	}
	log.Debug("normalized distance field", "pixels", len(gray), "invert", cfg.InvertColors)

	tex := &Texture{Dimensions: cfg.Dimensions, Pixels: make([]Pixel, len(gray))}
	for i, g := range gray {
		tex.Pixels[i] = Pixel{Location: cfg.Dimensions.At(i), Gray: g}
	}
	return tex, nil
}

func checkDimensions(d core.Dimensions) error {
	if !d.Valid() {
		return errors.Errorf("dimensions must be positive, got %s", d)
	}
	if err := checkCoordinate(d.W); err != nil {
		return err
	}
	return checkCoordinate(d.H)
}
