// Package encode writes gray pixel buffers to image files, choosing the
// format from the file extension.
package encode

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder writes img to w in one image format.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{}

// Register adds an encoder for the given extension (with or without the
// leading dot, case-insensitive).
func Register(ext string, e Encoder) {
	ext = normalizeExt(ext)
	if ext == "" || e == nil {
		return
	}
	encoders[ext] = e
}

// Formats lists the registered extensions in sorted order.
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for ext := range encoders {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the encoder registered for the extension of path.
func Lookup(path string) (Encoder, error) {
	ext := normalizeExt(filepath.Ext(path))
	e, ok := encoders[ext]
	if !ok {
		if ext == "" {
			return nil, errors.Wrapf(ErrUnsupportedFormat, "%q has no file extension", path)
		}
		return nil, errors.Wrapf(ErrUnsupportedFormat, "extension %q (want one of %s)", ext, strings.Join(Formats(), ", "))
	}
	return e, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// encodeGIF draws onto a 256-level gray palette before encoding.
func encodeGIF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	pm := image.NewPaletted(b, grayPalette)
	draw.Draw(pm, b, img, b.Min, draw.Src)
	return gif.Encode(w, pm, &gif.Options{NumColors: len(grayPalette)})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

func encodeWebP(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: true})
}

func init() {
	Register(".png", encodePNG)
	Register(".jpg", encodeJPEG)
	Register(".jpeg", encodeJPEG)
	Register(".gif", encodeGIF)
	Register(".bmp", bmp.Encode)
	Register(".tif", encodeTIFF)
	Register(".tiff", encodeTIFF)
	Register(".webp", encodeWebP)
}
