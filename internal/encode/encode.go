package encode

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned when no encoder handles a path's extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// EncodingError reports a failure to write an image to Path.
type EncodingError struct {
	Path string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("could not write image %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncodingError) Unwrap() error { return e.Err }

// GrayImage wraps a row-major gray buffer of width*height bytes.
func GrayImage(width, height int, gray []uint8) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid image size %dx%d", width, height)
	}
	if len(gray) != width*height {
		return nil, errors.Errorf("pixel buffer holds %d values, want %d for %dx%d", len(gray), width*height, width, height)
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, gray)
	return img, nil
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling
// so cell edges stay crisp. A factor of 1 or less returns img unchanged.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return resize.Resize(uint(b.Dx()*factor), uint(b.Dy()*factor), img, resize.NearestNeighbor)
}

// Save encodes img into path using the encoder registered for its extension.
// A partially written file is removed. Every failure is an *EncodingError.
func Save(path string, img image.Image) error {
	enc, err := Lookup(path)
	if err != nil {
		return &EncodingError{Path: path, Err: err}
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return &EncodingError{Path: path, Err: errors.Wrap(err, "create file")}
	}
	if err := enc(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return &EncodingError{Path: path, Err: errors.Wrap(err, "encode")}
	}
	if err := f.Close(); err != nil {
		return &EncodingError{Path: path, Err: errors.Wrap(err, "close file")}
	}
	return nil
}

// WriteGray writes a width*height row-major gray buffer to path, upscaled by
// scale.
func WriteGray(path string, width, height int, gray []uint8, scale int) error {
	img, err := GrayImage(width, height, gray)
	if err != nil {
		return &EncodingError{Path: path, Err: err}
	}
	return Save(path, Upscale(img, scale))
}
