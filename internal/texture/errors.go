package texture

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrNoNeighbors is matched by *NoNeighborsError.
	ErrNoNeighbors = errors.New("no neighbors found")
	// ErrIntensityConversion is matched by *IntensityConversionError.
	ErrIntensityConversion = errors.New("intensity conversion failed")
	// ErrCoordinateConversion is matched by *CoordinateConversionError.
	ErrCoordinateConversion = errors.New("coordinate conversion failed")
)

// MaxCoordinate is the largest coordinate the spatial index accepts.
const MaxCoordinate = math.MaxInt32

// NoNeighborsError reports a pixel whose neighbor query came back empty.
type NoNeighborsError struct {
	X, Y int
}

func (e *NoNeighborsError) Error() string {
	return fmt.Sprintf("failed to find any neighbors of the pixel (%d, %d)", e.X, e.Y)
}

// Is reports whether target is ErrNoNeighbors.
func (e *NoNeighborsError) Is(target error) bool { return target == ErrNoNeighbors }

// IntensityConversionError reports a normalized intensity that does not fit
// in an 8-bit gray value. Value is the rounded, scaled intensity and may be
// NaN or infinite.
type IntensityConversionError struct {
	Index int
	Value float64
}

func (e *IntensityConversionError) Error() string {
	return fmt.Sprintf("could not convert grayscale value %v of pixel %d to uint8", e.Value, e.Index)
}

// Is reports whether target is ErrIntensityConversion.
func (e *IntensityConversionError) Is(target error) bool { return target == ErrIntensityConversion }

// CoordinateConversionError reports a coordinate outside [0, MaxCoordinate].
type CoordinateConversionError struct {
	Value int
}

func (e *CoordinateConversionError) Error() string {
	return fmt.Sprintf("coordinate %d does not fit the index coordinate range [0, %d]", e.Value, MaxCoordinate)
}

// Is reports whether target is ErrCoordinateConversion.
func (e *CoordinateConversionError) Is(target error) bool { return target == ErrCoordinateConversion }

func checkCoordinate(v int) error {
	if v < 0 || v > MaxCoordinate {
		return &CoordinateConversionError{Value: v}
	}
	return nil
}
