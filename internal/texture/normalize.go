package texture

import (
	"math"
)

// Normalize maps every value of f onto [0, 255] using the field's global
// range, optionally inverted, rounding half away from zero. A value that
// lands outside [0, 255] or is not finite fails with
// *IntensityConversionError; nothing is clamped.
func Normalize(f *Field, invert bool) ([]uint8, error) {
	out := make([]uint8, len(f.Values))
	span := f.Max - f.Min
	for i, v := range f.Values {
		t := (v - f.Min) / span
		if invert {
			t = 1 - t
		}
		scaled := math.Round(t * 255)
		if math.IsNaN(scaled) || scaled < 0 || scaled > 255 {
			return nil, &IntensityConversionError{Index: i, Value: scaled}
		}
		out[i] = uint8(scaled)
	}
	return out, nil
}
