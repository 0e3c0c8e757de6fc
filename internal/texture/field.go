package texture

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Field buffers one raw aggregate distance per pixel in row-major order and
// tracks the running minimum and maximum.
type Field struct {
	Min    float64
	Max    float64
	Values []float64
}

// NewField returns an empty field with room for n values.
func NewField(n int) *Field {
	return &Field{Min: math.Inf(1), Max: math.Inf(-1), Values: make([]float64, 0, n)}
}

// Record appends v and widens the range to include it. NaN never moves the
// range.
func (f *Field) Record(v float64) {
	if v < f.Min {
		f.Min = v
	}
	if v > f.Max {
		f.Max = v
	}
	f.Values = append(f.Values, v)
}

// Len returns the number of recorded values.
func (f *Field) Len() int { return len(f.Values) }

// Mean returns the arithmetic mean of the recorded values, or NaN when empty.
func (f *Field) Mean() float64 {
	if len(f.Values) == 0 {
		return math.NaN()
	}
	return floats.Sum(f.Values) / float64(len(f.Values))
}
