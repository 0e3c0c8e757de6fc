package texture

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	f := &Field{Min: 0, Max: 1, Values: []float64{0.5, 0.25, 0.75, 1.0}}

	gray, err := Normalize(f, false)
	require.NoError(t, err)
	assert.Equal(t, []uint8{128, 64, 191, 255}, gray)

	inverted, err := Normalize(f, true)
	require.NoError(t, err)
	assert.Equal(t, []uint8{128, 191, 64, 0}, inverted)
}

func TestNormalizeOutOfRange(t *testing.T) {
	f := &Field{Min: 0, Max: 1, Values: []float64{5.0}}
	_, err := Normalize(f, false)

	var convErr *IntensityConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, 0, convErr.Index)
	assert.Equal(t, 1275.0, convErr.Value)
	assert.True(t, errors.Is(err, ErrIntensityConversion))
}

func TestNormalizeFlatField(t *testing.T) {
	f := &Field{Min: 1, Max: 1, Values: []float64{1, 1}}
	for _, invert := range []bool{false, true} {
		_, err := Normalize(f, invert)
		var convErr *IntensityConversionError
		require.True(t, errors.As(err, &convErr))
		assert.True(t, math.IsNaN(convErr.Value))
	}
}

func TestNormalizeRange(t *testing.T) {
	f := NewField(64)
	for i := 0; i < 64; i++ {
		f.Record(math.Sin(float64(i)) * 37.5)
	}
	gray, err := Normalize(f, false)
	require.NoError(t, err)
	assert.Contains(t, gray, uint8(0))
	assert.Contains(t, gray, uint8(255))
}
