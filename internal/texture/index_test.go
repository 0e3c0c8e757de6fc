package texture

import (
	"testing"

	"ctext/internal/core"
	pcore "ctext/pkg/core"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampledIndexSize(t *testing.T) {
	dims := core.Dimensions{W: 10, H: 10}
	for _, n := range []int{0, 5} {
		index, err := NewIndex(SamplePoints(pcore.NewRNG(1), n, dims))
		require.NoError(t, err)
		assert.Equal(t, n, index.Len())
	}
}

func TestSamplePointsInBounds(t *testing.T) {
	dims := core.Dimensions{W: 7, H: 3}
	points := SamplePoints(pcore.NewRNG(11), 500, dims)
	require.Len(t, points, 500)
	for _, p := range points {
		if !dims.Contains(p) {
			t.Fatalf("sampled point %v outside %s", p, dims)
		}
	}
	assert.Empty(t, SamplePoints(pcore.NewRNG(11), 0, dims))
}

func TestEmptyIndexReturnsNothing(t *testing.T) {
	index, err := NewIndex(nil)
	require.NoError(t, err)
	assert.Empty(t, index.KNearest(core.Pt(3, 3), 4))
}

func TestKNearestOrdering(t *testing.T) {
	points := []core.Point{{X: 9, Y: 9}, {X: 0, Y: 0}, {X: 4, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 5}}
	index, err := NewIndex(points)
	require.NoError(t, err)

	got := index.KNearest(core.Pt(0, 0), 3)
	assert.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 4, Y: 0}}, got)

	// Fewer points than requested returns all of them.
	all := index.KNearest(core.Pt(0, 0), 10)
	assert.Equal(t, []core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 4, Y: 0}, {X: 0, Y: 5}, {X: 9, Y: 9}}, all)

	assert.Empty(t, index.KNearest(core.Pt(0, 0), 0))
}

func TestKNearestUsesPlanarDistance(t *testing.T) {
	// (9, 0) is a wrapped neighbour of (0, 0) on a 10-wide grid but far away
	// in the plane.
	index, err := NewIndex([]core.Point{{X: 9, Y: 0}, {X: 3, Y: 0}})
	require.NoError(t, err)
	assert.Equal(t, []core.Point{{X: 3, Y: 0}}, index.KNearest(core.Pt(0, 0), 1))
}

func TestKNearestTiesAreDeterministic(t *testing.T) {
	points := []core.Point{{X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 0}}
	index, err := NewIndex(points)
	require.NoError(t, err)
	got := index.KNearest(core.Pt(1, 1), 5)
	assert.Equal(t, []core.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}}, got)
}

func TestNewIndexRejectsOutOfRangeCoordinates(t *testing.T) {
	_, err := NewIndex([]core.Point{{X: 0, Y: 0}, {X: -1, Y: 4}})
	var convErr *CoordinateConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, -1, convErr.Value)
	assert.True(t, errors.Is(err, ErrCoordinateConversion))
}
