package texture

import (
	"ctext/internal/core"
	pcore "ctext/pkg/core"
)

// SamplePoints draws n coordinates uniformly from the grid. Duplicates are
// kept. n <= 0 yields an empty slice.
func SamplePoints(src pcore.IntSource, n int, dims core.Dimensions) []core.Point {
	if n <= 0 {
		return []core.Point{}
	}
	points := make([]core.Point, n)
	for i := range points {
		points[i] = core.Point{X: src.IntN(dims.W), Y: src.IntN(dims.H)}
	}
	return points
}
