package texture

import (
	"sort"

	"ctext/internal/core"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// Index is a static k-d tree over texture points. Queries rank points by
// planar Euclidean distance, not by the toroidal metric, so the k points it
// returns are the planar k nearest.
type Index struct {
	tree *kdtree.Tree
	n    int
}

// NewIndex builds an index over points. The slice is copied. A point with a
// coordinate outside [0, MaxCoordinate] fails with *CoordinateConversionError.
func NewIndex(points []core.Point) (*Index, error) {
	if len(points) == 0 {
		return &Index{}, nil
	}
	coords := make(kdtree.Points, len(points))
	for i, p := range points {
		if err := checkCoordinate(p.X); err != nil {
			return nil, err
		}
		if err := checkCoordinate(p.Y); err != nil {
			return nil, err
		}
		coords[i] = kdtree.Point{float64(p.X), float64(p.Y)}
	}
	return &Index{tree: kdtree.New(coords, false), n: len(points)}, nil
}

// Len returns the number of indexed points.
func (ix *Index) Len() int { return ix.n }

// KNearest returns up to k points ordered by ascending planar distance to q.
// Equal distances are ordered by x, then y. An empty index or k < 1 yields
// an empty result.
func (ix *Index) KNearest(q core.Point, k int) []core.Point {
	return ix.appendKNearest(nil, q, k)
}

func (ix *Index) appendKNearest(dst []core.Point, q core.Point, k int) []core.Point {
	if ix.n == 0 || k < 1 {
		return dst
	}
	if k > ix.n {
		k = ix.n
	}
	keep := kdtree.NewNKeeper(k)
	ix.tree.NearestSet(keep, kdtree.Point{float64(q.X), float64(q.Y)})

	found := make(kdtree.Heap, 0, len(keep.Heap))
	for _, c := range keep.Heap {
		// NKeeper seeds its heap with an infinite-distance sentinel.
		if c.Comparable == nil {
			continue
		}
		found = append(found, c)
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].Dist != found[j].Dist {
			return found[i].Dist < found[j].Dist
		}
		a, b := found[i].Comparable.(kdtree.Point), found[j].Comparable.(kdtree.Point)
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		return a[1] < b[1]
	})

	for _, c := range found {
		p := c.Comparable.(kdtree.Point)
		dst = append(dst, core.Point{X: int(p[0]), Y: int(p[1])})
	}
	return dst
}
