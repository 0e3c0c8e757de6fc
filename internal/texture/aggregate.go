package texture

import (
	"ctext/internal/core"
)

// Fold combines dists left to right starting from the first element. It
// reports false for an empty slice. A single distance is returned unchanged.
func (op DistanceOperation) Fold(dists []float64) (float64, bool) {
	if len(dists) == 0 {
		return 0, false
	}
	acc := dists[0]
	for _, d := range dists[1:] {
		switch op {
		case Add:
			acc += d
		case Subtract:
			acc -= d
		case Multiply:
			acc *= d
		case Divide:
			acc /= d
		}
	}
	return acc, true
}

// aggregator walks the grid and folds each pixel's neighbor distances into
// the field.
type aggregator struct {
	cfg       Config
	index     *Index
	field     *Field
	neighbors []core.Point
	dists     []float64
}

func newAggregator(cfg Config, index *Index) *aggregator {
	k := cfg.NumNeighbors
	if k < 0 {
		k = 0
	}
	if k > index.Len() {
		k = index.Len()
	}
	return &aggregator{
		cfg:       cfg,
		index:     index,
		field:     NewField(cfg.Dimensions.Area()),
		neighbors: make([]core.Point, 0, k),
		dists:     make([]float64, 0, k),
	}
}

// pixel records the aggregate distance for p. Neighbor order from the index
// is kept because Subtract and Divide are not commutative.
func (a *aggregator) pixel(p core.Point) error {
	a.neighbors = a.index.appendKNearest(a.neighbors[:0], p, a.cfg.NumNeighbors)
	a.dists = a.dists[:0]
	for _, n := range a.neighbors {
		a.dists = append(a.dists, a.cfg.Metric.Distance(p, n, a.cfg.Dimensions))
	}
	v, ok := a.cfg.DistOp.Fold(a.dists)
	if !ok {
		return &NoNeighborsError{X: p.X, Y: p.Y}
	}
	a.field.Record(v)
	return nil
}

// Aggregate computes the raw distance field for cfg over index.
func Aggregate(cfg Config, index *Index) (*Field, error) {
	a := newAggregator(cfg, index)
	if err := cfg.Dimensions.Each(a.pixel); err != nil {
		return nil, err
	}
	return a.field, nil
}
