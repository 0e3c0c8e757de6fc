package core

// Index returns the linear row-major slice index for p.
func (d Dimensions) Index(p Point) int { return p.Y*d.W + p.X }

// At returns the coordinate stored at linear index i.
func (d Dimensions) At(i int) Point { return Point{X: i % d.W, Y: i / d.W} }

// Contains reports whether p lies inside the grid.
func (d Dimensions) Contains(p Point) bool {
	return p.X >= 0 && p.X < d.W && p.Y >= 0 && p.Y < d.H
}

// Wrap applies toroidal wrapping to the provided coordinate.
func (d Dimensions) Wrap(p Point) Point {
	p.X = (p.X%d.W + d.W) % d.W
	p.Y = (p.Y%d.H + d.H) % d.H
	return p
}

// Each visits every coordinate in row-major order, y outer and x inner. It
// stops early and returns the first error produced by fn.
func (d Dimensions) Each(fn func(p Point) error) error {
	for y := 0; y < d.H; y++ {
		for x := 0; x < d.W; x++ {
			if err := fn(Point{X: x, Y: y}); err != nil {
				return err
			}
		}
	}
	return nil
}
