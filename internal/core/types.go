package core

import "fmt"

// Dimensions describes the size of a texture grid. The grid is treated as a
// torus by the wrapped distance metric.
type Dimensions struct {
	W int
	H int
}

// Area returns the number of cells in the grid.
func (d Dimensions) Area() int { return d.W * d.H }

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool { return d.W > 0 && d.H > 0 }

func (d Dimensions) String() string { return fmt.Sprintf("%dx%d", d.W, d.H) }

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }
