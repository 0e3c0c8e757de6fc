package core

import "math"

// WrappedDistance returns the Euclidean distance between a and b on the torus
// defined by d. An axis difference larger than half the side is replaced by
// its complement. Arithmetic is float64 throughout.
func WrappedDistance(a, b Point, d Dimensions) float64 {
	dx := math.Abs(float64(a.X) - float64(b.X))
	dy := math.Abs(float64(a.Y) - float64(b.Y))

	w := float64(d.W)
	if dx > w/2 {
		dx = w - dx
	}
	h := float64(d.H)
	if dy > h/2 {
		dy = h - dy
	}
	return math.Sqrt(dx*dx + dy*dy)
}

// PlanarDistance returns the ordinary Euclidean distance between a and b.
func PlanarDistance(a, b Point) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
