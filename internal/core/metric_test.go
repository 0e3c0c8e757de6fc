package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappedDistance(t *testing.T) {
	dims := Dimensions{W: 10, H: 10}
	cases := []struct {
		name string
		a, b Point
		want float64
	}{
		{"no wrap", Pt(0, 0), Pt(3, 4), 5},
		{"wrap both axes", Pt(0, 0), Pt(9, 9), math.Sqrt2},
		{"wrap x only", Pt(1, 2), Pt(8, 2), 3},
		{"exactly half is not reflected", Pt(0, 0), Pt(5, 0), 5},
		{"same point", Pt(4, 7), Pt(4, 7), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WrappedDistance(tc.a, tc.b, dims))
		})
	}
}

func TestWrappedDistanceSymmetric(t *testing.T) {
	dims := Dimensions{W: 17, H: 11}
	for ax := 0; ax < dims.W; ax += 3 {
		for ay := 0; ay < dims.H; ay += 2 {
			a := Pt(ax, ay)
			assert.Zero(t, WrappedDistance(a, a, dims))
			for bx := 0; bx < dims.W; bx += 4 {
				for by := 0; by < dims.H; by += 3 {
					b := Pt(bx, by)
					if WrappedDistance(a, b, dims) != WrappedDistance(b, a, dims) {
						t.Fatalf("asymmetric distance between %v and %v", a, b)
					}
				}
			}
		}
	}
}

func TestWrappedDistanceNeverExceedsPlanar(t *testing.T) {
	dims := Dimensions{W: 32, H: 24}
	a := Pt(2, 3)
	for x := 0; x < dims.W; x++ {
		for y := 0; y < dims.H; y++ {
			b := Pt(x, y)
			assert.LessOrEqual(t, WrappedDistance(a, b, dims), PlanarDistance(a, b))
		}
	}
}

func TestPlanarDistance(t *testing.T) {
	assert.Equal(t, 5.0, PlanarDistance(Pt(0, 0), Pt(3, 4)))
	assert.Equal(t, math.Sqrt(162), PlanarDistance(Pt(0, 0), Pt(9, 9)))
}
