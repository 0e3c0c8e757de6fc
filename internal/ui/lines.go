package ui

import (
	"ctext/internal/core"
)

// Line is one row of text in the parameter panel.
type Line struct {
	Text   string
	Header bool
}

// Lines lays out a parameter snapshot as panel rows: a header per group
// followed by "label: value" rows, then the key hints.
func Lines(s core.ParameterSnapshot, hints []string) []Line {
	var out []Line
	for _, g := range s.Groups {
		out = append(out, Line{Text: g.Name, Header: true})
		for _, p := range g.Params {
			out = append(out, Line{Text: p.Label + ": " + p.Value})
		}
	}
	if len(hints) > 0 {
		out = append(out, Line{Text: "Keys", Header: true})
		for _, h := range hints {
			out = append(out, Line{Text: h})
		}
	}
	return out
}

// Marker is a texture point position in screen coordinates.
type Marker struct {
	X, Y float64
}

// Markers converts grid points into the screen-space centres of their
// cells at the given scale.
func Markers(points []core.Point, scale int) []Marker {
	if scale <= 0 {
		scale = 1
	}
	out := make([]Marker, len(points))
	s := float64(scale)
	for i, p := range points {
		out[i] = Marker{X: (float64(p.X) + 0.5) * s, Y: (float64(p.Y) + 0.5) * s}
	}
	return out
}
