// Package render builds pure-data renderable actors: geometry descriptions
// plus draw style, independent of any concrete rendering backend.
package render

import (
	"github.com/golang/geo/r3"
)

// PolyData describes geometry as a set of points plus cells indexing into them.
type PolyData struct {
	// Points are the vertices of the geometry, in world space.
	Points []r3.Vector
	// Verts are point cells: each cell renders its indexed vertices as dots.
	Verts [][]int
	// Lines are polyline cells: consecutive indices within a cell are
	// connected by segments.
	Lines [][]int
	// Polys are filled polygon cells.
	Polys [][]int
	// Colors are packed RGB bytes parallel to Points; nil means the backend's
	// default color applies.
	Colors []uint8
}

// Style controls how a backend draws an actor's geometry.
type Style struct {
	// Lighting toggles shading; the schematic actors here render unlit.
	Lighting bool
	// LineWidth in pixels; zero or less leaves the backend default.
	LineWidth float32
	// PointSize in pixels; zero or less leaves the backend default.
	PointSize float32
}

// Actor combines geometry and style into one renderable scene object.
type Actor struct {
	Geometry *PolyData
	Style    Style
}
