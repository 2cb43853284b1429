package render

import (
	"github.com/golang/geo/r3"
)

// axisColors are the conventional axis colors: X red, Y green, Z blue.
var axisColors = [3][3]uint8{
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
}

// arrowHeadScale sizes the arrowhead barbs relative to the unit shaft.
const arrowHeadScale = 0.08

// NewAxesActor builds the coordinate-axes gizmo: a unit-length colored line
// per world axis with a small arrowhead at the tip.
func NewAxesActor() *Actor {
	var pts []r3.Vector
	var colors []uint8
	var lines [][]int

	addPoint := func(p r3.Vector, c [3]uint8) int {
		pts = append(pts, p)
		colors = append(colors, c[0], c[1], c[2])
		return len(pts) - 1
	}

	dirs := [3]r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}
	for axis, dir := range dirs {
		c := axisColors[axis]
		origin := addPoint(r3.Vector{}, c)
		tip := addPoint(dir, c)
		lines = append(lines, []int{origin, tip})

		// four barbs splayed along the other two axes
		base := dir.Mul(1 - 2*arrowHeadScale)
		u := dirs[(axis+1)%3].Mul(arrowHeadScale)
		v := dirs[(axis+2)%3].Mul(arrowHeadScale)
		for _, offset := range []r3.Vector{u, u.Mul(-1), v, v.Mul(-1)} {
			barb := addPoint(base.Add(offset), c)
			lines = append(lines, []int{tip, barb})
		}
	}

	return &Actor{
		Geometry: &PolyData{Points: pts, Lines: lines, Colors: colors},
		Style:    Style{Lighting: false, LineWidth: 2},
	}
}
