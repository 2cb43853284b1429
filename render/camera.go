package render

import (
	"github.com/golang/geo/r3"

	"github.com/motionvis/depthviz/spatialmath"
)

// cameraPoints are the fixed local-space vertices of the camera glyph: the
// apex at the origin, the four image-plane corners, a triangular up-vector
// flag, and an x-axis tick on the right edge.
var cameraPoints = []r3.Vector{
	{0, 0, 0},
	{-1, -1, 1.5},
	{1, -1, 1.5},
	{1, 1, 1.5},
	{-1, 1, 1.5},
	{-0.5, 1, 1.5},
	{0.5, 1, 1.5},
	{0, 1.2, 1.5},
	{1, -0.5, 1.5},
	{1, 0.5, 1.5},
	{1.2, 0, 1.5},
}

// cameraScale shrinks the glyph to a size that reads well next to unit-scale
// point clouds.
const cameraScale = 0.25

// NewCameraActor builds the wireframe camera glyph placed at the given pose.
// Each local vertex P maps to world space as (0.25*P - t) * R.
func NewCameraActor(pose spatialmath.Pose) *Actor {
	pts := make([]r3.Vector, len(cameraPoints))
	for i, p := range cameraPoints {
		pts[i] = pose.TransformPoint(p.Mul(cameraScale))
	}
	geom := &PolyData{
		Points: pts,
		Lines: [][]int{
			{1, 2, 3, 4, 1}, // image-plane rectangle
			{1, 0, 2},       // left frustum sides
			{3, 0, 4},       // right frustum sides
			{8, 10, 9},      // x-axis indicator
		},
		// up vector (y-axis)
		Polys: [][]int{{5, 6, 7}},
	}
	return &Actor{
		Geometry: geom,
		Style:    Style{Lighting: false, LineWidth: 2},
	}
}
