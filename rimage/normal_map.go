package rimage

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// NormalMap is a planar field of per-pixel surface normals: three row-major
// HxW planes holding the X, Y, and Z components.
type NormalMap struct {
	width  int
	height int

	planes [3][]float64
}

// NewNormalMapFromPlanes returns a normal map backed by the given component planes.
func NewNormalMapFromPlanes(planes [3][]float64, width, height int) (*NormalMap, error) {
	for c := range planes {
		if len(planes[c]) != width*height {
			return nil, errors.Errorf("plane %d has %d values, size (%d, %d) needs %d",
				c, len(planes[c]), width, height, width*height)
		}
	}
	return &NormalMap{width: width, height: height, planes: planes}, nil
}

// Width returns the width of the normal map.
func (nm *NormalMap) Width() int {
	return nm.width
}

// Height returns the height of the normal map.
func (nm *NormalMap) Height() int {
	return nm.height
}

// NormalAt returns the normal vector at the given (x, y) = (col, row) coordinate.
func (nm *NormalMap) NormalAt(x, y int) r3.Vector {
	i := y*nm.width + x
	return r3.Vector{X: nm.planes[0][i], Y: nm.planes[1][i], Z: nm.planes[2][i]}
}
