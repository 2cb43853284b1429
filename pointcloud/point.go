// Package pointcloud provides an ordered 3D point cloud with optional
// per-point colors and normals.
package pointcloud

import (
	"image/color"

	"github.com/golang/geo/r3"
)

// NewVector convenience method for creating a vector.
func NewVector(x, y, z float64) r3.Vector {
	return r3.Vector{x, y, z}
}

// Data describes the data associated with a single point within a PointCloud.
type Data interface {
	// HasColor returns whether or not this point is colored.
	HasColor() bool

	// RGB255 returns, if colored, the RGB components of the color.
	RGB255() (uint8, uint8, uint8)

	// Color returns the native color of the point.
	Color() color.Color

	// SetColor sets the given color on the point.
	SetColor(c color.NRGBA) Data

	// HasNormal returns whether or not this point has a surface normal.
	HasNormal() bool

	// Normal returns the surface normal, if set.
	Normal() r3.Vector

	// SetNormal sets the given surface normal on the point.
	SetNormal(n r3.Vector) Data
}

type basicData struct {
	hasColor bool
	c        color.NRGBA

	hasNormal bool
	normal    r3.Vector
}

// NewBasicData returns point data that is solely positionally based.
func NewBasicData() Data {
	return &basicData{}
}

// NewColoredData returns point data carrying a color.
func NewColoredData(c color.NRGBA) Data {
	return &basicData{c: c, hasColor: true}
}

func (bp *basicData) HasColor() bool {
	return bp.hasColor
}

func (bp *basicData) RGB255() (uint8, uint8, uint8) {
	return bp.c.R, bp.c.G, bp.c.B
}

func (bp *basicData) Color() color.Color {
	return &bp.c
}

func (bp *basicData) SetColor(c color.NRGBA) Data {
	bp.c = c
	bp.hasColor = true
	return bp
}

func (bp *basicData) HasNormal() bool {
	return bp.hasNormal
}

func (bp *basicData) Normal() r3.Vector {
	return bp.normal
}

func (bp *basicData) SetNormal(n r3.Vector) Data {
	bp.normal = n
	bp.hasNormal = true
	return bp
}
