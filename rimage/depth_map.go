// Package rimage defines the depth, color, and normal containers consumed by
// the point cloud viewer.
package rimage

import (
	"math"

	"github.com/pkg/errors"
)

// DepthMap is a row-major grid of predicted depth values, one per pixel.
type DepthMap struct {
	width  int
	height int

	data []float64
}

// NewEmptyDepthMap returns an unset depth map with the given dimensions.
func NewEmptyDepthMap(width, height int) *DepthMap {
	return &DepthMap{width: width, height: height, data: make([]float64, width*height)}
}

// NewDepthMapFromSlice returns a depth map backed by the given row-major data.
func NewDepthMapFromSlice(width, height int, data []float64) (*DepthMap, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid depth map size (%d, %d)", width, height)
	}
	if len(data) != width*height {
		return nil, errors.Errorf("data has %d values, size (%d, %d) needs %d", len(data), width, height, width*height)
	}
	return &DepthMap{width: width, height: height, data: data}, nil
}

// Width returns the width of the depth map.
func (dm *DepthMap) Width() int {
	return dm.width
}

// Height returns the height of the depth map.
func (dm *DepthMap) Height() int {
	return dm.height
}

// GetDepth returns the depth at the given (x, y) = (col, row) coordinate.
func (dm *DepthMap) GetDepth(x, y int) float64 {
	return dm.data[y*dm.width+x]
}

// Set sets the depth at the given (x, y) coordinate.
func (dm *DepthMap) Set(x, y int, d float64) {
	dm.data[y*dm.width+x] = d
}

// ValidDepth reports whether a depth reading can contribute a point to an
// unprojected cloud: it must be finite and positive.
func ValidDepth(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d > 0
}
