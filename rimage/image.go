package rimage

import (
	"github.com/pkg/errors"
)

// Image is a planar RGB image: three row-major HxW byte planes in R, G, B order.
// This matches the layout of network prediction tensors, which arrive as
// (3, h, w) rather than interleaved pixels.
type Image struct {
	width  int
	height int

	planes [3][]uint8
}

// NewUniformImage returns an image of a single solid color.
func NewUniformImage(width, height int, rgb [3]uint8) *Image {
	img := &Image{width: width, height: height}
	for c := 0; c < 3; c++ {
		plane := make([]uint8, width*height)
		for i := range plane {
			plane[i] = rgb[c]
		}
		img.planes[c] = plane
	}
	return img
}

// NewImageFromPlanes returns an image backed by the given R, G, B planes.
func NewImageFromPlanes(planes [3][]uint8, width, height int) (*Image, error) {
	for c := range planes {
		if len(planes[c]) != width*height {
			return nil, errors.Errorf("plane %d has %d values, size (%d, %d) needs %d",
				c, len(planes[c]), width, height, width*height)
		}
	}
	return &Image{width: width, height: height, planes: planes}, nil
}

// NewImageFromFloats converts planar channel data in the range [-0.5, 0.5],
// as produced by the prediction network, into a byte image via (x+0.5)*255.
// Values outside the range are clamped.
func NewImageFromFloats(planes [3][]float64, width, height int) (*Image, error) {
	img := &Image{width: width, height: height}
	for c := range planes {
		if len(planes[c]) != width*height {
			return nil, errors.Errorf("plane %d has %d values, size (%d, %d) needs %d",
				c, len(planes[c]), width, height, width*height)
		}
		plane := make([]uint8, width*height)
		for i, v := range planes[c] {
			scaled := (v + 0.5) * 255
			switch {
			case scaled < 0:
				scaled = 0
			case scaled > 255:
				scaled = 255
			}
			plane[i] = uint8(scaled)
		}
		img.planes[c] = plane
	}
	return img, nil
}

// Width returns the width of the image.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image.
func (img *Image) Height() int {
	return img.height
}

// RGBAt returns the color bytes at the given (x, y) = (col, row) coordinate.
func (img *Image) RGBAt(x, y int) (uint8, uint8, uint8) {
	i := y*img.width + x
	return img.planes[0][i], img.planes[1][i], img.planes[2][i]
}
