package rimage

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestDepthMapBasic(t *testing.T) {
	dm := NewEmptyDepthMap(3, 2)
	test.That(t, dm.Width(), test.ShouldEqual, 3)
	test.That(t, dm.Height(), test.ShouldEqual, 2)
	test.That(t, dm.GetDepth(2, 1), test.ShouldEqual, 0)

	dm.Set(2, 1, 4.5)
	test.That(t, dm.GetDepth(2, 1), test.ShouldEqual, 4.5)
	test.That(t, dm.GetDepth(1, 1), test.ShouldEqual, 0)
}

func TestDepthMapFromSlice(t *testing.T) {
	_, err := NewDepthMapFromSlice(2, 2, []float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "needs 4")

	_, err = NewDepthMapFromSlice(0, 2, nil)
	test.That(t, err, test.ShouldNotBeNil)

	dm, err := NewDepthMapFromSlice(2, 2, []float64{1, 2, 3, 4})
	test.That(t, err, test.ShouldBeNil)
	// row-major: (x=0,y=1) is the third value
	test.That(t, dm.GetDepth(0, 1), test.ShouldEqual, 3)
	test.That(t, dm.GetDepth(1, 0), test.ShouldEqual, 2)
}

func TestValidDepth(t *testing.T) {
	test.That(t, ValidDepth(1), test.ShouldBeTrue)
	test.That(t, ValidDepth(1e-9), test.ShouldBeTrue)
	test.That(t, ValidDepth(0), test.ShouldBeFalse)
	test.That(t, ValidDepth(-2), test.ShouldBeFalse)
	test.That(t, ValidDepth(math.NaN()), test.ShouldBeFalse)
	test.That(t, ValidDepth(math.Inf(1)), test.ShouldBeFalse)
	test.That(t, ValidDepth(math.Inf(-1)), test.ShouldBeFalse)
}

func TestUniformImage(t *testing.T) {
	img := NewUniformImage(2, 3, [3]uint8{10, 20, 30})
	test.That(t, img.Width(), test.ShouldEqual, 2)
	test.That(t, img.Height(), test.ShouldEqual, 3)
	r, g, b := img.RGBAt(1, 2)
	test.That(t, r, test.ShouldEqual, 10)
	test.That(t, g, test.ShouldEqual, 20)
	test.That(t, b, test.ShouldEqual, 30)
}

func TestImageFromFloats(t *testing.T) {
	planes := [3][]float64{
		{-0.5, 0.5},
		{0.0, -0.6},
		{0.25, 0.7},
	}
	img, err := NewImageFromFloats(planes, 2, 1)
	test.That(t, err, test.ShouldBeNil)

	r, g, b := img.RGBAt(0, 0)
	test.That(t, r, test.ShouldEqual, 0)   // -0.5 maps to 0
	test.That(t, g, test.ShouldEqual, 127) // 0.0 maps to 127 (truncated)
	test.That(t, b, test.ShouldEqual, 191)

	r, g, b = img.RGBAt(1, 0)
	test.That(t, r, test.ShouldEqual, 255) // 0.5 maps to 255
	test.That(t, g, test.ShouldEqual, 0)   // clamped below
	test.That(t, b, test.ShouldEqual, 255) // clamped above

	_, err = NewImageFromFloats([3][]float64{{0}, {0}, {0, 0}}, 1, 1)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNormalMap(t *testing.T) {
	nm, err := NewNormalMapFromPlanes([3][]float64{
		{0, 1},
		{0, 0},
		{1, 0},
	}, 2, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, nm.NormalAt(0, 0), test.ShouldResemble, r3.Vector{0, 0, 1})
	test.That(t, nm.NormalAt(1, 0), test.ShouldResemble, r3.Vector{1, 0, 0})

	_, err = NewNormalMapFromPlanes([3][]float64{{0}, {0}, {0}}, 2, 1)
	test.That(t, err, test.ShouldNotBeNil)
}
