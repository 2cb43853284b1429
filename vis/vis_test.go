package vis

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.uber.org/zap/zapcore"
	"go.viam.com/test"

	"github.com/motionvis/depthviz/rimage"
	"github.com/motionvis/depthviz/rimage/transform"
)

func onePixelDepth(t *testing.T, d float64) *rimage.DepthMap {
	t.Helper()
	dm, err := rimage.NewDepthMapFromSlice(1, 1, []float64{d})
	test.That(t, err, test.ShouldBeNil)
	return dm
}

func TestComposeDepthMapsEmpty(t *testing.T) {
	_, err := composeDepthMaps(nil, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestComposeDepthMapsMergeOrder(t *testing.T) {
	red := [3]uint8{255, 0, 0}
	green := [3]uint8{0, 255, 0}
	depths := map[string]DepthVis{
		"a": {Depth: onePixelDepth(t, 1), UniformColor: &red},
		"b": {Depth: onePixelDepth(t, 2), UniformColor: &green},
	}

	actors, err := composeDepthMaps(depths, nil)
	test.That(t, err, test.ShouldBeNil)
	// merged cloud + one camera glyph + axes
	test.That(t, len(actors), test.ShouldEqual, 3)

	cloud := actors[0].Geometry
	test.That(t, len(cloud.Points), test.ShouldEqual, 2)
	// "b" is processed after "a" and its points are prepended before the
	// running total, so its green point comes first
	test.That(t, cloud.Colors, test.ShouldResemble, []uint8{0, 255, 0, 255, 0, 0})
	test.That(t, cloud.Points[0].Z, test.ShouldAlmostEqual, 2)
	test.That(t, cloud.Points[1].Z, test.ShouldAlmostEqual, 1)
}

func TestComposeDepthMapsDefaultsToWhite(t *testing.T) {
	depths := map[string]DepthVis{
		"pred": {Depth: onePixelDepth(t, 1)},
	}
	actors, err := composeDepthMaps(depths, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, actors[0].Geometry.Colors, test.ShouldResemble, []uint8{255, 255, 255})
}

func TestComposeDepthMapsCustomIntrinsics(t *testing.T) {
	ni := transform.NormalizedIntrinsics{1, 1, 0.5, 0.5}
	depths := map[string]DepthVis{
		"flat": {Depth: onePixelDepth(t, 6)},
	}
	actors, err := composeDepthMaps(depths, &ni)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, actors[0].Geometry.Points[0].Z, test.ShouldAlmostEqual, 6)
}

func TestComposeDepthMapsValidation(t *testing.T) {
	_, err := composeDepthMaps(map[string]DepthVis{"bad": {}}, nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "no depth map")

	mismatched := DepthVis{
		Depth: onePixelDepth(t, 1),
		Color: rimage.NewUniformImage(2, 2, [3]uint8{1, 2, 3}),
	}
	_, err = composeDepthMaps(map[string]DepthVis{"bad": mismatched}, nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "does not match depth")
}

func TestComposePredictionActors(t *testing.T) {
	rot := r3.Vector{0, 0, math.Pi / 2}
	trans := r3.Vector{1, 0, 0}
	pred := Prediction{
		Depth:       onePixelDepth(t, 1.5),
		Rotation:    &rot,
		Translation: &trans,
	}
	actors, err := composePrediction(pred)
	test.That(t, err, test.ShouldBeNil)
	// cloud + two camera glyphs + axes
	test.That(t, len(actors), test.ShouldEqual, 4)

	// the unprojected point stays in the identity frame
	test.That(t, actors[0].Geometry.Points[0].Z, test.ShouldAlmostEqual, 1.5)

	// first glyph sits at the origin, second is placed by the pose
	test.That(t, actors[1].Geometry.Points[0], test.ShouldResemble, r3.Vector{0, 0, 0})
	test.That(t, actors[2].Geometry.Points[0].Norm(), test.ShouldBeGreaterThan, 0.5)
}

func TestComposePredictionDefaultsSecondGlyphToIdentity(t *testing.T) {
	actors, err := composePrediction(Prediction{Depth: onePixelDepth(t, 1)})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, actors[1].Geometry.Points, test.ShouldResemble, actors[2].Geometry.Points)
}

func TestComposePredictionWithImageAndNormals(t *testing.T) {
	img, err := rimage.NewImageFromFloats([3][]float64{{0.5}, {-0.5}, {0}}, 1, 1)
	test.That(t, err, test.ShouldBeNil)
	nm, err := rimage.NewNormalMapFromPlanes([3][]float64{{0}, {0}, {1}}, 1, 1)
	test.That(t, err, test.ShouldBeNil)

	actors, err := composePrediction(Prediction{
		Depth:   onePixelDepth(t, 1),
		Image:   img,
		Normals: nm,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, actors[0].Geometry.Colors, test.ShouldResemble, []uint8{255, 0, 127})
}

func TestComposePredictionFloatImage(t *testing.T) {
	actors, err := composePrediction(Prediction{
		Depth:      onePixelDepth(t, 1),
		FloatImage: [3][]float64{{0.5}, {-0.5}, {0}},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, actors[0].Geometry.Colors, test.ShouldResemble, []uint8{255, 0, 127})
}

func TestComposePredictionValidation(t *testing.T) {
	_, err := composePrediction(Prediction{})
	test.That(t, err, test.ShouldNotBeNil)

	badImg := rimage.NewUniformImage(3, 1, [3]uint8{0, 0, 0})
	badNm, err := rimage.NewNormalMapFromPlanes([3][]float64{{0, 0}, {0, 0}, {1, 1}}, 2, 1)
	test.That(t, err, test.ShouldBeNil)
	_, err = composePrediction(Prediction{
		Depth:   onePixelDepth(t, 1),
		Image:   badImg,
		Normals: badNm,
	})
	test.That(t, err, test.ShouldNotBeNil)
	// both mismatches are reported in one error
	test.That(t, err.Error(), test.ShouldContainSubstring, "image size")
	test.That(t, err.Error(), test.ShouldContainSubstring, "normal map size")
}

func TestSetDebug(t *testing.T) {
	defer SetDebug(false)
	test.That(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel), test.ShouldBeFalse)
	SetDebug(true)
	test.That(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel), test.ShouldBeTrue)
	SetDebug(false)
	test.That(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel), test.ShouldBeFalse)
}

func TestDistinctColors(t *testing.T) {
	colors := DistinctColors(4)
	test.That(t, len(colors), test.ShouldEqual, 4)
	seen := map[[3]uint8]bool{}
	for _, c := range colors {
		seen[c] = true
	}
	test.That(t, len(seen), test.ShouldEqual, 4)
	// deterministic
	test.That(t, DistinctColors(4), test.ShouldResemble, colors)
}
