package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestZeroPoseTransformPoint(t *testing.T) {
	pose := NewZeroPose()
	p := r3.Vector{1, -2, 3}
	test.That(t, pose.TransformPoint(p), test.ShouldResemble, p)
}

func TestTranslationOnlyPose(t *testing.T) {
	pose := NewPose(NewIdentityRotationMatrix(), r3.Vector{1, 1, 1})
	got := pose.TransformPoint(r3.Vector{2, 3, 4})
	test.That(t, got, test.ShouldResemble, r3.Vector{1, 2, 3})
}

func TestPoseFromAxisAngle(t *testing.T) {
	// zero rotation falls back to identity
	pose := NewPoseFromAxisAngle(r3.Vector{}, r3.Vector{0, 0, 1})
	test.That(t, pose.R, test.ShouldResemble, NewIdentityRotationMatrix())

	// world = (p - t) * R with a quarter turn about z
	pose = NewPoseFromAxisAngle(r3.Vector{0, 0, math.Pi / 2}, r3.Vector{1, 0, 0})
	got := pose.TransformPoint(r3.Vector{2, 0, 0})
	// (1,0,0) as a row vector times R rotates opposite the column convention
	test.That(t, got.X, test.ShouldAlmostEqual, 0)
	test.That(t, got.Y, test.ShouldAlmostEqual, -1)
	test.That(t, got.Z, test.ShouldAlmostEqual, 0)
}
