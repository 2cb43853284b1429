package spatialmath

import (
	"github.com/golang/geo/r3"
)

// Pose is a rigid transform placing a camera in world space: a right-handed
// orthonormal rotation plus a translation.
type Pose struct {
	R *RotationMatrix
	T r3.Vector
}

// NewZeroPose returns the identity pose: no rotation, no translation.
func NewZeroPose() Pose {
	return Pose{R: NewIdentityRotationMatrix()}
}

// NewPose returns a pose with the given rotation and translation.
func NewPose(r *RotationMatrix, t r3.Vector) Pose {
	return Pose{R: r, T: t}
}

// NewPoseFromAxisAngle returns a pose whose rotation is given in R3 axis-angle
// form. A zero axis-angle vector yields the identity rotation.
func NewPoseFromAxisAngle(aa, t r3.Vector) Pose {
	return Pose{R: AxisAngleToRotationMatrix(aa), T: t}
}

// TransformPoint maps a camera-space point into the world frame shared by the
// point clouds and camera glyphs: world = (p - t) * R, row-vector convention.
func (p Pose) TransformPoint(pt r3.Vector) r3.Vector {
	return p.R.LeftMul(pt.Sub(p.T))
}
