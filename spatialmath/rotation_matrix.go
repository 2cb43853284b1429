// Package spatialmath defines the rotation and rigid-transform math used to place
// depth-map point clouds and camera glyphs in a shared world frame.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// defaultAngleEpsilon is the axis-angle norm at or below which a rotation is
// treated as zero, avoiding division by a vanishing angle.
const defaultAngleEpsilon = 1e-6

// RotationMatrix is a 3x3 rotation matrix stored in row-major order.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a rotation matrix from a row-major slice of 9 values.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	mat := [9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}
	return &RotationMatrix{mat}, nil
}

// NewIdentityRotationMatrix returns the identity rotation.
func NewIdentityRotationMatrix() *RotationMatrix {
	return &RotationMatrix{[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// AxisAngleToRotationMatrix converts an R3 axis-angle vector, whose direction is
// the rotation axis and whose norm is the angle in radians, to a rotation matrix
// using Rodrigues' formula. Norms at or below 1e-6 yield the identity.
func AxisAngleToRotationMatrix(aa r3.Vector) *RotationMatrix {
	angle := aa.Norm()
	if angle <= defaultAngleEpsilon {
		return NewIdentityRotationMatrix()
	}
	u := aa.Mul(1 / angle)
	c := math.Cos(angle)
	s := math.Sin(angle)
	mat := [9]float64{
		c + u.X*u.X*(1-c), u.X*u.Y*(1-c) - u.Z*s, u.X*u.Z*(1-c) + u.Y*s,
		u.Y*u.X*(1-c) + u.Z*s, c + u.Y*u.Y*(1-c), u.Y*u.Z*(1-c) - u.X*s,
		u.Z*u.X*(1-c) - u.Y*s, u.Z*u.Y*(1-c) + u.X*s, c + u.Z*u.Z*(1-c),
	}
	return &RotationMatrix{mat}
}

// At returns the value of the matrix at the given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a vector representing a particular row.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{rm.mat[3*row], rm.mat[3*row+1], rm.mat[3*row+2]}
}

// Col returns the a vector representing a particular column.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{rm.mat[col], rm.mat[3+col], rm.mat[6+col]}
}

// Transpose returns the transpose of the matrix.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	m := rm.mat
	return &RotationMatrix{[9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// Mul returns the product R * v, treating v as a column vector.
func (rm *RotationMatrix) Mul(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.Row(0).Dot(v),
		Y: rm.Row(1).Dot(v),
		Z: rm.Row(2).Dot(v),
	}
}

// LeftMul returns the product v * R, treating v as a row vector.
func (rm *RotationMatrix) LeftMul(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.Col(0).Dot(v),
		Y: rm.Col(1).Dot(v),
		Z: rm.Col(2).Dot(v),
	}
}

// Det returns the determinant of the matrix.
func (rm *RotationMatrix) Det() float64 {
	m := rm.mat
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}
