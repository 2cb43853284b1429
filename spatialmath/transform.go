package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// TransformPoints applies a 4x4 homogeneous transform to every point: each
// point is augmented with a homogeneous coordinate of 1, left-multiplied by tf
// (column-vector convention), and the homogeneous row dropped. The input slice
// is not modified.
func TransformPoints(pts []r3.Vector, tf mat.Matrix) []r3.Vector {
	r, c := tf.Dims()
	if r != 4 || c != 4 {
		panic(mat.ErrShape)
	}
	out := make([]r3.Vector, len(pts))
	for i, p := range pts {
		out[i] = r3.Vector{
			X: tf.At(0, 0)*p.X + tf.At(0, 1)*p.Y + tf.At(0, 2)*p.Z + tf.At(0, 3),
			Y: tf.At(1, 0)*p.X + tf.At(1, 1)*p.Y + tf.At(1, 2)*p.Z + tf.At(1, 3),
			Z: tf.At(2, 0)*p.X + tf.At(2, 1)*p.Y + tf.At(2, 2)*p.Z + tf.At(2, 3),
		}
	}
	return out
}
