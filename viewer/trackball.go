package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
)

// trackballCamera orbits a target point at a distance, the usual
// trackball-style navigation: drag to orbit, drag to pan, scroll to zoom.
type trackballCamera struct {
	target   r3.Vector
	distance float64
	yaw      float64
	pitch    float64
}

const (
	minDistance = 1e-3
	maxPitch    = math.Pi/2 - 1e-3
)

// forward is the unit vector from the eye toward the target.
func (c *trackballCamera) forward() r3.Vector {
	return r3.Vector{
		X: math.Cos(c.pitch) * math.Sin(c.yaw),
		Y: math.Sin(c.pitch),
		Z: math.Cos(c.pitch) * math.Cos(c.yaw),
	}
}

func (c *trackballCamera) eye() r3.Vector {
	return c.target.Sub(c.forward().Mul(c.distance))
}

// up points along -y so unprojected scenes, which use image coordinates with
// y growing downward, appear upright.
func (c *trackballCamera) up() r3.Vector {
	return r3.Vector{Y: -1}
}

func (c *trackballCamera) right() r3.Vector {
	return c.forward().Cross(c.up()).Normalize()
}

func (c *trackballCamera) rotate(dYaw, dPitch float64) {
	c.yaw += dYaw
	c.pitch += dPitch
	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
	if c.pitch < -maxPitch {
		c.pitch = -maxPitch
	}
}

// pan shifts the target in the view plane, scaled so a drag across the window
// moves the scene about one viewport height.
func (c *trackballCamera) pan(dx, dy float64) {
	upInPlane := c.right().Cross(c.forward()).Normalize()
	c.target = c.target.
		Add(c.right().Mul(-dx * c.distance)).
		Add(upInPlane.Mul(dy * c.distance))
}

func (c *trackballCamera) zoom(factor float64) {
	c.distance *= factor
	if c.distance < minDistance {
		c.distance = minDistance
	}
}

func (c *trackballCamera) viewMatrix() mgl32.Mat4 {
	eye := c.eye()
	return mgl32.LookAtV(
		mgl32.Vec3{float32(eye.X), float32(eye.Y), float32(eye.Z)},
		mgl32.Vec3{float32(c.target.X), float32(c.target.Y), float32(c.target.Z)},
		mgl32.Vec3{0, -1, 0},
	)
}
