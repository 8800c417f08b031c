package render

import (
	"github.com/lixenwraith/helix/vmath"
)

// Camera exposes a mutable view description and derives matrices on demand
// Written by an external input collaborator, read by extraction and lights
type Camera struct {
	Position vmath.Vec3
	Target   vmath.Vec3
	Up       vmath.Vec3

	FovY   float64 // radians
	Aspect float64
	Near   float64
	Far    float64
}

// NewCamera returns a camera with sane perspective defaults
func NewCamera() *Camera {
	return &Camera{
		Position: vmath.Vec3{X: 0, Y: 5, Z: 10},
		Up:       vmath.Vec3{Y: 1},
		FovY:     1.0471975511965976, // 60 degrees
		Aspect:   16.0 / 9.0,
		Near:     0.1,
		Far:      500,
	}
}

// View derives the look-at matrix from current position/target/up
func (c *Camera) View() vmath.Mat4 {
	return vmath.M4LookAt(c.Position, c.Target, c.Up)
}

// Projection derives the perspective matrix from current lens parameters
func (c *Camera) Projection() vmath.Mat4 {
	return vmath.M4Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProjection is the composed camera matrix
func (c *Camera) ViewProjection() vmath.Mat4 {
	return vmath.M4Mul(c.Projection(), c.View())
}
