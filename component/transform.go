package component

import (
	"github.com/lixenwraith/helix/vmath"
)

// TransformComponent is the gameplay-visible pose of an entity
// Written by gameplay and the physics writeback system, read by physics
// sync and render extraction
type TransformComponent struct {
	Translation vmath.Vec3
	Rotation    vmath.Quat
	Scale       vmath.Vec3
}

// NewTransform returns a transform at the origin with identity rotation
// and unit scale
func NewTransform() TransformComponent {
	return TransformComponent{
		Rotation: vmath.QIdentity(),
		Scale:    vmath.V3One(),
	}
}

// ModelMatrix derives the TRS model matrix
func (t TransformComponent) ModelMatrix() vmath.Mat4 {
	return vmath.M4TRS(t.Translation, t.Rotation, t.Scale)
}
