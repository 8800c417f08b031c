package component

import (
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/vmath"
)

// PhysicsBodyComponent is the authoritative pose during simulation
// Previous pose fields enable cheap movement-delta detection without
// external bookkeeping
type PhysicsBodyComponent struct {
	Kind core.BodyType

	Position     vmath.Vec3
	PrevPosition vmath.Vec3
	Rotation     vmath.Quat
	PrevRotation vmath.Quat

	// Velocity in units per second, meaningful for dynamic bodies only
	Velocity vmath.Vec3
}

// NewPhysicsBody creates a body at the given pose with zero velocity
func NewPhysicsBody(kind core.BodyType, pos vmath.Vec3, rot vmath.Quat) PhysicsBodyComponent {
	return PhysicsBodyComponent{
		Kind:         kind,
		Position:     pos,
		PrevPosition: pos,
		Rotation:     rot,
		PrevRotation: rot,
	}
}
