package component

import (
	"github.com/lixenwraith/helix/vmath"
)

// MoveIntentComponent is the desired-velocity input consumed by the
// intent system. Written by input/AI collaborators, never by physics.
type MoveIntentComponent struct {
	Desired vmath.Vec3
}

// MovementComponent bounds how fast intent turns into velocity change
type MovementComponent struct {
	// Accel limits velocity gain toward intent, units/sec²
	Accel float64
	// Decel limits velocity loss when intent drops, units/sec²
	Decel float64
	// MaxSpeed caps horizontal speed, units/sec
	MaxSpeed float64
}

// SpinComponent applies constant angular velocity about an axis
// Used for kinematic decoration entities
type SpinComponent struct {
	Axis      vmath.Vec3
	RadPerSec float64
}
