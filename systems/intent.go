package systems

import (
	"github.com/lixenwraith/helix/component"
	"github.com/lixenwraith/helix/engine"
	"github.com/lixenwraith/helix/vmath"
)

// IntentSystem turns desired-velocity input into bounded velocity changes
// on physics bodies. Runs pre-fixed so the fixed phase integrates the
// already-resolved velocities.
type IntentSystem struct {
	bodies    *engine.Store[component.PhysicsBodyComponent]
	intents   *engine.Store[component.MoveIntentComponent]
	movements *engine.Store[component.MovementComponent]
}

// NewIntentSystem resolves store dependencies once
func NewIntentSystem(w *engine.World) *IntentSystem {
	return &IntentSystem{
		bodies:    engine.GetStore[component.PhysicsBodyComponent](w),
		intents:   engine.GetStore[component.MoveIntentComponent](w),
		movements: engine.GetStore[component.MovementComponent](w),
	}
}

func (s *IntentSystem) Update(w *engine.World, dt float64) {
	entities := w.Query().
		With(s.bodies).
		With(s.intents).
		With(s.movements).
		Execute()

	for _, e := range entities {
		body, _ := s.bodies.Get(e)
		intent, _ := s.intents.Get(e)
		move, _ := s.movements.Get(e)

		desired := vmath.V3ClampMagnitude(intent.Desired, move.MaxSpeed)

		// Accelerate toward intent, decelerate when intent drops;
		// vertical velocity belongs to gravity, leave it alone
		current := vmath.Vec3{X: body.Velocity.X, Z: body.Velocity.Z}
		target := vmath.Vec3{X: desired.X, Z: desired.Z}

		delta := vmath.V3Sub(target, current)
		limit := move.Accel * dt
		if vmath.V3MagSq(target) < vmath.V3MagSq(current) {
			limit = move.Decel * dt
		}
		delta = vmath.V3ClampMagnitude(delta, limit)

		body.Velocity.X = current.X + delta.X
		body.Velocity.Z = current.Z + delta.Z
		s.bodies.Add(e, body)
	}
}
