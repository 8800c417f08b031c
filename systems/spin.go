package systems

import (
	"github.com/lixenwraith/helix/component"
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/engine"
	"github.com/lixenwraith/helix/vmath"
)

// SpinSystem rotates kinematic decoration entities at constant angular
// velocity. Runs pre-fixed so the new orientation feeds the same tick's
// proxy sync.
type SpinSystem struct {
	bodies     *engine.Store[component.PhysicsBodyComponent]
	spins      *engine.Store[component.SpinComponent]
	transforms *engine.Store[component.TransformComponent]
}

// NewSpinSystem resolves store dependencies once
func NewSpinSystem(w *engine.World) *SpinSystem {
	return &SpinSystem{
		bodies:     engine.GetStore[component.PhysicsBodyComponent](w),
		spins:      engine.GetStore[component.SpinComponent](w),
		transforms: engine.GetStore[component.TransformComponent](w),
	}
}

func (s *SpinSystem) Update(w *engine.World, dt float64) {
	for _, e := range w.Query().With(s.spins).Execute() {
		spin, _ := s.spins.Get(e)
		step := vmath.QFromAxisAngle(spin.Axis, spin.RadPerSec*dt)

		if body, ok := s.bodies.Get(e); ok {
			if body.Kind != core.BodyKinematic {
				continue // dynamic/static bodies do not take scripted spin
			}
			body.Rotation = vmath.QNormalize(vmath.QMul(step, body.Rotation))
			s.bodies.Add(e, body)
			continue
		}

		// Decoration without a body spins its raw transform
		if tr, ok := s.transforms.Get(e); ok {
			tr.Rotation = vmath.QNormalize(vmath.QMul(step, tr.Rotation))
			s.transforms.Add(e, tr)
		}
	}
}
