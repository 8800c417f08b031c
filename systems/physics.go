package systems

import (
	"github.com/lixenwraith/helix/component"
	"github.com/lixenwraith/helix/engine"
	"github.com/lixenwraith/helix/physics"
)

// PhysicsSyncSystem rebuilds broadphase proxies from live transforms and
// colliders. Registered last in the pre-fixed phase: every pose change made
// this tick (intent, spin, gameplay) must land in the proxies before the
// fixed phase sweeps them.
type PhysicsSyncSystem struct {
	pw *physics.PhysicsWorld
}

func NewPhysicsSyncSystem(pw *physics.PhysicsWorld) *PhysicsSyncSystem {
	return &PhysicsSyncSystem{pw: pw}
}

func (s *PhysicsSyncSystem) Update(w *engine.World, dt float64) {
	s.pw.Sync(w)
}

// PhysicsStepSystem runs the fixed phase: broadphase pair generation,
// integration, then minimal overlap resolution
type PhysicsStepSystem struct {
	pw *physics.PhysicsWorld
}

func NewPhysicsStepSystem(pw *physics.PhysicsWorld) *PhysicsStepSystem {
	return &PhysicsStepSystem{pw: pw}
}

func (s *PhysicsStepSystem) Update(w *engine.World, dt float64) {
	pairs := s.pw.BuildBroadphasePairs()
	s.pw.Integrate(dt)
	s.pw.Resolve(pairs)
}

// WritebackSystem copies resolved body poses into gameplay-visible
// transforms. Post-fixed by contract: writing transforms earlier would let
// same-tick systems read half-stepped state.
type WritebackSystem struct {
	bodies     *engine.Store[component.PhysicsBodyComponent]
	transforms *engine.Store[component.TransformComponent]
}

func NewWritebackSystem(w *engine.World) *WritebackSystem {
	return &WritebackSystem{
		bodies:     engine.GetStore[component.PhysicsBodyComponent](w),
		transforms: engine.GetStore[component.TransformComponent](w),
	}
}

func (s *WritebackSystem) Update(w *engine.World, dt float64) {
	entities := w.Query().
		With(s.bodies).
		With(s.transforms).
		Execute()

	for _, e := range entities {
		body, _ := s.bodies.Get(e)
		tr, _ := s.transforms.Get(e)
		tr.Translation = body.Position
		tr.Rotation = body.Rotation
		s.transforms.Add(e, tr)
	}
}
