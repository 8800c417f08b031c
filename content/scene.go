package content

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/helix/component"
	"github.com/lixenwraith/helix/config"
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/engine"
	"github.com/lixenwraith/helix/physics"
	"github.com/lixenwraith/helix/render"
	"github.com/lixenwraith/helix/systems"
	"github.com/lixenwraith/helix/vmath"
)

// Scene owns the simulation world, the fixed-step runner, and the frame
// boundary toward the external renderer: Update(dt) advances simulation,
// RenderItems() exposes the extracted draw list, Revision() tells callers
// when GPU-side resource bindings must be rebuilt.
type Scene struct {
	World     *engine.World
	Camera    *render.Camera
	Physics   *physics.PhysicsWorld
	Collision *physics.CollisionQueryService

	runner    *engine.Runner
	extractor *render.Extractor
	factory   GPUFactory
	logger    *zap.Logger

	items    []render.RenderItem
	revision uint64

	// meshCache dedupes skinned assets by content digest
	meshCache map[uint64]core.MeshHandle

	transforms *engine.Store[component.TransformComponent]
	bodies     *engine.Store[component.PhysicsBodyComponent]
	colliders  *engine.Store[component.ColliderComponent]
	meshes     *engine.Store[component.MeshComponent]
	skinned    *engine.Store[component.SkinnedMeshComponent]
	poses      *engine.Store[component.SkeletonPoseComponent]
	statics    *engine.Store[component.StaticMeshComponent]
	spins      *engine.Store[component.SpinComponent]
	intents    *engine.Store[component.MoveIntentComponent]
	movements  *engine.Store[component.MovementComponent]
}

// NewScene wires the world, physics, and system phases
// All collaborators are injected explicitly; a nil logger becomes a no-op
func NewScene(cfg config.Engine, factory GPUFactory, logger *zap.Logger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, fmt.Errorf("content: nil GPU factory")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := engine.NewWorld()
	pw := physics.NewPhysicsWorld(w, vmath.Vec3{Y: cfg.GravityY})

	s := &Scene{
		World:     w,
		Camera:    render.NewCamera(),
		Physics:   pw,
		Collision: physics.NewCollisionQueryService(w, cfg.RebuildEpsilonSq),
		runner:    engine.NewRunner(cfg.Step(), cfg.MaxTicksPerFrame, logger),
		extractor: render.NewExtractor(w),
		factory:   factory,
		logger:    logger,
		meshCache: make(map[uint64]core.MeshHandle),

		transforms: engine.GetStore[component.TransformComponent](w),
		bodies:     engine.GetStore[component.PhysicsBodyComponent](w),
		colliders:  engine.GetStore[component.ColliderComponent](w),
		meshes:     engine.GetStore[component.MeshComponent](w),
		skinned:    engine.GetStore[component.SkinnedMeshComponent](w),
		poses:      engine.GetStore[component.SkeletonPoseComponent](w),
		statics:    engine.GetStore[component.StaticMeshComponent](w),
		spins:      engine.GetStore[component.SpinComponent](w),
		intents:    engine.GetStore[component.MoveIntentComponent](w),
		movements:  engine.GetStore[component.MovementComponent](w),
	}

	// Phase wiring. Sync registers last in pre-fixed: every pose change
	// made this tick must be in the proxies before the sweep.
	s.runner.Register(engine.PhasePreFixed, systems.NewIntentSystem(w))
	s.runner.Register(engine.PhasePreFixed, systems.NewSpinSystem(w))
	s.runner.Register(engine.PhasePreFixed, systems.NewPhysicsSyncSystem(pw))
	s.runner.Register(engine.PhaseFixed, systems.NewPhysicsStepSystem(pw))
	s.runner.Register(engine.PhasePostFixed, systems.NewWritebackSystem(w))

	return s, nil
}

// Update banks dt seconds of real time, runs the fixed ticks that fit, then
// refreshes the collision index and the draw list. dt must be >= 0.
func (s *Scene) Update(dt float64) {
	if dt < 0 {
		panic(fmt.Sprintf("content: negative frame dt %v", dt))
	}
	ticks := s.runner.Advance(s.World, dt)
	if ticks > 0 {
		s.Collision.Update(s.World)
	}
	s.items = s.extractor.Extract(s.World)
}

// RenderItems is the read-only draw list accessor
// Valid until the next Update; the renderer must not mutate items
func (s *Scene) RenderItems() []render.RenderItem {
	return s.items
}

// Revision increments whenever draw-list-relevant GPU resources are
// (re)created, never on ordinary frames. External callers compare it to
// decide whether cached resource bindings must be rebuilt.
func (s *Scene) Revision() uint64 {
	return s.revision
}

// Runner exposes the fixed-step runner for telemetry and tests
func (s *Scene) Runner() *engine.Runner {
	return s.runner
}

func (s *Scene) bumpRevision() {
	s.revision++
}

// createMesh runs the factory and bumps the revision on success
func (s *Scene) createMesh(desc MeshDescriptor) (core.MeshHandle, error) {
	h, err := s.factory.CreateMesh(desc)
	if err != nil {
		return core.NilMesh, err
	}
	s.bumpRevision()
	return h, nil
}

// createMaterial builds a checker-textured material
func (s *Scene) createMaterial(name string) (core.MaterialHandle, error) {
	tex, err := s.factory.CreateTexture(CheckerTexture(name, 64, 8,
		[4]byte{200, 200, 200, 255}, [4]byte{60, 60, 60, 255}))
	if err != nil {
		return core.NilMaterial, err
	}
	mat, err := s.factory.CreateMaterial(tex)
	if err != nil {
		return core.NilMaterial, err
	}
	s.bumpRevision()
	return mat, nil
}

// AddGround spawns the static ground slab and marks the collision index dirty
func (s *Scene) AddGround(halfSize, thickness float64) (core.Entity, error) {
	mesh, err := s.createMesh(PlaneMesh("ground", halfSize))
	if err != nil {
		return core.InvalidEntity, err
	}
	mat, err := s.createMaterial("ground-checker")
	if err != nil {
		return core.InvalidEntity, err
	}

	half := vmath.Vec3{X: halfSize, Y: thickness * 0.5, Z: halfSize}
	pos := vmath.Vec3{Y: -thickness * 0.5}

	tr := component.NewTransform()
	tr.Translation = pos

	e := engine.With(engine.With(engine.With(engine.With(engine.With(
		s.World.NewEntity(),
		s.transforms, tr),
		s.colliders, component.ColliderComponent{HalfExtents: half}),
		s.bodies, component.NewPhysicsBody(core.BodyStatic, pos, vmath.QIdentity())),
		s.statics, component.StaticMeshComponent{}),
		s.meshes, component.MeshComponent{Mesh: mesh, Material: mat}).
		Build()

	s.Collision.MarkDirty()
	s.logger.Info("ground spawned", zap.Uint32("entity", uint32(e)), zap.Float64("half_size", halfSize))
	return e, nil
}

// AddBox spawns a box prop with the given body type
func (s *Scene) AddBox(kind core.BodyType, pos, half vmath.Vec3) (core.Entity, error) {
	mesh, err := s.createMesh(BoxMesh("box", half))
	if err != nil {
		return core.InvalidEntity, err
	}
	mat, err := s.createMaterial("box-checker")
	if err != nil {
		return core.InvalidEntity, err
	}

	tr := component.NewTransform()
	tr.Translation = pos

	eb := engine.With(engine.With(engine.With(engine.With(
		s.World.NewEntity(),
		s.transforms, tr),
		s.colliders, component.ColliderComponent{HalfExtents: half}),
		s.bodies, component.NewPhysicsBody(kind, pos, vmath.QIdentity())),
		s.meshes, component.MeshComponent{Mesh: mesh, Material: mat})

	if kind == core.BodyStatic {
		eb = engine.With(eb, s.statics, component.StaticMeshComponent{})
		s.Collision.MarkDirty()
	}

	return eb.Build(), nil
}

// AddSpinner spawns a kinematic decoration rotating about axis
func (s *Scene) AddSpinner(pos, half, axis vmath.Vec3, radPerSec float64) (core.Entity, error) {
	e, err := s.AddBox(core.BodyKinematic, pos, half)
	if err != nil {
		return core.InvalidEntity, err
	}
	s.spins.Add(e, component.SpinComponent{Axis: axis, RadPerSec: radPerSec})
	return e, nil
}

// AddWalker spawns a dynamic body that chases desired-velocity intent
func (s *Scene) AddWalker(pos, half vmath.Vec3, maxSpeed float64) (core.Entity, error) {
	e, err := s.AddBox(core.BodyDynamic, pos, half)
	if err != nil {
		return core.InvalidEntity, err
	}
	s.intents.Add(e, component.MoveIntentComponent{})
	s.movements.Add(e, component.MovementComponent{
		Accel:    20,
		Decel:    30,
		MaxSpeed: maxSpeed,
	})
	return e, nil
}

// SetMoveIntent updates the desired velocity of an intent-driven entity
// No-op for entities without a MoveIntentComponent
func (s *Scene) SetMoveIntent(e core.Entity, desired vmath.Vec3) {
	if !s.intents.Has(e) {
		return
	}
	s.intents.Add(e, component.MoveIntentComponent{Desired: desired})
}

// AddSkinned spawns a skinned entity from exporter JSON
// A malformed asset is logged and the entity is created without the skinned
// capability; dependent systems tolerate the absence.
func (s *Scene) AddSkinned(name string, data []byte, pos vmath.Vec3) (core.Entity, error) {
	tr := component.NewTransform()
	tr.Translation = pos
	e := engine.With(s.World.NewEntity(), s.transforms, tr).Build()

	asset, err := LoadSkinnedAsset(name, data)
	if err != nil {
		s.logger.Warn("skinned asset rejected, entity spawned without mesh",
			zap.String("asset", name),
			zap.Uint32("entity", uint32(e)),
			zap.Error(err),
		)
		return e, nil
	}

	mesh, ok := s.meshCache[asset.Digest]
	if !ok {
		mesh, err = s.createMesh(asset.Mesh)
		if err != nil {
			s.logger.Warn("skinned mesh creation failed",
				zap.String("asset", name), zap.Error(err))
			return e, nil
		}
		s.meshCache[asset.Digest] = mesh
	}

	mat, err := s.createMaterial(name + "-material")
	if err != nil {
		s.logger.Warn("skinned material creation failed",
			zap.String("asset", name), zap.Error(err))
		return e, nil
	}

	s.skinned.Add(e, component.SkinnedMeshComponent{Mesh: mesh, Material: mat})
	s.poses.Add(e, component.SkeletonPoseComponent{Palette: asset.RestPalette()})

	s.logger.Info("skinned entity spawned",
		zap.String("asset", name),
		zap.Uint32("entity", uint32(e)),
		zap.Int("bones", len(asset.Bones)),
	)
	return e, nil
}
