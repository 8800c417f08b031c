package physics

import (
	"github.com/lixenwraith/helix/component"
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/engine"
	"github.com/lixenwraith/helix/vmath"
)

// rebuildEpsilonSq is the default squared movement threshold that triggers
// an automatic index rebuild; sub-epsilon jitter is ignored
const rebuildEpsilonSq = 1e-6

// StaticIndex is an immutable snapshot of static-geometry bounds
// Stale between rebuilds; consumers must tolerate that until the next Update
type StaticIndex struct {
	Boxes []StaticBox
}

// StaticBox is one indexed static volume
type StaticBox struct {
	Entity core.Entity
	Box    vmath.AABB
}

// GroundHeight returns the highest static top face at or below fromY whose
// XZ footprint contains (x, z). ok is false when nothing is underneath.
func (idx *StaticIndex) GroundHeight(x, z, fromY float64) (float64, bool) {
	found := false
	best := 0.0
	for i := range idx.Boxes {
		b := &idx.Boxes[i]
		if !b.Box.ContainsXZ(x, z) {
			continue
		}
		top := b.Box.Max.Y
		if top > fromY {
			continue
		}
		if !found || top > best {
			best = top
			found = true
		}
	}
	return best, found
}

// poseSnapshot records the pose an entity had at the last rebuild
type poseSnapshot struct {
	pos vmath.Vec3
	rot vmath.Quat
}

// CollisionQueryService wraps a rebuildable spatial index over entities
// carrying StaticMeshComponent and a Collider. Rebuilds happen lazily:
// on MarkDirty, on first use, or when a tracked body has moved materially
// since the last rebuild. The self-healing check exists because static
// meshes attached to movable bodies must keep the index current without
// every caller remembering to call MarkDirty.
type CollisionQueryService struct {
	dirty     bool
	epsilonSq float64
	index     *StaticIndex
	lastPose  map[core.Entity]poseSnapshot

	transforms *engine.Store[component.TransformComponent]
	bodies     *engine.Store[component.PhysicsBodyComponent]
	colliders  *engine.Store[component.ColliderComponent]
	statics    *engine.Store[component.StaticMeshComponent]
}

// NewCollisionQueryService creates the service with store dependencies
// injected. epsilonSq <= 0 selects the default threshold.
func NewCollisionQueryService(w *engine.World, epsilonSq float64) *CollisionQueryService {
	if epsilonSq <= 0 {
		epsilonSq = rebuildEpsilonSq
	}
	return &CollisionQueryService{
		epsilonSq:  epsilonSq,
		lastPose:   make(map[core.Entity]poseSnapshot),
		transforms: engine.GetStore[component.TransformComponent](w),
		bodies:     engine.GetStore[component.PhysicsBodyComponent](w),
		colliders:  engine.GetStore[component.ColliderComponent](w),
		statics:    engine.GetStore[component.StaticMeshComponent](w),
	}
}

// MarkDirty flags the index for rebuild on the next Update
// For callers that know geometry changed (spawn/despawn of static props)
func (s *CollisionQueryService) MarkDirty() {
	s.dirty = true
}

// Index returns the current snapshot, nil before the first rebuild
// Nil means "no static data available yet", not an error
func (s *CollisionQueryService) Index() *StaticIndex {
	return s.index
}

// Update rebuilds the index if dirty, missing, or if any indexed entity's
// pose drifted beyond epsilon since the last rebuild. Returns true when a
// rebuild happened. O(n) in static-mesh entities.
func (s *CollisionQueryService) Update(w *engine.World) bool {
	if !s.dirty && s.index != nil && !s.poseDrifted() {
		return false
	}
	s.rebuild(w)
	return true
}

// poseDrifted checks tracked entities for material movement
func (s *CollisionQueryService) poseDrifted() bool {
	for e, snap := range s.lastPose {
		pos, rot, ok := s.currentPose(e)
		if !ok {
			return true // entity vanished, index is stale
		}
		if vmath.V3DistSq(pos, snap.pos) > s.epsilonSq {
			return true
		}
		// Unit quaternions: dot of 1 means identical orientation
		d := vmath.QDot(rot, snap.rot)
		if (1-d*d)*4 > s.epsilonSq {
			return true
		}
	}
	return false
}

// currentPose resolves the authoritative pose for an entity
func (s *CollisionQueryService) currentPose(e core.Entity) (vmath.Vec3, vmath.Quat, bool) {
	if body, ok := s.bodies.Get(e); ok {
		return body.Position, body.Rotation, true
	}
	if tr, ok := s.transforms.Get(e); ok {
		return tr.Translation, tr.Rotation, true
	}
	return vmath.Vec3{}, vmath.QIdentity(), false
}

// rebuild regenerates the snapshot and pose-tracking table
func (s *CollisionQueryService) rebuild(w *engine.World) {
	entities := w.Query().
		With(s.statics).
		With(s.colliders).
		Execute()

	idx := &StaticIndex{Boxes: make([]StaticBox, 0, len(entities))}
	s.lastPose = make(map[core.Entity]poseSnapshot, len(entities))

	for _, e := range entities {
		col, _ := s.colliders.Get(e)
		pos, rot, ok := s.currentPose(e)
		if !ok {
			continue
		}
		idx.Boxes = append(idx.Boxes, StaticBox{
			Entity: e,
			Box:    col.WorldAABB(pos, rot),
		})
		s.lastPose[e] = poseSnapshot{pos: pos, rot: rot}
	}

	s.index = idx
	s.dirty = false
}
