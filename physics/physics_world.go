package physics

import (
	"sort"

	"github.com/lixenwraith/helix/component"
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/engine"
	"github.com/lixenwraith/helix/vmath"
)

// Proxy is the broadphase snapshot of one collidable entity
// Rebuilt every physics tick, never authoritative
type Proxy struct {
	Entity core.Entity
	Box    vmath.AABB
	Kind   core.BodyType
}

// Pair is an unordered broadphase candidate pair, normalized A < B
// Pairs have no identity beyond the tick that produced them
type Pair struct {
	A, B core.Entity
}

// MakePair normalizes entity order
func MakePair(a, b core.Entity) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// PhysicsWorld derives bounding proxies from live components each tick and
// computes candidate collision pairs with a sweep-and-prune broadphase.
// Correct only while populations stay in the hundreds; the sweep is exact
// (no false negatives) but trades asymptotic optimality for simplicity.
type PhysicsWorld struct {
	Gravity vmath.Vec3

	transforms *engine.Store[component.TransformComponent]
	bodies     *engine.Store[component.PhysicsBodyComponent]
	colliders  *engine.Store[component.ColliderComponent]

	proxies []Proxy
	pairs   []Pair
}

// NewPhysicsWorld creates the physics world with its store dependencies
// resolved once (explicit injection, no per-call type lookup)
func NewPhysicsWorld(w *engine.World, gravity vmath.Vec3) *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:    gravity,
		transforms: engine.GetStore[component.TransformComponent](w),
		bodies:     engine.GetStore[component.PhysicsBodyComponent](w),
		colliders:  engine.GetStore[component.ColliderComponent](w),
	}
}

// Sync rebuilds the proxy list from all live entities carrying both a
// Transform and a Collider. Bodies are the authoritative pose when present;
// entities without a body (static decoration) use the raw transform.
// Full rebuild every tick, O(n) in collidable entities.
func (pw *PhysicsWorld) Sync(w *engine.World) {
	entities := w.Query().
		With(pw.transforms).
		With(pw.colliders).
		Execute()

	pw.proxies = pw.proxies[:0]
	for _, e := range entities {
		col, _ := pw.colliders.Get(e)

		var pos vmath.Vec3
		var rot vmath.Quat
		kind := core.BodyStatic

		if body, ok := pw.bodies.Get(e); ok {
			pos = body.Position
			rot = body.Rotation
			kind = body.Kind
		} else {
			tr, _ := pw.transforms.Get(e)
			pos = tr.Translation
			rot = tr.Rotation
		}

		pw.proxies = append(pw.proxies, Proxy{
			Entity: e,
			Box:    col.WorldAABB(pos, rot),
			Kind:   kind,
		})
	}
}

// Proxies exposes the current snapshot, valid until the next Sync
func (pw *PhysicsWorld) Proxies() []Proxy {
	return pw.proxies
}

// BuildBroadphasePairs sorts proxies by AABB minimum X and sweeps:
// for proxy i, scan j>i only while proxies[j].Box.Min.X <= proxies[i].Box.Max.X,
// emitting pairs that overlap on all three axes. Breaking the inner scan at
// the X invariant cannot skip a true overlap, so the sweep matches brute
// force exactly while bounding compares well below n² for normal scenes.
func (pw *PhysicsWorld) BuildBroadphasePairs() []Pair {
	sort.Slice(pw.proxies, func(i, j int) bool {
		return pw.proxies[i].Box.Min.X < pw.proxies[j].Box.Min.X
	})

	pw.pairs = pw.pairs[:0]
	for i := 0; i < len(pw.proxies); i++ {
		a := &pw.proxies[i]
		for j := i + 1; j < len(pw.proxies); j++ {
			b := &pw.proxies[j]
			if b.Box.Min.X > a.Box.Max.X {
				break
			}
			if a.Box.Overlaps(b.Box) {
				pw.pairs = append(pw.pairs, MakePair(a.Entity, b.Entity))
			}
		}
	}
	return pw.pairs
}

// Integrate advances dynamic bodies by one fixed step and captures the
// previous pose of every body for delta detection. Kinematic bodies are
// moved by systems; static bodies never move.
func (pw *PhysicsWorld) Integrate(dt float64) {
	for _, e := range pw.bodies.All() {
		body, _ := pw.bodies.Get(e)

		body.PrevPosition = body.Position
		body.PrevRotation = body.Rotation

		if body.Kind == core.BodyDynamic {
			body.Velocity = vmath.V3Add(body.Velocity, vmath.V3Scale(pw.Gravity, dt))
			body.Position = vmath.V3Add(body.Position, vmath.V3Scale(body.Velocity, dt))
		}

		pw.bodies.Add(e, body)
	}
}

// Resolve applies minimal positional correction for overlapping pairs.
// Dynamic bodies are pushed out of static/kinematic ones along the axis of
// least penetration and lose their velocity on that axis; dynamic-dynamic
// overlap is split evenly. Deliberately approximate - this is a broadphase
// engine, not a rigid-body solver.
func (pw *PhysicsWorld) Resolve(pairs []Pair) {
	for _, p := range pairs {
		bodyA, okA := pw.bodies.Get(p.A)
		bodyB, okB := pw.bodies.Get(p.B)

		dynA := okA && bodyA.Kind == core.BodyDynamic
		dynB := okB && bodyB.Kind == core.BodyDynamic
		if !dynA && !dynB {
			continue
		}

		colA, okCA := pw.colliders.Get(p.A)
		colB, okCB := pw.colliders.Get(p.B)
		if !okCA || !okCB {
			continue
		}

		boxA := pw.currentAABB(p.A, bodyA, okA, colA)
		boxB := pw.currentAABB(p.B, bodyB, okB, colB)
		if !boxA.Overlaps(boxB) {
			continue // separated during integration
		}

		axis, depth := minPenetration(boxA, boxB)
		if depth <= 0 {
			continue
		}

		switch {
		case dynA && dynB:
			half := vmath.V3Scale(axis, depth*0.5)
			bodyA.Position = vmath.V3Sub(bodyA.Position, half)
			bodyB.Position = vmath.V3Add(bodyB.Position, half)
			bodyA.Velocity = cancelAlong(bodyA.Velocity, axis)
			bodyB.Velocity = cancelAlong(bodyB.Velocity, axis)
			pw.bodies.Add(p.A, bodyA)
			pw.bodies.Add(p.B, bodyB)
		case dynA:
			bodyA.Position = vmath.V3Sub(bodyA.Position, vmath.V3Scale(axis, depth))
			bodyA.Velocity = cancelAlong(bodyA.Velocity, axis)
			pw.bodies.Add(p.A, bodyA)
		default:
			bodyB.Position = vmath.V3Add(bodyB.Position, vmath.V3Scale(axis, depth))
			bodyB.Velocity = cancelAlong(bodyB.Velocity, axis)
			pw.bodies.Add(p.B, bodyB)
		}
	}
}

// currentAABB computes the post-integration AABB for a pair member
func (pw *PhysicsWorld) currentAABB(e core.Entity, body component.PhysicsBodyComponent, hasBody bool, col component.ColliderComponent) vmath.AABB {
	if hasBody {
		return col.WorldAABB(body.Position, body.Rotation)
	}
	tr, _ := pw.transforms.Get(e)
	return col.WorldAABB(tr.Translation, tr.Rotation)
}

// minPenetration returns the unit axis (pointing from A toward B) and depth
// of the smallest overlap between two intersecting AABBs
func minPenetration(a, b vmath.AABB) (vmath.Vec3, float64) {
	ca := a.Center()
	cb := b.Center()

	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	overlapZ := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)

	axis := vmath.Vec3{X: sign(cb.X - ca.X)}
	depth := overlapX
	if overlapY < depth {
		axis = vmath.Vec3{Y: sign(cb.Y - ca.Y)}
		depth = overlapY
	}
	if overlapZ < depth {
		axis = vmath.Vec3{Z: sign(cb.Z - ca.Z)}
		depth = overlapZ
	}
	return axis, depth
}

// cancelAlong removes the velocity component parallel to axis
func cancelAlong(v, axis vmath.Vec3) vmath.Vec3 {
	d := vmath.V3Dot(v, axis)
	return vmath.V3Sub(v, vmath.V3Scale(axis, d))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
