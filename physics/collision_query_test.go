package physics

import (
	"testing"

	"github.com/lixenwraith/helix/component"
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/engine"
	"github.com/lixenwraith/helix/vmath"
)

func addStaticMesh(w *engine.World, pos, half vmath.Vec3) core.Entity {
	e := addBody(w, core.BodyStatic, pos, half)
	engine.Add(w, e, component.StaticMeshComponent{})
	return e
}

func TestIndexNilBeforeFirstUpdate(t *testing.T) {
	w := engine.NewWorld()
	svc := NewCollisionQueryService(w, 0)

	if svc.Index() != nil {
		t.Error("index should be nil before the first Update")
	}

	if !svc.Update(w) {
		t.Error("first Update must rebuild")
	}
	if svc.Index() == nil {
		t.Error("index still nil after Update")
	}
}

func TestUpdateIsLazyWhenClean(t *testing.T) {
	w := engine.NewWorld()
	svc := NewCollisionQueryService(w, 0)
	addStaticMesh(w, vmath.Vec3{}, vmath.Vec3{X: 1, Y: 1, Z: 1})

	svc.Update(w)
	if svc.Update(w) {
		t.Error("clean index rebuilt without cause")
	}
}

func TestMarkDirtyForcesRebuild(t *testing.T) {
	w := engine.NewWorld()
	svc := NewCollisionQueryService(w, 0)
	addStaticMesh(w, vmath.Vec3{}, vmath.Vec3{X: 1, Y: 1, Z: 1})

	svc.Update(w)
	svc.MarkDirty()
	if !svc.Update(w) {
		t.Error("MarkDirty did not trigger rebuild")
	}
	if svc.Update(w) {
		t.Error("rebuild flag not cleared after rebuild")
	}
}

// TestSelfHealingRebuild: a material move triggers exactly one rebuild on
// the next Update; sub-epsilon jitter triggers none
func TestSelfHealingRebuild(t *testing.T) {
	w := engine.NewWorld()
	svc := NewCollisionQueryService(w, 1e-6)
	e := addStaticMesh(w, vmath.Vec3{}, vmath.Vec3{X: 1, Y: 1, Z: 1})
	bodies := engine.GetStore[component.PhysicsBodyComponent](w)

	svc.Update(w)

	// Sub-epsilon jitter: squared delta below threshold
	body, _ := bodies.Get(e)
	body.Position = vmath.Vec3{X: 0.0001}
	bodies.Add(e, body)
	if svc.Update(w) {
		t.Error("sub-epsilon jitter triggered a rebuild")
	}

	// Material move
	body, _ = bodies.Get(e)
	body.Position = vmath.Vec3{X: 2}
	bodies.Add(e, body)
	if !svc.Update(w) {
		t.Error("material move did not trigger a rebuild")
	}
	if svc.Update(w) {
		t.Error("second Update after self-heal rebuilt again")
	}

	// The rebuilt index must reflect the new pose
	idx := svc.Index()
	if len(idx.Boxes) != 1 {
		t.Fatalf("expected 1 indexed box, got %d", len(idx.Boxes))
	}
	if idx.Boxes[0].Box.Min.X != 1 || idx.Boxes[0].Box.Max.X != 3 {
		t.Errorf("index holds stale bounds: %+v", idx.Boxes[0].Box)
	}
}

func TestRotationDriftTriggersRebuild(t *testing.T) {
	w := engine.NewWorld()
	svc := NewCollisionQueryService(w, 1e-6)
	e := addStaticMesh(w, vmath.Vec3{}, vmath.Vec3{X: 2, Y: 1, Z: 1})
	bodies := engine.GetStore[component.PhysicsBodyComponent](w)

	svc.Update(w)

	body, _ := bodies.Get(e)
	body.Rotation = vmath.QFromAxisAngle(vmath.Vec3{Y: 1}, 0.5)
	bodies.Add(e, body)

	if !svc.Update(w) {
		t.Error("rotation change did not trigger a rebuild")
	}
}

func TestVanishedEntityTriggersRebuild(t *testing.T) {
	w := engine.NewWorld()
	svc := NewCollisionQueryService(w, 0)
	e := addStaticMesh(w, vmath.Vec3{}, vmath.Vec3{X: 1, Y: 1, Z: 1})

	svc.Update(w)
	w.DestroyEntity(e)

	if !svc.Update(w) {
		t.Error("destroyed entity did not invalidate the index")
	}
	if len(svc.Index().Boxes) != 0 {
		t.Errorf("destroyed entity still indexed: %+v", svc.Index().Boxes)
	}
}

func TestGroundHeight(t *testing.T) {
	w := engine.NewWorld()
	svc := NewCollisionQueryService(w, 0)

	// Ground slab top at y=0, platform top at y=3
	addStaticMesh(w, vmath.Vec3{Y: -0.5}, vmath.Vec3{X: 10, Y: 0.5, Z: 10})
	addStaticMesh(w, vmath.Vec3{X: 2, Y: 2.5, Z: 2}, vmath.Vec3{X: 1, Y: 0.5, Z: 1})

	svc.Update(w)
	idx := svc.Index()

	// Above the platform: platform wins
	if h, ok := idx.GroundHeight(2, 2, 10); !ok || h != 3 {
		t.Errorf("expected platform top 3, got %v ok=%v", h, ok)
	}
	// Next to the platform: ground slab
	if h, ok := idx.GroundHeight(8, 8, 10); !ok || h != 0 {
		t.Errorf("expected ground top 0, got %v ok=%v", h, ok)
	}
	// Probing from below the platform: only the slab is at or below
	if h, ok := idx.GroundHeight(2, 2, 1); !ok || h != 0 {
		t.Errorf("expected slab top 0 when probing from y=1, got %v ok=%v", h, ok)
	}
	// Outside all footprints
	if _, ok := idx.GroundHeight(100, 100, 10); ok {
		t.Error("found ground outside every footprint")
	}
}
