package render

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/helix/component"
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/engine"
	"github.com/lixenwraith/helix/vmath"
)

func addMeshEntity(w *engine.World, pos vmath.Vec3, mesh core.MeshHandle) core.Entity {
	e := w.CreateEntity()
	tr := component.NewTransform()
	tr.Translation = pos
	engine.Add(w, e, tr)
	engine.Add(w, e, component.MeshComponent{Mesh: mesh, Material: "mat"})
	return e
}

func TestExtractOrderedByEntityID(t *testing.T) {
	w := engine.NewWorld()
	ex := NewExtractor(w)

	// Insert out of spatial order; extraction must order by entity ID
	e1 := addMeshEntity(w, vmath.Vec3{X: 9}, "m1")
	e2 := addMeshEntity(w, vmath.Vec3{X: -9}, "m2")
	e3 := addMeshEntity(w, vmath.Vec3{}, "m3")

	items := ex.Extract(w)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := []core.Entity{e1, e2, e3}
	for i, e := range want {
		if items[i].Entity != e {
			t.Errorf("item %d is entity %d, want %d", i, items[i].Entity, e)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	w := engine.NewWorld()
	ex := NewExtractor(w)

	addMeshEntity(w, vmath.Vec3{X: 1, Y: 2, Z: 3}, "m1")

	e := w.CreateEntity()
	tr := component.NewTransform()
	tr.Translation = vmath.Vec3{X: -4}
	engine.Add(w, e, tr)
	engine.Add(w, e, component.SkinnedMeshComponent{Mesh: "sk", Material: "skmat"})
	engine.Add(w, e, component.SkeletonPoseComponent{
		Palette: []vmath.Mat4{vmath.M4Identity(), vmath.M4Identity()},
	})

	first := ex.Extract(w)
	second := ex.Extract(w)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated extraction with unchanged world produced different output")
	}
}

func TestExtractDoesNotExposeLivePalette(t *testing.T) {
	w := engine.NewWorld()
	ex := NewExtractor(w)

	e := w.CreateEntity()
	engine.Add(w, e, component.NewTransform())
	engine.Add(w, e, component.SkinnedMeshComponent{Mesh: "sk", Material: "m"})
	engine.Add(w, e, component.SkeletonPoseComponent{Palette: []vmath.Mat4{vmath.M4Identity()}})

	items := ex.Extract(w)
	if len(items) != 1 || len(items[0].Palette) != 1 {
		t.Fatalf("unexpected items %+v", items)
	}

	// Scribbling on the extracted palette must not leak into the component
	items[0].Palette[0][0] = 123

	poses := engine.GetStore[component.SkeletonPoseComponent](w)
	pose, _ := poses.Get(e)
	if pose.Palette[0][0] == 123 {
		t.Error("extraction shares palette storage with the component")
	}
}

func TestExtractResolvesModelMatrix(t *testing.T) {
	w := engine.NewWorld()
	ex := NewExtractor(w)

	pos := vmath.Vec3{X: 2, Y: 4, Z: -1}
	addMeshEntity(w, pos, "m")

	items := ex.Extract(w)
	got := vmath.M4TransformPoint(items[0].Model, vmath.Vec3{})
	if got != pos {
		t.Errorf("model matrix places origin at %+v, want %+v", got, pos)
	}
}

func TestExtractSkipsIncompleteEntities(t *testing.T) {
	w := engine.NewWorld()
	ex := NewExtractor(w)

	// Transform without mesh, mesh without transform
	e1 := w.CreateEntity()
	engine.Add(w, e1, component.NewTransform())
	e2 := w.CreateEntity()
	engine.Add(w, e2, component.MeshComponent{Mesh: "m", Material: "x"})

	if items := ex.Extract(w); len(items) != 0 {
		t.Errorf("expected no items for incomplete entities, got %d", len(items))
	}
}

func TestCameraMatrices(t *testing.T) {
	c := NewCamera()
	c.Position = vmath.Vec3{Z: 10}
	c.Target = vmath.Vec3{}
	c.Up = vmath.Vec3{Y: 1}

	// A point at the origin sits 10 units down the view -Z axis
	view := c.View()
	got := vmath.M4TransformPoint(view, vmath.Vec3{})
	if got.Z != -10 || got.X != 0 || got.Y != 0 {
		t.Errorf("view transform of origin = %+v, want (0,0,-10)", got)
	}

	proj := c.Projection()
	if proj[0] == 0 || proj[5] == 0 {
		t.Error("projection has zero focal terms")
	}
}
