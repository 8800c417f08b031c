package render

import (
	"sort"

	"github.com/lixenwraith/helix/component"
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/engine"
	"github.com/lixenwraith/helix/vmath"
)

// RenderItem is one draw of the frame: opaque renderer handles plus the
// resolved model matrix and, for skinned entities, the joint palette.
// Immutable once produced; the renderer never writes back through it.
type RenderItem struct {
	Entity   core.Entity
	Mesh     core.MeshHandle
	Material core.MaterialHandle
	Model    vmath.Mat4
	Palette  []vmath.Mat4 // nil for rigid meshes
}

// Extractor derives the per-frame draw list from live world state
// Extraction is pure: it reads components, never mutates them, and is safe
// to run any number of times between ticks with identical output.
type Extractor struct {
	transforms *engine.Store[component.TransformComponent]
	meshes     *engine.Store[component.MeshComponent]
	skinned    *engine.Store[component.SkinnedMeshComponent]
	poses      *engine.Store[component.SkeletonPoseComponent]
}

// NewExtractor resolves store dependencies once
func NewExtractor(w *engine.World) *Extractor {
	return &Extractor{
		transforms: engine.GetStore[component.TransformComponent](w),
		meshes:     engine.GetStore[component.MeshComponent](w),
		skinned:    engine.GetStore[component.SkinnedMeshComponent](w),
		poses:      engine.GetStore[component.SkeletonPoseComponent](w),
	}
}

// Extract produces the ordered draw list for the current world state.
// Items are ordered ascending by entity ID - a stable, documented order so
// unchanged input yields byte-identical output and no renderer-side flicker.
func (ex *Extractor) Extract(w *engine.World) []RenderItem {
	rigid := w.Query().
		With(ex.transforms).
		With(ex.meshes).
		Execute()

	skinned := w.Query().
		With(ex.transforms).
		With(ex.skinned).
		Execute()

	items := make([]RenderItem, 0, len(rigid)+len(skinned))

	for _, e := range rigid {
		tr, _ := ex.transforms.Get(e)
		mesh, _ := ex.meshes.Get(e)
		items = append(items, RenderItem{
			Entity:   e,
			Mesh:     mesh.Mesh,
			Material: mesh.Material,
			Model:    tr.ModelMatrix(),
		})
	}

	for _, e := range skinned {
		tr, _ := ex.transforms.Get(e)
		mesh, _ := ex.skinned.Get(e)

		item := RenderItem{
			Entity:   e,
			Mesh:     mesh.Mesh,
			Material: mesh.Material,
			Model:    tr.ModelMatrix(),
		}
		if pose, ok := ex.poses.Get(e); ok && len(pose.Palette) > 0 {
			// Copy so the item stays immutable when the pose advances
			item.Palette = make([]vmath.Mat4, len(pose.Palette))
			copy(item.Palette, pose.Palette)
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Entity < items[j].Entity })
	return items
}
