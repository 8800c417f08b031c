package component

import (
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/vmath"
)

// MeshComponent attaches renderer-owned mesh and material handles
// The simulation core treats the handles as opaque payload
type MeshComponent struct {
	Mesh     core.MeshHandle
	Material core.MaterialHandle
}

// SkinnedMeshComponent marks an entity rendered with a skinning palette
type SkinnedMeshComponent struct {
	Mesh     core.MeshHandle
	Material core.MaterialHandle
}

// SkeletonPoseComponent carries the current joint palette for a skinned
// entity. Palette generation (pose math) happens in a content collaborator;
// extraction only copies it into the frame's render item.
type SkeletonPoseComponent struct {
	Palette []vmath.Mat4
}

// StaticMeshComponent marks an entity whose collider participates in the
// on-demand static collision query index
type StaticMeshComponent struct{}
