package content

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lixenwraith/helix/core"
)

// MeshDescriptor is the CPU-side shape handed to the GPU factory
// The simulation core only produces these at scene build time
type MeshDescriptor struct {
	Name      string
	Positions []float64 // xyz triples
	Normals   []float64 // xyz triples
	Indices   []uint32
}

// TextureDescriptor is CPU-side pixel data for the GPU factory
type TextureDescriptor struct {
	Name   string
	Width  int
	Height int
	Pixels []byte // RGBA8
}

// GPUFactory is the scene-build capability provided by the external
// renderer. The core calls it once during scene construction and never
// inspects the returned handles.
type GPUFactory interface {
	CreateMesh(desc MeshDescriptor) (core.MeshHandle, error)
	CreateTexture(desc TextureDescriptor) (core.TextureHandle, error)
	CreateMaterial(texture core.TextureHandle) (core.MaterialHandle, error)
}

// MemoryFactory is a renderer-less GPUFactory for tests and headless runs
// Handles are fresh UUIDs; descriptors are retained for inspection
type MemoryFactory struct {
	Meshes    map[core.MeshHandle]MeshDescriptor
	Textures  map[core.TextureHandle]TextureDescriptor
	Materials []core.MaterialHandle
}

func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{
		Meshes:   make(map[core.MeshHandle]MeshDescriptor),
		Textures: make(map[core.TextureHandle]TextureDescriptor),
	}
}

func (f *MemoryFactory) CreateMesh(desc MeshDescriptor) (core.MeshHandle, error) {
	if len(desc.Positions) == 0 || len(desc.Positions)%3 != 0 {
		return core.NilMesh, fmt.Errorf("content: mesh %q has invalid position data", desc.Name)
	}
	h := core.MeshHandle(uuid.NewString())
	f.Meshes[h] = desc
	return h, nil
}

func (f *MemoryFactory) CreateTexture(desc TextureDescriptor) (core.TextureHandle, error) {
	if desc.Width <= 0 || desc.Height <= 0 || len(desc.Pixels) != desc.Width*desc.Height*4 {
		return "", fmt.Errorf("content: texture %q has invalid pixel data", desc.Name)
	}
	h := core.TextureHandle(uuid.NewString())
	f.Textures[h] = desc
	return h, nil
}

func (f *MemoryFactory) CreateMaterial(texture core.TextureHandle) (core.MaterialHandle, error) {
	h := core.MaterialHandle(uuid.NewString())
	f.Materials = append(f.Materials, h)
	return h, nil
}
