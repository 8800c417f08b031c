package core

// GPU resource handles are opaque to the simulation core: they are created
// by an external factory at scene build time, attached to entities as
// component payloads, and passed through render extraction untouched.
// The core never inspects or interprets handle contents.

// MeshHandle identifies a GPU mesh owned by the renderer
type MeshHandle string

// MaterialHandle identifies a GPU material/texture binding owned by the renderer
type MaterialHandle string

// TextureHandle identifies a GPU texture owned by the renderer
type TextureHandle string

// NilMesh is the absent-mesh sentinel
const NilMesh MeshHandle = ""

// NilMaterial is the absent-material sentinel
const NilMaterial MaterialHandle = ""
