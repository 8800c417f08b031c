package content

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/helix/vmath"
)

// Skinned asset JSON as produced by the exporter tooling:
//
//	{
//	  "version": 1,
//	  "mesh": {"positions": [...], "normals": [...], "indices": [...]},
//	  "skin": {"bones": [{"name": "...", "inverseBindMatrix": [16 floats]}]}
//	}
//
// Validation happens entirely at load time; a malformed file returns an
// error and the affected entity simply never gains the skinned capability.

// SkinnedAsset is the validated in-memory form of a skinned JSON file
type SkinnedAsset struct {
	Mesh   MeshDescriptor
	Bones  []Bone
	Digest uint64 // xxhash of the raw payload, used as cache/dedupe key
}

// Bone is one skeleton joint with its inverse bind matrix
type Bone struct {
	Name        string
	InverseBind vmath.Mat4
}

type skinnedFile struct {
	Version int `json:"version"`
	Mesh    struct {
		Positions []float64 `json:"positions"`
		Normals   []float64 `json:"normals"`
		Indices   []uint32  `json:"indices"`
	} `json:"mesh"`
	Skin struct {
		Bones []struct {
			Name              string    `json:"name"`
			InverseBindMatrix []float64 `json:"inverseBindMatrix"`
		} `json:"bones"`
	} `json:"skin"`
}

// LoadSkinnedAsset parses and validates skinned JSON
func LoadSkinnedAsset(name string, data []byte) (*SkinnedAsset, error) {
	var file skinnedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("content: skinned asset %q: %w", name, err)
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("content: skinned asset %q: unsupported version %d", name, file.Version)
	}
	if len(file.Mesh.Positions) == 0 || len(file.Mesh.Positions)%3 != 0 {
		return nil, fmt.Errorf("content: skinned asset %q: invalid positions length %d", name, len(file.Mesh.Positions))
	}
	if len(file.Mesh.Indices)%3 != 0 {
		return nil, fmt.Errorf("content: skinned asset %q: invalid indices length %d", name, len(file.Mesh.Indices))
	}
	vertCount := uint32(len(file.Mesh.Positions) / 3)
	for _, idx := range file.Mesh.Indices {
		if idx >= vertCount {
			return nil, fmt.Errorf("content: skinned asset %q: index %d out of range (%d vertices)", name, idx, vertCount)
		}
	}
	if len(file.Skin.Bones) == 0 {
		return nil, fmt.Errorf("content: skinned asset %q: no bones", name)
	}

	asset := &SkinnedAsset{
		Mesh: MeshDescriptor{
			Name:      name,
			Positions: file.Mesh.Positions,
			Normals:   file.Mesh.Normals,
			Indices:   file.Mesh.Indices,
		},
		Bones:  make([]Bone, 0, len(file.Skin.Bones)),
		Digest: xxhash.Sum64(data),
	}

	for i, b := range file.Skin.Bones {
		if len(b.InverseBindMatrix) != 16 {
			return nil, fmt.Errorf("content: skinned asset %q: bone %d has %d matrix elements, want 16", name, i, len(b.InverseBindMatrix))
		}
		var m vmath.Mat4
		copy(m[:], b.InverseBindMatrix)
		asset.Bones = append(asset.Bones, Bone{Name: b.Name, InverseBind: m})
	}

	return asset, nil
}

// RestPalette returns an identity-pose joint palette for the skeleton
// Pose animation is produced by an external collaborator; the rest palette
// keeps a freshly spawned skinned entity renderable
func (a *SkinnedAsset) RestPalette() []vmath.Mat4 {
	palette := make([]vmath.Mat4, len(a.Bones))
	for i := range palette {
		palette[i] = vmath.M4Identity()
	}
	return palette
}
