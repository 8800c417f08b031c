package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/helix/vmath"
)

const validSkinnedJSON = `{
  "version": 1,
  "mesh": {
    "positions": [0,0,0, 1,0,0, 0,1,0],
    "normals": [0,0,1, 0,0,1, 0,0,1],
    "indices": [0, 1, 2]
  },
  "skin": {
    "bones": [
      {"name": "root", "inverseBindMatrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,0,1]},
      {"name": "spine", "inverseBindMatrix": [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,-1,0,1]}
    ]
  }
}`

func TestLoadSkinnedAsset(t *testing.T) {
	asset, err := LoadSkinnedAsset("biped", []byte(validSkinnedJSON))
	require.NoError(t, err)

	assert.Equal(t, "biped", asset.Mesh.Name)
	assert.Len(t, asset.Mesh.Positions, 9)
	assert.Len(t, asset.Mesh.Indices, 3)
	require.Len(t, asset.Bones, 2)
	assert.Equal(t, "root", asset.Bones[0].Name)
	assert.Equal(t, "spine", asset.Bones[1].Name)
	assert.Equal(t, vmath.M4Identity(), asset.Bones[0].InverseBind)
	assert.NotZero(t, asset.Digest)
}

func TestLoadSkinnedAssetDigestIsStable(t *testing.T) {
	a, err := LoadSkinnedAsset("a", []byte(validSkinnedJSON))
	require.NoError(t, err)
	b, err := LoadSkinnedAsset("b", []byte(validSkinnedJSON))
	require.NoError(t, err)

	assert.Equal(t, a.Digest, b.Digest, "same payload must hash identically")

	c, err := LoadSkinnedAsset("c", []byte(validSkinnedJSON+" "))
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest, c.Digest, "different payload must hash differently")
}

func TestLoadSkinnedAssetRejections(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"not json", `{`},
		{"bad version", `{"version": 99}`},
		{"no positions", `{"version":1,"mesh":{"positions":[],"indices":[]},"skin":{"bones":[{"name":"r","inverseBindMatrix":[1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1]}]}}`},
		{"ragged positions", `{"version":1,"mesh":{"positions":[0,0],"indices":[]},"skin":{"bones":[{"name":"r","inverseBindMatrix":[1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1]}]}}`},
		{"ragged indices", `{"version":1,"mesh":{"positions":[0,0,0],"indices":[0,0]},"skin":{"bones":[{"name":"r","inverseBindMatrix":[1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1]}]}}`},
		{"index out of range", `{"version":1,"mesh":{"positions":[0,0,0],"indices":[0,0,7]},"skin":{"bones":[{"name":"r","inverseBindMatrix":[1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1]}]}}`},
		{"no bones", `{"version":1,"mesh":{"positions":[0,0,0],"indices":[0,0,0]},"skin":{"bones":[]}}`},
		{"short matrix", `{"version":1,"mesh":{"positions":[0,0,0],"indices":[0,0,0]},"skin":{"bones":[{"name":"r","inverseBindMatrix":[1,2,3]}]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSkinnedAsset("bad", []byte(tc.json))
			assert.Error(t, err)
		})
	}
}

func TestRestPalette(t *testing.T) {
	asset, err := LoadSkinnedAsset("biped", []byte(validSkinnedJSON))
	require.NoError(t, err)

	palette := asset.RestPalette()
	require.Len(t, palette, len(asset.Bones))
	for _, m := range palette {
		assert.Equal(t, vmath.M4Identity(), m)
	}
}
