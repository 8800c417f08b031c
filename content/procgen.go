package content

import (
	"github.com/lixenwraith/helix/vmath"
)

// Procedural mesh/texture generators
// Secondary content producers: they feed the scene builder and are not part
// of the per-tick simulation path

// BoxMesh generates an axis-aligned box mesh centered at the origin
func BoxMesh(name string, half vmath.Vec3) MeshDescriptor {
	hx, hy, hz := half.X, half.Y, half.Z

	// 6 faces, 4 verts each, outward normals
	faces := []struct {
		n    [3]float64
		vert [4][3]float64
	}{
		{[3]float64{0, 0, 1}, [4][3]float64{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float64{0, 0, -1}, [4][3]float64{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
		{[3]float64{1, 0, 0}, [4][3]float64{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{[3]float64{-1, 0, 0}, [4][3]float64{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{[3]float64{0, 1, 0}, [4][3]float64{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{[3]float64{0, -1, 0}, [4][3]float64{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
	}

	desc := MeshDescriptor{
		Name:      name,
		Positions: make([]float64, 0, 6*4*3),
		Normals:   make([]float64, 0, 6*4*3),
		Indices:   make([]uint32, 0, 6*6),
	}

	for fi, f := range faces {
		base := uint32(fi * 4)
		for _, v := range f.vert {
			desc.Positions = append(desc.Positions, v[0], v[1], v[2])
			desc.Normals = append(desc.Normals, f.n[0], f.n[1], f.n[2])
		}
		desc.Indices = append(desc.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return desc
}

// PlaneMesh generates a flat XZ quad of the given half-size at y=0
func PlaneMesh(name string, halfSize float64) MeshDescriptor {
	s := halfSize
	return MeshDescriptor{
		Name: name,
		Positions: []float64{
			-s, 0, -s,
			s, 0, -s,
			s, 0, s,
			-s, 0, s,
		},
		Normals: []float64{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
}

// CheckerTexture generates an RGBA checkerboard
func CheckerTexture(name string, size, squares int, a, b [4]byte) TextureDescriptor {
	if squares <= 0 {
		squares = 1
	}
	cell := size / squares
	if cell < 1 {
		cell = 1
	}

	pixels := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if ((x/cell)+(y/cell))%2 == 1 {
				c = b
			}
			i := (y*size + x) * 4
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = c[0], c[1], c[2], c[3]
		}
	}
	return TextureDescriptor{Name: name, Width: size, Height: size, Pixels: pixels}
}
