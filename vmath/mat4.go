package vmath

import (
	"math"
)

// Mat4 is a 4x4 matrix in column-major order: element (row r, col c) is M[c*4+r]
// Column-major matches GPU upload conventions so extraction output needs no transpose
type Mat4 [16]float64

// M4Identity returns the identity matrix
func M4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// M4Mul returns a * b (b applied first)
func M4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// M4TRS composes translation * rotation * scale
func M4TRS(t Vec3, r Quat, s Vec3) Mat4 {
	q := QNormalize(r)
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat4{
		(1 - 2*(yy+zz)) * s.X, 2 * (xy + wz) * s.X, 2 * (xz - wy) * s.X, 0,
		2 * (xy - wz) * s.Y, (1 - 2*(xx+zz)) * s.Y, 2 * (yz + wx) * s.Y, 0,
		2 * (xz + wy) * s.Z, 2 * (yz - wx) * s.Z, (1 - 2*(xx+yy)) * s.Z, 0,
		t.X, t.Y, t.Z, 1,
	}
}

// M4RotationAbs returns the element-wise absolute 3x3 rotation of q as rows
// Used for rotated-box AABB extents: worldHalf = |R| * half
func M4RotationAbs(q Quat) [3]Vec3 {
	n := QNormalize(q)
	xx, yy, zz := n.X*n.X, n.Y*n.Y, n.Z*n.Z
	xy, xz, yz := n.X*n.Y, n.X*n.Z, n.Y*n.Z
	wx, wy, wz := n.W*n.X, n.W*n.Y, n.W*n.Z

	return [3]Vec3{
		{math.Abs(1 - 2*(yy+zz)), math.Abs(2 * (xy - wz)), math.Abs(2 * (xz + wy))},
		{math.Abs(2 * (xy + wz)), math.Abs(1 - 2*(xx+zz)), math.Abs(2 * (yz - wx))},
		{math.Abs(2 * (xz - wy)), math.Abs(2 * (yz + wx)), math.Abs(1 - 2*(xx+yy))},
	}
}

// M4LookAt builds a right-handed view matrix
func M4LookAt(eye, target, up Vec3) Mat4 {
	f := V3Normalize(V3Sub(target, eye))
	s := V3Normalize(V3Cross(f, up))
	u := V3Cross(s, f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-V3Dot(s, eye), -V3Dot(u, eye), V3Dot(f, eye), 1,
	}
}

// M4Perspective builds a right-handed perspective projection
// fovy in radians, depth mapped to [0,1]
func M4Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovy*0.5)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, (far * near) / (near - far), 0,
	}
}

// M4TransformPoint applies the matrix to a point (w=1), without perspective divide
func M4TransformPoint(m Mat4, p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}
