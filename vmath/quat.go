package vmath

import (
	"math"
)

// Quat is a rotation quaternion (W scalar, XYZ vector)
// Stored unnormalized-tolerant; normalize after accumulating increments
type Quat struct {
	W, X, Y, Z float64
}

// QIdentity returns the no-rotation quaternion
func QIdentity() Quat {
	return Quat{W: 1}
}

// QFromAxisAngle builds a quaternion rotating angle radians about axis
// Axis does not need to be unit length; zero axis yields identity
func QFromAxisAngle(axis Vec3, angle float64) Quat {
	n := V3Normalize(axis)
	if n == (Vec3{}) {
		return QIdentity()
	}
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{
		W: math.Cos(half),
		X: n.X * s,
		Y: n.Y * s,
		Z: n.Z * s,
	}
}

// QMul composes rotations: result applies b first, then a
func QMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QNormalize returns the unit quaternion, identity for a degenerate input
func QNormalize(q Quat) Quat {
	mag := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if mag == 0 {
		return QIdentity()
	}
	inv := 1.0 / mag
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// QRotate applies the rotation to a vector
func QRotate(q Quat, v Vec3) Vec3 {
	// v' = v + 2w(u x v) + 2(u x (u x v)), u = quat vector part
	u := Vec3{q.X, q.Y, q.Z}
	c1 := V3Cross(u, v)
	c2 := V3Cross(u, c1)
	return V3Add(v, V3Add(V3Scale(c1, 2*q.W), V3Scale(c2, 2)))
}

// QDot returns the 4D dot product, used for rotation-delta detection
func QDot(a, b Quat) float64 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
