package vmath

// AABB is an axis-aligned bounding box in world space
type AABB struct {
	Min, Max Vec3
}

// AABBFromBox computes the world AABB of an oriented box
// half: local half-extents, pos: center, rot: orientation
func AABBFromBox(pos Vec3, rot Quat, half Vec3) AABB {
	r := M4RotationAbs(rot)
	ext := Vec3{
		r[0].X*half.X + r[0].Y*half.Y + r[0].Z*half.Z,
		r[1].X*half.X + r[1].Y*half.Y + r[1].Z*half.Z,
		r[2].X*half.X + r[2].Y*half.Y + r[2].Z*half.Z,
	}
	return AABB{
		Min: V3Sub(pos, ext),
		Max: V3Add(pos, ext),
	}
}

// Overlaps reports full 3-axis overlap, boundary contact counts as overlap
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether the point lies inside or on the box
func (a AABB) Contains(p Vec3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// ContainsXZ reports whether the XZ footprint contains the point
func (a AABB) ContainsXZ(x, z float64) bool {
	return x >= a.Min.X && x <= a.Max.X && z >= a.Min.Z && z <= a.Max.Z
}

// Center returns the box midpoint
func (a AABB) Center() Vec3 {
	return V3Scale(V3Add(a.Min, a.Max), 0.5)
}
