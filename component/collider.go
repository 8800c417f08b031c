package component

import (
	"github.com/lixenwraith/helix/vmath"
)

// ColliderComponent describes collision shape, currently box half-extents
type ColliderComponent struct {
	HalfExtents vmath.Vec3
}

// WorldAABB computes the world-space AABB of the collider at a pose
func (c ColliderComponent) WorldAABB(pos vmath.Vec3, rot vmath.Quat) vmath.AABB {
	return vmath.AABBFromBox(pos, rot, c.HalfExtents)
}
