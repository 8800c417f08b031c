package core

// BodyType classifies how a physics body participates in simulation
type BodyType uint8

const (
	// BodyStatic never moves; immovable collision input
	BodyStatic BodyType = iota
	// BodyKinematic moves by system-driven intent, ignores forces
	BodyKinematic
	// BodyDynamic integrates velocity and responds to overlaps
	BodyDynamic
)

func (b BodyType) String() string {
	switch b {
	case BodyStatic:
		return "static"
	case BodyKinematic:
		return "kinematic"
	case BodyDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}
