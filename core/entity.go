package core

// Entity is a unique identifier for a simulation object
// IDs are strictly increasing and never reused within the owning World,
// which side-steps ABA problems without generation counters
type Entity uint32

// InvalidEntity is the zero value, never allocated by a World
const InvalidEntity Entity = 0
