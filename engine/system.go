package engine

// System is one simulation step over the world
// Systems are constructed with their dependencies (stores, services) injected
// explicitly and cache store pointers instead of resolving types per call
type System interface {
	// Update advances the system by dt seconds of simulation time
	Update(w *World, dt float64)
}

// SystemFunc adapts a plain function to the System interface
type SystemFunc func(w *World, dt float64)

func (f SystemFunc) Update(w *World, dt float64) {
	f(w, dt)
}
