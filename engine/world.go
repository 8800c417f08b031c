package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/helix/core"
)

// World contains all entities and their components using typed stores
// Stores are created lazily on first access for a component type and are
// registered in a type-keyed registry for uniform lifecycle operations
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// Type registry: one store per component type, type-erased for
	// destruction/clear, concrete type recovered once in GetStore
	stores map[reflect.Type]AnyStore
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		stores:       make(map[reflect.Type]AnyStore),
	}
}

// CreateEntity allocates a fresh, never-before-used entity ID and marks it live
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity marks an entity dead and eagerly purges it from every
// registered store. No-op for unknown or already-dead entities.
// IDs are never reused, so a destroyed ID stays invalid forever.
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	if _, ok := w.alive[e]; !ok {
		w.mu.Unlock()
		return
	}
	delete(w.alive, e)
	stores := make([]AnyStore, 0, len(w.stores))
	for _, s := range w.stores {
		stores = append(stores, s)
	}
	w.mu.Unlock()

	for _, s := range stores {
		s.Remove(e)
	}
}

// Alive reports whether the entity is currently live
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// Clear removes all entities and components but keeps registered stores
// The ID counter is NOT reset: identifiers stay unique per World lifetime
func (w *World) Clear() {
	w.mu.Lock()
	w.alive = make(map[core.Entity]struct{})
	stores := make([]AnyStore, 0, len(w.stores))
	for _, s := range w.stores {
		stores = append(stores, s)
	}
	w.mu.Unlock()

	for _, s := range stores {
		s.Clear()
	}
}

// registerStore installs a store under its component type key
// Returns the already-registered store if another caller won the race
func (w *World) registerStore(key reflect.Type, s AnyStore) AnyStore {
	w.mu.Lock()
	defer w.mu.Unlock()
	if existing, ok := w.stores[key]; ok {
		return existing
	}
	w.stores[key] = s
	return s
}

// lookupStore returns the registered store for a type key, nil if none
func (w *World) lookupStore(key reflect.Type) AnyStore {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stores[key]
}

// GetStore returns the store for component type T, creating it on first use
// The type-erasure cast happens once here; call sites hold typed pointers.
// Systems should call this once at construction and cache the result.
func GetStore[T any](w *World) *Store[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()

	if s := w.lookupStore(key); s != nil {
		return s.(*Store[T])
	}

	fresh := NewStore[T]()
	fresh.live = w.Alive
	return w.registerStore(key, fresh).(*Store[T])
}

// Add attaches a component value to a live entity
// Panics if the entity is not live (programmer error, see Store.Add)
func Add[T any](w *World, e core.Entity, val T) {
	GetStore[T](w).Add(e, val)
}

// Get retrieves a component for an entity; absent for dead entities
func Get[T any](w *World, e core.Entity) (T, bool) {
	var zero T
	if !w.Alive(e) {
		return zero, false
	}
	return GetStore[T](w).Get(e)
}

// Remove detaches a component from an entity, no-op if absent
func Remove[T any](w *World, e core.Entity) {
	GetStore[T](w).Remove(e)
}
