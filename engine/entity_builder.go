package engine

import (
	"github.com/lixenwraith/helix/core"
)

// EntityBuilder provides a fluent, type-safe interface for constructing
// entities with components. The entity ID is reserved upfront; Build()
// returns it once all components are attached.
//
// Example:
//
//	e := With(With(world.NewEntity(), transforms, tc), colliders, cc).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates an EntityBuilder with a freshly allocated live entity
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Generic free function because Go methods cannot introduce type parameters.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Add(eb.entity, component)
	return eb
}

// Build finalizes construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
