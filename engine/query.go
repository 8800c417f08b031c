package engine

import (
	"sort"

	"github.com/lixenwraith/helix/core"
)

// QueryBuilder provides a fluent interface for querying entities based on
// component intersection. It starts from the smallest store and filters
// through the larger ones, so multi-component queries stay close to linear
// in the smallest candidate set.
//
// Example:
//
//	entities := world.Query().
//	    With(transforms).
//	    With(colliders).
//	    Execute()
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// The query returns only entities present in ALL specified stores.
// Panics if called after Execute().
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query and returns live entities present in all stores,
// sorted ascending by entity ID. The sort gives deterministic iteration for
// systems and render extraction regardless of store insertion history.
// Repeated Execute() calls return the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes Has() checks
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()

	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	// Liveness filter: destroyed entities must be unreachable through
	// queries even if a store has not been compacted yet
	live := candidates[:0]
	for _, e := range candidates {
		if qb.world.Alive(e) {
			live = append(live, e)
		}
	}

	sort.Slice(live, func(i, j int) bool { return live[i] < live[j] })
	qb.results = live
	return qb.results
}
