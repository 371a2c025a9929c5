package ecs

import "github.com/milk9111/tinytank/ecs/component"

// World owns entities and their components. It is not safe for concurrent use;
// the simulation drives it from a single goroutine.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]storage
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]storage)}
}

// CreateEntity allocates a new entity. Slots freed by DestroyEntity are reused
// with a new generation.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
// It returns false when e is not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Query returns the entities carrying every listed component kind. The result
// is a fresh slice, so callers may destroy entities while ranging over it.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	var smallest storage
	for _, id := range ids {
		s, ok := w.stores[id]
		if !ok {
			return nil
		}
		if smallest == nil || s.len() < smallest.len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.len())
	for _, e := range smallest.entities() {
		matched := true
		for _, id := range ids {
			if !w.stores[id].has(e) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}
