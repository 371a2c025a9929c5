package ecs

import "github.com/milk9111/tinytank/ecs/component"

func storeFor[T any](w *World, handle component.ComponentHandle[T], create bool) (*sparseSet[T], error) {
	if !handle.Valid() {
		return nil, component.ErrInvalidComponentKind
	}
	if s, ok := w.stores[handle.ID()]; ok {
		typed, ok := s.(*sparseSet[T])
		if !ok {
			return nil, component.ErrKindMismatch
		}
		return typed, nil
	}
	if !create {
		return nil, nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]storage)
	}
	s := newSparseSet[T]()
	w.stores[handle.ID()] = s
	return s, nil
}

// Add sets the component value for e, replacing any previous value.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	s, err := storeFor(w, handle, true)
	if err != nil {
		return err
	}
	s.set(e, value)
	return nil
}

// Get returns a pointer to the stored component. The pointer stays valid until
// the next Add or Remove of the same kind.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	s, err := storeFor(w, handle, false)
	if err != nil || s == nil {
		return nil, false
	}
	return s.get(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := Get(w, e, handle)
	return ok
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	s, err := storeFor(w, handle, false)
	if err != nil || s == nil {
		return false
	}
	return s.remove(e)
}

// Count returns how many entities carry the component kind.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	if w == nil {
		return 0
	}
	s, err := storeFor(w, handle, false)
	if err != nil || s == nil {
		return 0
	}
	return s.len()
}

// ForEach calls fn for every entity carrying the component kind. fn may mutate
// the component through the pointer but must not add or remove components of
// the same kind; use World.Query for passes that destroy entities.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s, err := storeFor(w, handle, false)
	if err != nil || s == nil {
		return
	}
	for i := range s.dense {
		fn(s.dense[i], &s.values[i])
	}
}
