package entity

import (
	"fmt"

	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
)

// spawn creates an entity and runs each step on it. If a step fails the
// entity is destroyed, so no partially built entity stays in the world.
func spawn(w *ecs.World, steps ...func(ecs.Entity) error) (ecs.Entity, error) {
	e := w.CreateEntity()
	for _, step := range steps {
		if err := step(e); err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
	}
	return e, nil
}

// with adds one component as a spawn step, wrapping failures with what.
func with[T any](w *ecs.World, what string, handle component.ComponentHandle[T], value T) func(ecs.Entity) error {
	return func(e ecs.Entity) error {
		if err := ecs.Add(w, e, handle, value); err != nil {
			return fmt.Errorf("%s: %w", what, err)
		}
		return nil
	}
}
