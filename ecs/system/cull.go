package system

import (
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
)

// CullSystem destroys projectiles that have left the visible window.
type CullSystem struct{}

func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

func (c *CullSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil || f == nil {
		return
	}

	bounds := f.Window.Bounds()
	for _, e := range w.Query(component.ProjectileComponent.ID(), component.TransformComponent.ID()) {
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		if !bounds.ContainsVect(transform.Position) {
			w.DestroyEntity(e)
		}
	}
}
