package system

import (
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
)

// ProjectileSystem advances every projectile along its direction once per
// fixed tick.
type ProjectileSystem struct {
	// Speed is in world units per tick.
	Speed float64
}

func NewProjectileSystem(speed float64) *ProjectileSystem {
	return &ProjectileSystem{Speed: speed}
}

func (p *ProjectileSystem) Update(w *ecs.World, _ *ecs.Frame) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ProjectileComponent, func(e ecs.Entity, proj *component.Projectile) {
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		transform.Position = transform.Position.Add(proj.Direction.Mult(p.Speed))
	})
}
