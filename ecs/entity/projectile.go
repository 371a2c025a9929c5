package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
	"github.com/milk9111/tinytank/prefabs"
	"golang.org/x/image/colornames"
)

const projectileLayer = 0

// NewProjectile spawns a projectile at pos travelling along dir, which must
// already be a unit vector.
func NewProjectile(w *ecs.World, pos, dir cp.Vector, spec prefabs.ProjectileSpec) (ecs.Entity, error) {
	return spawn(w,
		with(w, "projectile: add transform", component.TransformComponent, component.Transform{Position: pos}),
		with(w, "projectile: add projectile", component.ProjectileComponent, component.Projectile{Direction: dir}),
		with(w, "projectile: add shape", component.ShapeComponent, component.Shape{
			Kind:   component.ShapeCircle,
			Radius: spec.Radius,
			Sides:  spec.Sides,
			Fill:   spec.Fill.Or(colornames.Black),
			Layer:  projectileLayer,
		}),
	)
}
