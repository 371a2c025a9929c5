package component

import "github.com/jakecoffman/cp"

// Projectile travels along Direction, a unit vector fixed at spawn.
type Projectile struct {
	Direction cp.Vector
}

var ProjectileComponent = NewComponent[Projectile]()
