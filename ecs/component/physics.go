package component

import "github.com/jakecoffman/cp"

// Velocity is expressed in world units per fixed tick.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
