package component

import "github.com/jakecoffman/cp"

// Transform places an entity in origin-centred world space. Rotation is in
// radians, counter-clockwise from +x.
type Transform struct {
	Position cp.Vector
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

// Parent attaches an entity rigidly to another one. Offset is expressed in the
// parent's local frame and rotates with it.
type Parent struct {
	Entity uint64
	Offset cp.Vector
}

var ParentComponent = NewComponent[Parent]()
