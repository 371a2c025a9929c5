package component

import "image/color"

type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is the persistent drawable attached to an entity. The renderer places
// it from the entity's resolved world transform.
type Shape struct {
	Kind         ShapeKind
	Radius       float64
	Sides        int
	Width        float64
	Height       float64
	Fill         color.Color
	Outline      color.Color
	OutlineWidth float64
	Layer        int
}

var ShapeComponent = NewComponent[Shape]()
