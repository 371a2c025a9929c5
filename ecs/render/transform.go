package render

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
)

// WorldTransform resolves e's transform in world space, following Parent
// links. Children without a Transform of their own take the parent's rotation.
func WorldTransform(w *ecs.World, e ecs.Entity) (component.Transform, bool) {
	return worldTransform(w, e, 0)
}

// maxParentDepth guards against parent cycles.
const maxParentDepth = 8

func worldTransform(w *ecs.World, e ecs.Entity, depth int) (component.Transform, bool) {
	if depth > maxParentDepth || !w.IsAlive(e) {
		return component.Transform{}, false
	}
	local := component.Transform{}
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		local = *t
	}
	parent, ok := ecs.Get(w, e, component.ParentComponent)
	if !ok {
		_, has := ecs.Get(w, e, component.TransformComponent)
		return local, has
	}
	pt, ok := worldTransform(w, ecs.Entity(parent.Entity), depth+1)
	if !ok {
		return component.Transform{}, false
	}
	rot := cp.ForAngle(pt.Rotation)
	offset := parent.Offset.Add(local.Position)
	return component.Transform{
		Position: pt.Position.Add(offset.Rotate(rot)),
		Rotation: pt.Rotation + local.Rotation,
	}, true
}

// ToScreen maps a world point (origin-centred, y up) to screen pixels
// (origin top-left, y down) for a window of the given size.
func ToScreen(p cp.Vector, width, height float64) (float64, float64) {
	return p.X + width/2, height/2 - p.Y
}
