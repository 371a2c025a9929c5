package system

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
	"github.com/milk9111/tinytank/ecs/entity"
	"github.com/milk9111/tinytank/input"
	"github.com/milk9111/tinytank/prefabs"
)

type recordedLine struct {
	a, b     cp.Vector
	duration float64
}

type lineRecorder struct {
	lines []recordedLine
}

func (r *lineRecorder) Line(a, b cp.Vector, duration float64, _ color.Color) {
	r.lines = append(r.lines, recordedLine{a, b, duration})
}

func newPlayerWorld(t *testing.T) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	player, _, err := entity.NewPlayer(w, prefabs.DefaultTuning())
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return w, player
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func velocityOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Velocity {
	t.Helper()
	v, ok := ecs.Get(w, e, component.VelocityComponent)
	if !ok {
		t.Fatalf("entity %v has no velocity", e)
	}
	return v
}

func held(keys ...input.Key) input.Snapshot {
	var s input.Snapshot
	for _, k := range keys {
		s.SetKey(k, true, false)
	}
	return s
}

func click() input.Snapshot {
	var s input.Snapshot
	s.SetMouse(input.MouseButtonLeft, true, true)
	return s
}

func holdMouse() input.Snapshot {
	var s input.Snapshot
	s.SetMouse(input.MouseButtonLeft, true, false)
	return s
}

// windowAt returns a window of the given size with the cursor placed at the
// given world position.
func windowAt(width, height float64, world cp.Vector) input.Window {
	return input.Window{
		Width:        width,
		Height:       height,
		Cursor:       world.Add(cp.Vector{X: width / 2, Y: height / 2}),
		CursorInside: true,
	}
}

func projectiles(w *ecs.World) []ecs.Entity {
	return w.Query(component.ProjectileComponent.ID())
}
