package ecs

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/input"
)

// DebugDrawer accepts ephemeral world-space line segments. duration is a
// visibility hint in seconds.
type DebugDrawer interface {
	Line(a, b cp.Vector, duration float64, c color.Color)
}

// Frame carries the collaborator snapshots handed to systems for one rendered
// frame. Systems read it; only the host writes it.
type Frame struct {
	Input  input.Snapshot
	Window input.Window
	Debug  DebugDrawer
}

// System updates a world.
type System interface {
	Update(w *World, f *Frame)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World, f *Frame)

func (fn SystemFunc) Update(w *World, f *Frame) {
	fn(w, f)
}
