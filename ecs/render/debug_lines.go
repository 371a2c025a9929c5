package render

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Line is one world-space debug segment.
type Line struct {
	Start     cp.Vector
	End       cp.Vector
	StartTint color.Color
	EndTint   color.Color
	Remaining float64
}

// DebugLines keeps ephemeral debug segments until their visible time runs out.
// It satisfies ecs.DebugDrawer.
type DebugLines struct {
	lines []Line
}

func NewDebugLines() *DebugLines {
	return &DebugLines{}
}

// Line queues a single-colour segment visible for duration seconds.
func (d *DebugLines) Line(a, b cp.Vector, duration float64, c color.Color) {
	d.Gradient(a, b, duration, c, c)
}

// Gradient queues a segment blending from start to end colour.
func (d *DebugLines) Gradient(a, b cp.Vector, duration float64, start, end color.Color) {
	if d == nil || duration <= 0 {
		return
	}
	if start == nil {
		start = color.White
	}
	if end == nil {
		end = start
	}
	d.lines = append(d.lines, Line{Start: a, End: b, StartTint: start, EndTint: end, Remaining: duration})
}

// Age removes the time dt from every segment and drops expired ones.
func (d *DebugLines) Age(dt float64) {
	if d == nil || dt <= 0 {
		return
	}
	kept := d.lines[:0]
	for _, l := range d.lines {
		l.Remaining -= dt
		if l.Remaining > 0 {
			kept = append(kept, l)
		}
	}
	for i := len(kept); i < len(d.lines); i++ {
		d.lines[i] = Line{}
	}
	d.lines = kept
}

// Lines returns the live segments. The slice is reused by Age.
func (d *DebugLines) Lines() []Line {
	if d == nil {
		return nil
	}
	return d.lines
}

func (d *DebugLines) Len() int {
	if d == nil {
		return 0
	}
	return len(d.lines)
}

// LineDrawer is the minimal sink Cross needs.
type LineDrawer interface {
	Line(a, b cp.Vector, duration float64, c color.Color)
}

const (
	crossPrimaryDuration   = 0.9
	crossSecondaryDuration = 1.2
)

// Cross draws an X marker centred on p through any LineDrawer.
func Cross(d LineDrawer, p cp.Vector, r float64, c color.Color) {
	if d == nil {
		return
	}
	d.Line(p.Add(cp.Vector{X: -r, Y: -r}), p.Add(cp.Vector{X: r, Y: r}), crossPrimaryDuration, c)
	d.Line(p.Add(cp.Vector{X: r, Y: -r}), p.Add(cp.Vector{X: -r, Y: r}), crossSecondaryDuration, c)
}
