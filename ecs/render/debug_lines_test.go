package render

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestDebugLinesAge(t *testing.T) {
	d := NewDebugLines()
	red := color.RGBA{R: 255, A: 255}
	d.Line(cp.Vector{}, cp.Vector{X: 1}, 0.5, red)
	d.Line(cp.Vector{}, cp.Vector{Y: 1}, 1.0, red)
	d.Line(cp.Vector{}, cp.Vector{Y: 1}, 0, red)

	if d.Len() != 2 {
		t.Fatalf("expected zero-duration line to be dropped, got %d lines", d.Len())
	}

	steps := []struct {
		dt   float64
		want int
	}{
		{0, 2},
		{0.25, 2},
		{0.25, 1},
		{0.4, 1},
		{0.2, 0},
	}
	for i, s := range steps {
		d.Age(s.dt)
		if d.Len() != s.want {
			t.Fatalf("step %d: expected %d lines, got %d", i, s.want, d.Len())
		}
	}
}

func TestDebugLinesGradientDefaults(t *testing.T) {
	d := NewDebugLines()
	d.Gradient(cp.Vector{}, cp.Vector{X: 1}, 1, nil, nil)
	l := d.Lines()[0]
	if l.StartTint == nil || l.EndTint == nil {
		t.Fatalf("expected nil tints to default, got %+v", l)
	}
}

func TestCross(t *testing.T) {
	d := NewDebugLines()
	Cross(d, cp.Vector{X: 10, Y: -10}, 15, color.White)

	lines := d.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	wantStarts := []cp.Vector{{X: -5, Y: -25}, {X: 25, Y: -25}}
	wantEnds := []cp.Vector{{X: 25, Y: 5}, {X: -5, Y: 5}}
	for i, l := range lines {
		if l.Start != wantStarts[i] || l.End != wantEnds[i] {
			t.Fatalf("line %d: got %v-%v, want %v-%v", i, l.Start, l.End, wantStarts[i], wantEnds[i])
		}
	}
	if lines[0].Remaining != crossPrimaryDuration || lines[1].Remaining != crossSecondaryDuration {
		t.Fatalf("unexpected durations %v, %v", lines[0].Remaining, lines[1].Remaining)
	}
}
