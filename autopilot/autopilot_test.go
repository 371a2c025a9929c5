package autopilot

import (
	"context"
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/input"
)

var window = input.Window{Width: 800, Height: 600}

func TestPilotOutputs(t *testing.T) {
	src := []byte(`
keys := ["left", "w"]
fire := true
aim_x := 10.0
aim_y := -20.0
`)
	p, err := Compile("inline", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	s, win, err := p.Next(context.Background(), cp.Vector{}, window)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !s.Held(input.KeyArrowLeft) || !s.Held(input.KeyW) || s.Held(input.KeyD) {
		t.Fatalf("unexpected keys in snapshot")
	}
	if !s.MouseJustPressed(input.MouseButtonLeft) {
		t.Fatalf("expected a click on the first frame")
	}
	got, ok := win.CursorWorld()
	if !ok || got != (cp.Vector{X: 10, Y: -20}) {
		t.Fatalf("cursor = %v ok=%v, want (10, -20)", got, ok)
	}

	s, _, err = p.Next(context.Background(), cp.Vector{}, window)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.MouseJustPressed(input.MouseButtonLeft) || !s.MouseHeld(input.MouseButtonLeft) {
		t.Fatalf("holding fire must not click again")
	}
	if p.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", p.Frame())
	}
}

func TestPilotSeesInputs(t *testing.T) {
	src := []byte(`
fire := frame == 1 && player_x > 5.0 && width == 800.0
`)
	p, err := Compile("inline", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	player := cp.Vector{X: 6}
	for i := 0; i < 2; i++ {
		s, _, err := p.Next(context.Background(), player, window)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if got, want := s.MouseJustPressed(input.MouseButtonLeft), i == 1; got != want {
			t.Fatalf("frame %d: click = %v, want %v", i, got, want)
		}
	}
}

func TestPilotCursorOutside(t *testing.T) {
	p, err := Compile("inline", []byte(`cursor := false`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	_, win, err := p.Next(context.Background(), cp.Vector{}, window)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if _, ok := win.CursorWorld(); ok {
		t.Fatalf("expected cursor outside the window")
	}
}

func TestPilotUnknownKey(t *testing.T) {
	p, err := Compile("inline", []byte(`keys := ["space"]`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, _, err := p.Next(context.Background(), cp.Vector{}, window); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("broken", []byte(`keys := [`)); err == nil {
		t.Fatalf("expected a compile error")
	}
}

func TestDefaultScript(t *testing.T) {
	p, err := Load(DefaultScript)
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	clicks := 0
	for i := 0; i < 240; i++ {
		s, win, err := p.Next(context.Background(), cp.Vector{}, window)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if _, ok := win.CursorWorld(); !ok {
			t.Fatalf("frame %d: default pilot hid the cursor", i)
		}
		if s.MouseJustPressed(input.MouseButtonLeft) {
			clicks++
		}
	}
	if clicks != 4 {
		t.Fatalf("clicks = %d, want 4", clicks)
	}
}
