package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/input"
)

const (
	testAccel   = 0.37
	testDamping = 0.9
	eps         = 1e-9
)

func TestMovementSingleTick(t *testing.T) {
	cases := []struct {
		name string
		in   input.Snapshot
		want cp.Vector
	}{
		{"idle", input.Snapshot{}, cp.Vector{}},
		{"left_arrow", held(input.KeyArrowLeft), cp.Vector{X: -testAccel * testDamping}},
		{"left_alternate", held(input.KeyA), cp.Vector{X: -testAccel * testDamping}},
		{"primary_and_alternate_count_once", held(input.KeyArrowRight, input.KeyD), cp.Vector{X: testAccel * testDamping}},
		{"up_is_positive_y", held(input.KeyW), cp.Vector{Y: testAccel * testDamping}},
		{"down", held(input.KeyArrowDown), cp.Vector{Y: -testAccel * testDamping}},
		{"opposites_cancel", held(input.KeyA, input.KeyD), cp.Vector{}},
		{"diagonal", held(input.KeyD, input.KeyArrowUp), cp.Vector{X: testAccel * testDamping, Y: testAccel * testDamping}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, player := newPlayerWorld(t)
			m := NewMovementSystem(input.DefaultBindings(), testAccel, testDamping)
			m.Update(w, &ecs.Frame{Input: c.in})

			vel := velocityOf(t, w, player)
			pos := transformOf(t, w, player).Position
			if math.Abs(vel.X-c.want.X) > eps || math.Abs(vel.Y-c.want.Y) > eps {
				t.Fatalf("velocity = %v, want %v", vel.Vector, c.want)
			}
			// Position integrates the post-damping velocity.
			if math.Abs(pos.X-c.want.X) > eps || math.Abs(pos.Y-c.want.Y) > eps {
				t.Fatalf("position = %v, want %v", pos, c.want)
			}
		})
	}
}

func TestMovementDampingConvergence(t *testing.T) {
	w, player := newPlayerWorld(t)
	m := NewMovementSystem(input.DefaultBindings(), testAccel, testDamping)

	for i := 0; i < 40; i++ {
		m.Update(w, &ecs.Frame{Input: held(input.KeyD, input.KeyW)})
	}

	start := velocityOf(t, w, player).Length()
	if start == 0 {
		t.Fatalf("expected the player to be moving after thrust")
	}

	prev := start
	for n := 1; n <= 200; n++ {
		m.Update(w, &ecs.Frame{})
		speed := velocityOf(t, w, player).Length()
		if speed >= prev && prev > 0 {
			t.Fatalf("tick %d: speed %v did not decrease from %v", n, speed, prev)
		}
		bound := start*math.Pow(testDamping, float64(n)) + eps
		if speed > bound {
			t.Fatalf("tick %d: speed %v exceeds d^n bound %v", n, speed, bound)
		}
		prev = speed
	}
	if prev > 1e-6 {
		t.Fatalf("expected speed near zero after 200 idle ticks, got %v", prev)
	}
}

func TestMovementTerminalVelocity(t *testing.T) {
	w, player := newPlayerWorld(t)
	m := NewMovementSystem(input.DefaultBindings(), testAccel, testDamping)

	for i := 0; i < 500; i++ {
		m.Update(w, &ecs.Frame{Input: held(input.KeyArrowRight)})
	}

	want := testAccel * testDamping / (1 - testDamping)
	if got := velocityOf(t, w, player).X; math.Abs(got-want) > 1e-6 {
		t.Fatalf("terminal velocity = %v, want %v", got, want)
	}
}

func TestMovementToleratesNoPlayers(t *testing.T) {
	m := NewMovementSystem(input.DefaultBindings(), testAccel, testDamping)
	m.Update(ecs.NewWorld(), &ecs.Frame{Input: held(input.KeyA)})
	m.Update(nil, &ecs.Frame{})
	m.Update(ecs.NewWorld(), nil)
}
