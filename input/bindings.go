package input

import "github.com/jakecoffman/cp"

// Binding pairs a primary and an alternate key for one action.
type Binding struct {
	Primary   Key
	Alternate Key
}

func (b Binding) Held(s Snapshot) bool {
	return s.Held(b.Primary) || s.Held(b.Alternate)
}

// Bindings maps the four movement directions to keys.
type Bindings struct {
	Left  Binding
	Right Binding
	Down  Binding
	Up    Binding
}

func DefaultBindings() Bindings {
	return Bindings{
		Left:  Binding{Primary: KeyArrowLeft, Alternate: KeyA},
		Right: Binding{Primary: KeyArrowRight, Alternate: KeyD},
		Down:  Binding{Primary: KeyArrowDown, Alternate: KeyS},
		Up:    Binding{Primary: KeyArrowUp, Alternate: KeyW},
	}
}

// Thrust returns the per-axis acceleration requested by the held keys,
// scaled by accel. Opposite directions cancel.
func (b Bindings) Thrust(s Snapshot, accel float64) cp.Vector {
	var v cp.Vector
	if b.Left.Held(s) {
		v.X -= accel
	}
	if b.Right.Held(s) {
		v.X += accel
	}
	if b.Down.Held(s) {
		v.Y -= accel
	}
	if b.Up.Held(s) {
		v.Y += accel
	}
	return v
}
