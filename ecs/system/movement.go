package system

import (
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
	"github.com/milk9111/tinytank/input"
)

// MovementSystem applies keyboard thrust, damping and integration to every
// player once per fixed tick.
type MovementSystem struct {
	Bindings input.Bindings
	// Accel is added to velocity per held direction per tick.
	Accel float64
	// Damping multiplies velocity every tick, after thrust.
	Damping float64
}

func NewMovementSystem(bindings input.Bindings, accel, damping float64) *MovementSystem {
	return &MovementSystem{Bindings: bindings, Accel: accel, Damping: damping}
}

func (m *MovementSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil || f == nil {
		return
	}

	thrust := m.Bindings.Thrust(f.Input, m.Accel)
	for _, e := range w.Query(component.PlayerTagComponent.ID(), component.VelocityComponent.ID(), component.TransformComponent.ID()) {
		vel, ok := ecs.Get(w, e, component.VelocityComponent)
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		vel.Vector = vel.Add(thrust).Mult(m.Damping)
		transform.Position = transform.Position.Add(vel.Vector)
	}
}
