package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
	"github.com/milk9111/tinytank/prefabs"
	"golang.org/x/image/colornames"
)

const (
	playerLayer = 1
	turretLayer = 2
)

// NewPlayer spawns the player vehicle at the origin together with its turret.
// On error nothing is left in the world.
func NewPlayer(w *ecs.World, spec prefabs.TuningSpec) (player, turret ecs.Entity, err error) {
	player, err = spawn(w,
		with(w, "player: add tag", component.PlayerTagComponent, component.PlayerTag{}),
		with(w, "player: add transform", component.TransformComponent, component.Transform{}),
		with(w, "player: add velocity", component.VelocityComponent, component.Velocity{}),
		with(w, "player: add shape", component.ShapeComponent, component.Shape{
			Kind:         component.ShapeCircle,
			Radius:       spec.Player.Radius,
			Sides:        spec.Player.Sides,
			Fill:         spec.Player.Fill.Or(colornames.Cornflowerblue),
			Outline:      spec.Player.Outline.Or(colornames.Black),
			OutlineWidth: spec.Player.OutlineWidth,
			Layer:        playerLayer,
		}),
	)
	if err != nil {
		return 0, 0, err
	}

	turret, err = NewTurret(w, player, spec.Turret)
	if err != nil {
		w.DestroyEntity(player)
		return 0, 0, err
	}
	return player, turret, nil
}

// NewTurret attaches the turret marker to parent. It has no simulation state
// of its own and follows the parent's rotation.
func NewTurret(w *ecs.World, parent ecs.Entity, spec prefabs.TurretSpec) (ecs.Entity, error) {
	if !w.IsAlive(parent) {
		return 0, fmt.Errorf("turret: parent %s: %w", parent, component.ErrEntityNotAlive)
	}
	return spawn(w,
		with(w, "turret: add tag", component.TurretTagComponent, component.TurretTag{}),
		with(w, "turret: add parent", component.ParentComponent, component.Parent{
			Entity: uint64(parent),
			Offset: cp.Vector{X: spec.OffsetX, Y: spec.OffsetY},
		}),
		with(w, "turret: add transform", component.TransformComponent, component.Transform{}),
		with(w, "turret: add shape", component.ShapeComponent, component.Shape{
			Kind:   component.ShapeRect,
			Width:  spec.Width,
			Height: spec.Height,
			Fill:   spec.Fill.Or(colornames.Black),
			Layer:  turretLayer,
		}),
	)
}
