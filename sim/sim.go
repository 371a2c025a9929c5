// Package sim assembles the world, the systems and the fixed-timestep
// scheduler into the per-frame simulation the host drives.
package sim

import (
	"fmt"
	"time"

	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
	"github.com/milk9111/tinytank/ecs/entity"
	"github.com/milk9111/tinytank/ecs/system"
	"github.com/milk9111/tinytank/input"
	"github.com/milk9111/tinytank/prefabs"
)

type Simulation struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler

	Player ecs.Entity
	Turret ecs.Entity

	movement   *system.MovementSystem
	projectile *system.ProjectileSystem
	aim        *system.AimSystem
	cull       *system.CullSystem

	tuning prefabs.TuningSpec
}

// New builds a simulation with the player spawned at the origin. Fixed ticks
// run Movement then Projectile advance; every frame then runs Aim then Cull.
func New(tuning prefabs.TuningSpec, bindings input.Bindings) (*Simulation, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	player, turret, err := entity.NewPlayer(w, tuning)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Simulation{
		World:      w,
		Scheduler:  ecs.NewScheduler(tuning.Simulation.TickRate),
		Player:     player,
		Turret:     turret,
		movement:   system.NewMovementSystem(bindings, tuning.Player.Accel, tuning.Player.Damping),
		projectile: system.NewProjectileSystem(tuning.Projectile.Speed),
		aim:        system.NewAimSystem(tuning.Projectile, tuning.Debug),
		cull:       system.NewCullSystem(),
		tuning:     tuning,
	}
	s.Scheduler.AddFixed(s.movement, s.projectile)
	s.Scheduler.AddFrame(s.aim, s.cull)
	return s, nil
}

// Frame advances the simulation by one rendered frame that took elapsed wall
// time and returns the number of fixed ticks run.
func (s *Simulation) Frame(f *ecs.Frame, elapsed time.Duration) int {
	return s.Scheduler.Update(s.World, f, elapsed)
}

// Retune applies new gameplay constants to the running systems. The tick rate
// is fixed for the lifetime of the scheduler; it reports whether the new
// tuning asked for a different one.
func (s *Simulation) Retune(tuning prefabs.TuningSpec) (tickRateChanged bool, err error) {
	if err := tuning.Validate(); err != nil {
		return false, err
	}
	s.movement.Accel = tuning.Player.Accel
	s.movement.Damping = tuning.Player.Damping
	s.projectile.Speed = tuning.Projectile.Speed
	s.aim.Projectile = tuning.Projectile
	s.aim.Debug = tuning.Debug
	tickRateChanged = tuning.Simulation.TickRate != s.Scheduler.TickRate()
	s.tuning = tuning
	return tickRateChanged, nil
}

func (s *Simulation) Tuning() prefabs.TuningSpec {
	return s.tuning
}

// SetVerbose toggles per-click logging.
func (s *Simulation) SetVerbose(v bool) {
	s.aim.Verbose = v
}

// PlayerTransform returns the player's transform by value.
func (s *Simulation) PlayerTransform() component.Transform {
	if t, ok := ecs.Get(s.World, s.Player, component.TransformComponent); ok {
		return *t
	}
	return component.Transform{}
}

// Projectiles returns the number of live projectiles.
func (s *Simulation) Projectiles() int {
	return ecs.Count(s.World, component.ProjectileComponent)
}

// Shots returns the number of projectiles fired so far.
func (s *Simulation) Shots() uint64 {
	return s.aim.Fired
}
