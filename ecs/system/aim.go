package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/component"
	"github.com/milk9111/tinytank/ecs/entity"
	"github.com/milk9111/tinytank/ecs/render"
	"github.com/milk9111/tinytank/input"
	"github.com/milk9111/tinytank/prefabs"
	"golang.org/x/image/colornames"
)

// AimSystem turns every player towards the cursor each rendered frame and
// fires a projectile on a fresh left click.
type AimSystem struct {
	Projectile prefabs.ProjectileSpec
	Debug      prefabs.DebugSpec
	Verbose    bool

	// Fired counts projectiles spawned since creation.
	Fired  uint64
	capped bool
}

func NewAimSystem(projectile prefabs.ProjectileSpec, debug prefabs.DebugSpec) *AimSystem {
	return &AimSystem{Projectile: projectile, Debug: debug}
}

func (a *AimSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil || f == nil {
		return
	}

	cursor, ok := f.Window.CursorWorld()
	if !ok {
		return
	}
	fire := f.Input.MouseJustPressed(input.MouseButtonLeft)

	for _, player := range w.Query(component.PlayerTagComponent.ID(), component.TransformComponent.ID()) {
		transform, ok := ecs.Get(w, player, component.TransformComponent)
		if !ok {
			continue
		}
		diff := cursor.Sub(transform.Position)
		transform.Rotation = math.Atan2(diff.Y, diff.X)
		if !fire {
			continue
		}

		render.Cross(f.Debug, cursor, a.Debug.CrossSize, a.Debug.CrossColor.Or(colornames.Red))
		if a.Verbose {
			log.Printf("aim: cursor:%v translation:%v", f.Window.Cursor, transform.Position)
		}

		dir, ok := aimDirection(diff)
		if !ok {
			continue
		}
		if a.atCapacity(w) {
			continue
		}
		if _, err := entity.NewProjectile(w, transform.Position, dir, a.Projectile); err != nil {
			log.Printf("aim: spawn projectile: %v", err)
			continue
		}
		a.Fired++
	}
}

// aimDirection normalizes diff. A zero-length aim has no direction.
func aimDirection(diff cp.Vector) (cp.Vector, bool) {
	length := diff.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return cp.Vector{}, false
	}
	return cp.Vector{X: diff.X / length, Y: diff.Y / length}, true
}

func (a *AimSystem) atCapacity(w *ecs.World) bool {
	if a.Projectile.MaxLive <= 0 {
		return false
	}
	live := ecs.Count(w, component.ProjectileComponent)
	if live < a.Projectile.MaxLive {
		a.capped = false
		return false
	}
	if !a.capped {
		log.Printf("aim: %d live projectiles, skipping spawns until some are culled", live)
		a.capped = true
	}
	return true
}
