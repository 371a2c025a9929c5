// Command replay runs the simulation without a window, driven by an autopilot
// script and irregular frame times, and reports what happened.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/milk9111/tinytank/autopilot"
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/render"
	"github.com/milk9111/tinytank/input"
	"github.com/milk9111/tinytank/prefabs"
	"github.com/milk9111/tinytank/sim"
)

func main() {
	script := flag.String("script", autopilot.DefaultScript, "tengo script in prefabs/scripts")
	tuningPath := flag.String("tuning", "", "tuning yaml to load instead of prefabs/"+prefabs.TuningFile)
	frames := flag.Int("frames", 600, "number of rendered frames to simulate")
	fps := flag.Float64("fps", 60, "nominal rendered frames per second")
	jitter := flag.Float64("jitter", 0.5, "frame time jitter as a fraction of the nominal frame time")
	seed := flag.Int64("seed", 1, "random seed for frame time jitter")
	verbose := flag.Bool("v", false, "log every click")
	flag.Parse()

	var (
		tuning prefabs.TuningSpec
		err    error
	)
	if *tuningPath == "" {
		tuning, err = prefabs.LoadTuning()
	} else {
		tuning, err = prefabs.LoadTuningFile(*tuningPath)
	}
	if err != nil {
		log.Fatal(err)
	}

	pilot, err := autopilot.Load(*script)
	if err != nil {
		log.Fatal(err)
	}

	s, err := sim.New(tuning, input.DefaultBindings())
	if err != nil {
		log.Fatal(err)
	}
	s.SetVerbose(*verbose)

	stats, err := run(context.Background(), s, pilot, runConfig{
		Frames: *frames,
		FPS:    *fps,
		Jitter: *jitter,
		Rand:   rand.New(rand.NewSource(*seed)),
		Width:  float64(tuning.Window.Width),
		Height: float64(tuning.Window.Height),
	})
	if err != nil {
		log.Fatal(err)
	}

	player := s.PlayerTransform()
	log.Printf("replay: %d frames, %v simulated, %d fixed ticks (%d expected)",
		stats.Frames, stats.Elapsed, stats.Ticks, stats.ExpectedTicks(tuning.Simulation.TickRate))
	log.Printf("replay: %d shots, %d culled, %d live, peak %d", stats.Spawned, stats.Culled, s.Projectiles(), stats.PeakLive)
	log.Printf("replay: player at (%.2f, %.2f) facing %.3f rad", player.Position.X, player.Position.Y, player.Rotation)
}

type runConfig struct {
	Frames int
	FPS    float64
	Jitter float64
	Rand   *rand.Rand
	Width  float64
	Height float64
}

type runStats struct {
	Frames   int
	Elapsed  time.Duration
	Ticks    int
	Spawned  int
	Culled   int
	PeakLive int
}

func (r runStats) ExpectedTicks(tickRate int) int64 {
	return int64(r.Elapsed) * int64(tickRate) / int64(time.Second)
}

func run(ctx context.Context, s *sim.Simulation, pilot *autopilot.Pilot, cfg runConfig) (runStats, error) {
	var stats runStats
	lines := render.NewDebugLines()
	nominal := time.Duration(float64(time.Second) / cfg.FPS)

	for i := 0; i < cfg.Frames; i++ {
		elapsed := nominal
		if cfg.Rand != nil && cfg.Jitter > 0 {
			scale := 1 + cfg.Jitter*(2*cfg.Rand.Float64()-1)
			elapsed = time.Duration(float64(nominal) * scale)
		}

		window := input.Window{Width: cfg.Width, Height: cfg.Height}
		snap, window, err := pilot.Next(ctx, s.PlayerTransform().Position, window)
		if err != nil {
			return stats, err
		}

		before, shots := s.Projectiles(), s.Shots()

		lines.Age(elapsed.Seconds())
		stats.Ticks += s.Frame(&ecs.Frame{Input: snap, Window: window, Debug: lines}, elapsed)

		after := s.Projectiles()
		spawned := int(s.Shots() - shots)
		stats.Spawned += spawned
		stats.Culled += before + spawned - after
		if after > stats.PeakLive {
			stats.PeakLive = after
		}
		stats.Frames++
		stats.Elapsed += elapsed
	}
	return stats, nil
}
