package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/autopilot"
	"github.com/milk9111/tinytank/ecs"
	"github.com/milk9111/tinytank/ecs/render"
	"github.com/milk9111/tinytank/input"
	"github.com/milk9111/tinytank/platform"
	"github.com/milk9111/tinytank/prefabs"
	"github.com/milk9111/tinytank/sim"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type GameOptions struct {
	Tuning     prefabs.TuningSpec
	TuningPath string
	Debug      bool
	Autopilot  string
	Watch      bool
}

type Game struct {
	sim        *sim.Simulation
	debugLines *render.DebugLines
	keymap     platform.Keymap
	pilot      *autopilot.Pilot
	pilotName  string
	watcher    *prefabs.Watcher
	tuningPath string

	debug  bool
	width  int
	height int
	last   time.Time
	clear  color.Color
	hud    ebtext.Face
	pixel  *ebiten.Image
}

func NewGame(opts GameOptions) (*Game, error) {
	s, err := sim.New(opts.Tuning, input.DefaultBindings())
	if err != nil {
		return nil, err
	}
	s.SetVerbose(opts.Debug)

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	g := &Game{
		sim:        s,
		debugLines: render.NewDebugLines(),
		keymap:     platform.Current(),
		tuningPath: opts.TuningPath,
		debug:      opts.Debug,
		width:      opts.Tuning.Window.Width,
		height:     opts.Tuning.Window.Height,
		clear:      opts.Tuning.Window.ClearColor.Or(colornames.Slategray),
		hud:        ebtext.NewGoXFace(basicfont.Face7x13),
		pixel:      pixel,
	}

	if opts.Autopilot != "" {
		pilot, err := autopilot.Load(opts.Autopilot)
		if err != nil {
			return nil, err
		}
		g.pilot = pilot
		g.pilotName = opts.Autopilot
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.drawStartupLines()
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch: close: %v", err)
		}
	}
}

// drawStartupLines leaves a reference axis and two diagonals on screen for
// the first few seconds.
func (g *Game) drawStartupLines() {
	g.debugLines.Line(cp.Vector{X: -400}, cp.Vector{X: 400}, 9.9, colornames.Green)
	g.debugLines.Gradient(cp.Vector{X: -100, Y: 100}, cp.Vector{X: 100, Y: -100}, 6.8, colornames.White, colornames.Pink)
	g.debugLines.Gradient(cp.Vector{X: -100, Y: -100}, cp.Vector{X: 100, Y: 100}, 4.3, colornames.Midnightblue, colornames.Yellowgreen)
}

func (g *Game) Update() error {
	now := time.Now()
	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	g.reload()

	snap := pollInput()
	window := pollWindow(g.width, g.height)

	cmd := g.keymap.Commands(snap)
	if cmd.Has(platform.CommandExit) {
		ebiten.SetFullscreen(false)
		return ebiten.Termination
	}
	if cmd.Has(platform.CommandToggleFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		if g.debug {
			log.Printf("fullscreen: %v", ebiten.IsFullscreen())
		}
	}

	if g.pilot != nil {
		s, w, err := g.pilot.Next(context.Background(), g.sim.PlayerTransform().Position, window)
		if err != nil {
			log.Printf("%v; handing control back to the player", err)
			g.pilot = nil
		} else {
			snap, window = s, w
		}
	}

	g.debugLines.Age(elapsed.Seconds())
	g.sim.Frame(&ecs.Frame{Input: snap, Window: window, Debug: g.debugLines}, elapsed)
	return nil
}

// reload applies tuning and script edits reported by the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("watch: %v", err)
		}
	default:
	}

	for _, change := range g.watcher.Poll() {
		switch change.Kind {
		case prefabs.ChangeTuning:
			tuning, err := loadTuning(g.tuningPath)
			if err != nil {
				log.Printf("tuning: reload %s: %v", change.Path, err)
				continue
			}
			changed, err := g.sim.Retune(tuning)
			if err != nil {
				log.Printf("tuning: reload %s: %v", change.Path, err)
				continue
			}
			if changed {
				log.Printf("tuning: tick_rate changes apply on restart")
			}
			log.Printf("tuning: reloaded %s", change.Path)
		case prefabs.ChangeScript:
			if g.pilotName == "" {
				continue
			}
			pilot, err := autopilot.Load(g.pilotName)
			if err != nil {
				log.Printf("autopilot: reload %s: %v", change.Path, err)
				continue
			}
			g.pilot = pilot
			log.Printf("autopilot: reloaded %s", change.Path)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	w, h := float64(g.width), float64(g.height)
	drawShapes(screen, g.pixel, g.sim.World, w, h)
	drawDebugLines(screen, g.debugLines, w, h)

	if g.debug {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	player := g.sim.PlayerTransform()
	msg := fmt.Sprintf("FPS: %.1f  ticks: %d  projectiles: %d  lines: %d\npos: (%.1f, %.1f)  aim: %.2f rad",
		ebiten.ActualFPS(), g.sim.Scheduler.Ticks(), g.sim.Projectiles(), g.debugLines.Len(),
		player.Position.X, player.Position.Y, player.Rotation)
	if g.pilot != nil {
		msg += "\nautopilot: " + g.pilot.Name()
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, msg, g.hud, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
