package main

import (
	"errors"
	"flag"
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tinytank/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tuningPath := flag.String("tuning", "", "tuning yaml to load instead of prefabs/"+prefabs.TuningFile)
	pilot := flag.String("autopilot", "", "tengo script in prefabs/scripts that plays instead of the keyboard and mouse")
	watch := flag.Bool("watch", false, "reload tuning and scripts when files under prefabs/ change")
	flag.Parse()

	log.Println(runtime.GOOS)

	tuning, err := loadTuning(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(tuning.Window.Width, tuning.Window.Height)
	ebiten.SetWindowTitle(tuning.Window.Title)
	ebiten.SetVsyncEnabled(true)
	// Update runs once per rendered frame; the simulation does its own fixed stepping.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	game, err := NewGame(GameOptions{
		Tuning:     tuning,
		TuningPath: *tuningPath,
		Debug:      *debug,
		Autopilot:  *pilot,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func loadTuning(path string) (prefabs.TuningSpec, error) {
	if path == "" {
		return prefabs.LoadTuning()
	}
	return prefabs.LoadTuningFile(path)
}
