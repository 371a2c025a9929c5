package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tinytank/input"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyArrowLeft:  ebiten.KeyArrowLeft,
	input.KeyArrowRight: ebiten.KeyArrowRight,
	input.KeyArrowUp:    ebiten.KeyArrowUp,
	input.KeyArrowDown:  ebiten.KeyArrowDown,
	input.KeyA:          ebiten.KeyA,
	input.KeyD:          ebiten.KeyD,
	input.KeyS:          ebiten.KeyS,
	input.KeyW:          ebiten.KeyW,
	input.KeyF:          ebiten.KeyF,
	input.KeyF11:        ebiten.KeyF11,
	input.KeySuper:      ebiten.KeyMeta,
	input.KeyControl:    ebiten.KeyControl,
}

var ebitenButtons = map[input.MouseButton]ebiten.MouseButton{
	input.MouseButtonLeft:  ebiten.MouseButtonLeft,
	input.MouseButtonRight: ebiten.MouseButtonRight,
}

// pollInput samples ebiten's keyboard and mouse state for this frame.
func pollInput() input.Snapshot {
	var s input.Snapshot
	for k, ek := range ebitenKeys {
		s.SetKey(k, ebiten.IsKeyPressed(ek), inpututil.IsKeyJustPressed(ek))
	}
	for b, eb := range ebitenButtons {
		s.SetMouse(b, ebiten.IsMouseButtonPressed(eb), inpututil.IsMouseButtonJustPressed(eb))
	}
	return s
}

// pollWindow reports the window size and the cursor with a bottom-left origin.
func pollWindow(width, height int) input.Window {
	cx, cy := ebiten.CursorPosition()
	return input.WindowFromScreen(width, height, cx, cy)
}
