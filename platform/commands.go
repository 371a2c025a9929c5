// Package platform maps platform specific key chords onto process level
// commands. Hosts apply the commands; nothing here touches a window.
package platform

import (
	"runtime"

	"github.com/milk9111/tinytank/input"
)

type Command uint8

const (
	CommandNone Command = 0
	// CommandToggleFullscreen switches between windowed and borderless fullscreen.
	CommandToggleFullscreen Command = 1 << iota
	// CommandExit asks the host to restore windowed mode and quit.
	CommandExit
)

func (c Command) Has(other Command) bool {
	return c&other != 0
}

// Keymap decides which chords map to which commands for one OS.
type Keymap struct {
	OS string
}

// Current returns the keymap for the running OS.
func Current() Keymap {
	return Keymap{OS: runtime.GOOS}
}

// Commands returns the commands triggered by this frame's input.
func (k Keymap) Commands(s input.Snapshot) Command {
	cmd := CommandNone
	switch k.OS {
	case "darwin":
		if s.Held(input.KeySuper) && s.JustPressed(input.KeyW) {
			cmd |= CommandExit
		}
		if s.Held(input.KeySuper) && s.Held(input.KeyControl) && s.JustPressed(input.KeyF) {
			cmd |= CommandToggleFullscreen
		}
	default:
		if s.JustPressed(input.KeyF11) {
			cmd |= CommandToggleFullscreen
		}
	}
	return cmd
}
