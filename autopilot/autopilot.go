// Package autopilot drives the game from a Tengo script instead of a human,
// for the attract mode and for headless replays.
package autopilot

import (
	"context"
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tinytank/input"
	"github.com/milk9111/tinytank/prefabs"
)

// DefaultScript is the pilot shipped in prefabs/scripts.
const DefaultScript = "autopilot.tengo"

var ErrUnknownKey = errors.New("autopilot: unknown key")

// Pilot runs a compiled script once per frame and turns its outputs into
// the same snapshots a human player would produce.
type Pilot struct {
	name     string
	compiled *tengo.Compiled
	tracker  input.Tracker
	frame    int
}

// Load compiles a script from prefabs/scripts, preferring the on-disk copy.
func Load(name string) (*Pilot, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("autopilot: load %s: %w", name, err)
	}
	p, err := Compile(name, src)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Compile builds a pilot from script source.
func Compile(name string, src []byte) (*Pilot, error) {
	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("player_x", 0.0)
	_ = script.Add("player_y", 0.0)
	_ = script.Add("width", 0.0)
	_ = script.Add("height", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %s: %w", name, err)
	}
	return &Pilot{name: name, compiled: compiled}, nil
}

func (p *Pilot) Name() string {
	return p.name
}

// Frame returns the number of frames produced so far.
func (p *Pilot) Frame() int {
	return p.frame
}

// Next runs the script for one frame. window supplies the current size; the
// returned window carries the scripted cursor.
func (p *Pilot) Next(ctx context.Context, player cp.Vector, window input.Window) (input.Snapshot, input.Window, error) {
	vars := map[string]any{
		"frame":    p.frame,
		"player_x": player.X,
		"player_y": player.Y,
		"width":    window.Width,
		"height":   window.Height,
	}
	for name, v := range vars {
		if err := p.compiled.Set(name, v); err != nil {
			return input.Snapshot{}, window, fmt.Errorf("autopilot: %s: set %s: %w", p.name, name, err)
		}
	}
	if err := p.compiled.RunContext(ctx); err != nil {
		return input.Snapshot{}, window, fmt.Errorf("autopilot: %s: frame %d: %w", p.name, p.frame, err)
	}
	p.frame++

	var held input.Held
	if v := p.compiled.Get("keys"); !v.IsUndefined() {
		for _, raw := range v.Array() {
			name, _ := raw.(string)
			k, ok := input.KeyByName(name)
			if !ok {
				return input.Snapshot{}, window, fmt.Errorf("%w: %q", ErrUnknownKey, name)
			}
			held.Keys = append(held.Keys, k)
		}
	}
	if v := p.compiled.Get("fire"); !v.IsUndefined() && v.Bool() {
		held.Mouse = append(held.Mouse, input.MouseButtonLeft)
	}

	window.CursorInside = true
	if v := p.compiled.Get("cursor"); !v.IsUndefined() {
		window.CursorInside = v.Bool()
	}
	aim := cp.Vector{X: p.compiled.Get("aim_x").Float(), Y: p.compiled.Get("aim_y").Float()}
	window.Cursor = aim.Add(cp.Vector{X: window.Width / 2, Y: window.Height / 2})

	return p.tracker.Next(held), window, nil
}
