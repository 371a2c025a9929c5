package input

import "github.com/jakecoffman/cp"

// Key is an engine independent keyboard key. Hosts map their own key codes
// onto these.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyA
	KeyD
	KeyS
	KeyW
	KeyF
	KeyF11
	KeySuper
	KeyControl

	keyCount
)

var keyNames = [...]string{
	KeyUnknown:    "unknown",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyA:          "a",
	KeyD:          "d",
	KeyS:          "s",
	KeyW:          "w",
	KeyF:          "f",
	KeyF11:        "f11",
	KeySuper:      "super",
	KeyControl:    "control",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return keyNames[KeyUnknown]
}

// KeyByName resolves the lower-case key name used by scripts and configs.
func KeyByName(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name && Key(k) != KeyUnknown {
			return Key(k), true
		}
	}
	return KeyUnknown, false
}

type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight

	mouseButtonCount
)

// Snapshot is the read-only input state for one rendered frame.
type Snapshot struct {
	held        [keyCount]bool
	justPressed [keyCount]bool
	mouseHeld   [mouseButtonCount]bool
	mouseJust   [mouseButtonCount]bool
}

// Held reports whether k is currently down.
func (s Snapshot) Held(k Key) bool {
	return k < keyCount && s.held[k]
}

// JustPressed reports whether k went down this frame.
func (s Snapshot) JustPressed(k Key) bool {
	return k < keyCount && s.justPressed[k]
}

func (s Snapshot) MouseHeld(b MouseButton) bool {
	return b < mouseButtonCount && s.mouseHeld[b]
}

func (s Snapshot) MouseJustPressed(b MouseButton) bool {
	return b < mouseButtonCount && s.mouseJust[b]
}

// SetKey records the state of k. A key that is just pressed is also held.
func (s *Snapshot) SetKey(k Key, held, justPressed bool) {
	if k >= keyCount {
		return
	}
	s.held[k] = held || justPressed
	s.justPressed[k] = justPressed
}

func (s *Snapshot) SetMouse(b MouseButton, held, justPressed bool) {
	if b >= mouseButtonCount {
		return
	}
	s.mouseHeld[b] = held || justPressed
	s.mouseJust[b] = justPressed
}

// Window is the per-frame view of the host window. Cursor is in window pixels
// with the origin at the bottom-left corner, so its y axis matches world space.
type Window struct {
	Width        float64
	Height       float64
	Cursor       cp.Vector
	CursorInside bool
}

// WindowFromScreen builds a Window from a cursor position in screen pixels,
// whose origin is the top-left corner. The cursor counts as inside only while
// it lies within the window.
func WindowFromScreen(width, height, cx, cy int) Window {
	return Window{
		Width:        float64(width),
		Height:       float64(height),
		Cursor:       cp.Vector{X: float64(cx), Y: float64(height - cy)},
		CursorInside: cx >= 0 && cy >= 0 && cx < width && cy < height,
	}
}

// CursorWorld converts the cursor into origin-centred world coordinates.
// ok is false when the cursor is outside the window.
func (w Window) CursorWorld() (cp.Vector, bool) {
	if !w.CursorInside {
		return cp.Vector{}, false
	}
	return w.Cursor.Add(cp.Vector{X: w.Width, Y: w.Height}.Mult(-0.5)), true
}

// Bounds returns the visible world rectangle, centred on the origin.
func (w Window) Bounds() cp.BB {
	return cp.NewBBForExtents(cp.Vector{}, w.Width/2, w.Height/2)
}
