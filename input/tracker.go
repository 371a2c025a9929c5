package input

// Tracker derives edge-triggered just-pressed states from level states
// sampled once per frame. Hosts that already report edges do not need it.
type Tracker struct {
	prevKeys  [keyCount]bool
	prevMouse [mouseButtonCount]bool
}

// Held is a level sample for one frame.
type Held struct {
	Keys  []Key
	Mouse []MouseButton
}

// Next builds the snapshot for the frame described by held.
func (t *Tracker) Next(held Held) Snapshot {
	var keys [keyCount]bool
	for _, k := range held.Keys {
		if k < keyCount {
			keys[k] = true
		}
	}
	var mouse [mouseButtonCount]bool
	for _, b := range held.Mouse {
		if b < mouseButtonCount {
			mouse[b] = true
		}
	}

	var s Snapshot
	for k := range keys {
		s.SetKey(Key(k), keys[k], keys[k] && !t.prevKeys[k])
	}
	for b := range mouse {
		s.SetMouse(MouseButton(b), mouse[b], mouse[b] && !t.prevMouse[b])
	}
	t.prevKeys = keys
	t.prevMouse = mouse
	return s
}
