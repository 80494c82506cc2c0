package termhost

import "pong/game"

// HeldKeys turns terminal key presses into held intents. Terminals report
// presses and auto-repeats but never releases, so a press counts as held
// for a number of frames and each repeat extends it.
type HeldKeys struct {
	hold    uint64
	frame   uint64
	expires map[game.Control]uint64
}

// NewHeldKeys creates a tracker where a press stays held for hold frames
func NewHeldKeys(hold int) *HeldKeys {
	if hold < 1 {
		hold = 1
	}
	return &HeldKeys{
		hold:    uint64(hold),
		expires: make(map[game.Control]uint64),
	}
}

// Press marks c as held from now for the hold window
func (k *HeldKeys) Press(c game.Control) {
	k.expires[c] = k.frame + k.hold
}

// Advance moves to the next frame
func (k *HeldKeys) Advance() {
	k.frame++
}

// Held implements game.InputProvider
func (k *HeldKeys) Held(c game.Control) bool {
	return k.frame < k.expires[c]
}

// Release drops every held key
func (k *HeldKeys) Release() {
	clear(k.expires)
}
