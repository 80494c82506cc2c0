package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pong/game"
	"pong/menu"
)

var controlKeys = map[game.Control][]ebiten.Key{
	game.ControlUp1:         {ebiten.KeyW},
	game.ControlDown1:       {ebiten.KeyS},
	game.ControlUp2:         {ebiten.KeyArrowUp},
	game.ControlDown2:       {ebiten.KeyArrowDown},
	game.ControlPauseToggle: {ebiten.KeyEscape, ebiten.KeyP, ebiten.KeySpace},
}

// keyboardHeld reports whether any key bound to c is down
func keyboardHeld(c game.Control) bool {
	for _, k := range controlKeys[c] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// commandKeys map key presses to menu commands. The pause keys are read
// through game.ControlPauseToggle instead.
var commandKeys = []struct {
	key ebiten.Key
	cmd menu.Command
}{
	{ebiten.KeyArrowUp, menu.CommandUp},
	{ebiten.KeyArrowDown, menu.CommandDown},
	{ebiten.KeyArrowLeft, menu.CommandLeft},
	{ebiten.KeyArrowRight, menu.CommandRight},
	{ebiten.KeyEnter, menu.CommandSelect},
	{ebiten.KeyNumpadEnter, menu.CommandSelect},
	{ebiten.KeyBackspace, menu.CommandBack},
	{ebiten.KeyQ, menu.CommandBack},
	{ebiten.KeyDigit1, menu.CommandSinglePlayer},
	{ebiten.KeyDigit2, menu.CommandTwoPlayer},
	{ebiten.KeyI, menu.CommandInstructions},
	{ebiten.KeyC, menu.CommandCustomize},
}

// handleInput processes key presses for fullscreen, debug, quitting and
// the menu. Held paddle keys are read by the match through a.input.
func (a *App) handleInput() {
	a.input.Capture(keyboardHeld)

	// Handle Alt+Enter to toggle fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		return
	}

	// F1 toggles the debug overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.debug.Toggle()
	}

	screen := a.menu.Screen()
	if screen == menu.ScreenMain && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.quit = true
		return
	}

	if a.input.JustPressed(game.ControlPauseToggle) {
		a.menu.Handle(pauseCommand(screen))
		return
	}

	for _, ck := range commandKeys {
		if screen == menu.ScreenPlaying && (ck.key == ebiten.KeyArrowUp || ck.key == ebiten.KeyArrowDown) {
			continue
		}
		if inpututil.IsKeyJustPressed(ck.key) {
			a.menu.Handle(ck.cmd)
			// one command per frame
			return
		}
	}
}

// pauseCommand is what a pause key does on screen: it pauses a match and
// goes back everywhere else
func pauseCommand(screen menu.Screen) menu.Command {
	if screen == menu.ScreenPlaying {
		return menu.CommandPauseToggle
	}
	return menu.CommandBack
}
