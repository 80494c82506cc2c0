// Package menu drives the screens around a match: the main menu, the
// instructions, color customization and the in-game pause overlay. Hosts
// translate their key events into Commands and draw whatever Screen is
// current.
package menu

import "pong/game"

// Screen is the screen currently shown
type Screen int

const (
	ScreenMain Screen = iota
	ScreenInstructions
	ScreenCustomize
	ScreenPlaying
)

func (s Screen) String() string {
	switch s {
	case ScreenInstructions:
		return "instructions"
	case ScreenCustomize:
		return "customize"
	case ScreenPlaying:
		return "playing"
	}
	return "main"
}

// Command is a host-independent user action
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandSelect
	CommandBack
	CommandPauseToggle
	CommandSinglePlayer
	CommandTwoPlayer
	CommandInstructions
	CommandCustomize
)

// Item is an entry of the main menu
type Item struct {
	Label   string
	Command Command
}

// MainItems are the main menu entries, in display order
var MainItems = []Item{
	{"Single Player", CommandSinglePlayer},
	{"Two Player", CommandTwoPlayer},
	{"Instructions", CommandInstructions},
	{"Customize", CommandCustomize},
}

// Instructions is the controls help text
var Instructions = []string{
	"Controls:",
	"Player 1 (Left): W/S Keys",
	"Player 2 (Right): Up/Down Arrow Keys",
	"Pause: Escape Key",
}

// Menu owns screen navigation and forwards lifecycle commands to the match
type Menu struct {
	match  *game.Match
	custom *Customization
	screen Screen
	cursor int
}

// New creates a menu on the main screen. colors seed the customization.
func New(match *game.Match, colors game.Colors) *Menu {
	return &Menu{
		match:  match,
		custom: NewCustomization(colors),
	}
}

// Screen returns the current screen
func (m *Menu) Screen() Screen { return m.screen }

// Cursor returns the highlighted main menu entry
func (m *Menu) Cursor() int { return m.cursor }

// Customization returns the pending color choices
func (m *Menu) Customization() *Customization { return m.custom }

// Match returns the match driven by this menu
func (m *Menu) Match() *game.Match { return m.match }

// ScoreVisible reports whether the score display should be shown
func (m *Menu) ScoreVisible() bool {
	return m.screen == ScreenPlaying
}

// Handle applies cmd to the current screen
func (m *Menu) Handle(cmd Command) {
	switch m.screen {
	case ScreenMain:
		m.handleMain(cmd)
	case ScreenInstructions:
		if cmd == CommandBack || cmd == CommandSelect {
			m.screen = ScreenMain
		}
	case ScreenCustomize:
		m.handleCustomize(cmd)
	case ScreenPlaying:
		m.handlePlaying(cmd)
	}
}

func (m *Menu) handleMain(cmd Command) {
	switch cmd {
	case CommandUp:
		m.cursor = wrap(m.cursor-1, len(MainItems))
	case CommandDown:
		m.cursor = wrap(m.cursor+1, len(MainItems))
	case CommandSelect:
		m.handleMain(MainItems[m.cursor].Command)
	case CommandSinglePlayer:
		m.start(game.ModeSinglePlayer)
	case CommandTwoPlayer:
		m.start(game.ModeTwoPlayer)
	case CommandInstructions:
		m.screen = ScreenInstructions
	case CommandCustomize:
		m.screen = ScreenCustomize
	}
}

func (m *Menu) handleCustomize(cmd Command) {
	switch cmd {
	case CommandUp:
		m.custom.Select(-1)
	case CommandDown:
		m.custom.Select(1)
	case CommandLeft:
		m.custom.Cycle(-1)
	case CommandRight, CommandSelect:
		m.custom.Cycle(1)
	case CommandBack:
		m.screen = ScreenMain
	}
}

func (m *Menu) handlePlaying(cmd Command) {
	switch cmd {
	case CommandPauseToggle:
		m.match.PauseToggle()
	case CommandSelect:
		m.match.Resume()
	case CommandBack:
		// Back only leaves a paused match, so a stray key cannot end a rally
		if m.match.Paused() {
			m.ReturnToMenu()
		}
	}
}

func (m *Menu) start(mode game.Mode) {
	m.match.Start(mode, m.custom.Colors())
	m.screen = ScreenPlaying
}

// ReturnToMenu stops the match and shows the main menu
func (m *Menu) ReturnToMenu() {
	m.match.ReturnToMenu()
	m.screen = ScreenMain
}
