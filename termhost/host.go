package termhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/colornames"

	"pong/game"
	"pong/menu"
)

// DefaultHoldFrames is how long a key press counts as held. It bridges the
// gap between the first press and the terminal's auto-repeat.
const DefaultHoldFrames = 8

// Host wires a menu and its match to a tcell screen
type Host struct {
	screen    tcell.Screen
	menu      *menu.Menu
	keys      *HeldKeys
	canvas    *Canvas
	scheduler *game.Scheduler
}

// NewHost creates a host drawing on screen. The screen must already be
// initialized. The host never logs, since the screen owns the terminal.
func NewHost(screen tcell.Screen, m *menu.Menu) *Host {
	cfg := m.Match().Config()
	h := &Host{
		screen: screen,
		menu:   m,
		keys:   NewHeldKeys(DefaultHoldFrames),
		canvas: NewCanvas(screen, cfg.FieldWidth, cfg.FieldHeight),
	}
	h.scheduler = game.NewScheduler(m.Match(), h.keys, h.canvas)
	h.scheduler.AfterFrame = h.afterFrame
	return h
}

// Keys exposes the held key tracker
func (h *Host) Keys() *HeldKeys { return h.keys }

// Menu returns the menu driven by the host
func (h *Host) Menu() *menu.Menu { return h.menu }

// Stats returns how many frames and ticks have run
func (h *Host) Stats() (frames, ticks uint64) {
	return h.scheduler.Stats()
}

// Run processes events and frames until ctx is done or the user quits
func (h *Host) Run(ctx context.Context, interval time.Duration) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// Frame advances one host frame
func (h *Host) Frame() {
	h.scheduler.Step()
	h.keys.Advance()
}

// HandleEvent applies a tcell event and reports whether the host should quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		return h.handleKey(ev)
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC || (ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c') {
		return true
	}
	screen := h.menu.Screen()

	if screen == menu.ScreenPlaying {
		if c, ok := playControl(ev); ok {
			h.keys.Press(c)
			return false
		}
	} else if screen == menu.ScreenMain && ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
		return true
	}

	cmd := command(ev, screen)
	h.menu.Handle(cmd)
	if cmd == menu.CommandBack && h.menu.Screen() == menu.ScreenMain {
		h.keys.Release()
	}
	return false
}

// playControl maps a key to a paddle control while a match is on screen
func playControl(ev *tcell.EventKey) (game.Control, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.ControlUp2, true
	case tcell.KeyDown:
		return game.ControlDown2, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.ControlUp1, true
		case 's', 'S':
			return game.ControlDown1, true
		}
	}
	return "", false
}

// command maps a key to a menu command for the given screen
func command(ev *tcell.EventKey, screen menu.Screen) menu.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return menu.CommandUp
	case tcell.KeyDown:
		return menu.CommandDown
	case tcell.KeyLeft:
		return menu.CommandLeft
	case tcell.KeyRight:
		return menu.CommandRight
	case tcell.KeyEnter:
		return menu.CommandSelect
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return menu.CommandBack
	case tcell.KeyEscape:
		if screen == menu.ScreenPlaying {
			return menu.CommandPauseToggle
		}
		return menu.CommandBack
	case tcell.KeyRune:
		switch ev.Rune() {
		case '1':
			return menu.CommandSinglePlayer
		case '2':
			return menu.CommandTwoPlayer
		case 'i', 'I':
			return menu.CommandInstructions
		case 'c', 'C':
			return menu.CommandCustomize
		case 'p', 'P', ' ':
			if screen == menu.ScreenPlaying {
				return menu.CommandPauseToggle
			}
		case 'q', 'Q':
			return menu.CommandBack
		}
	}
	return menu.CommandNone
}

// afterFrame draws the overlays on top of the field and presents the frame.
// The field itself is only repainted when a tick runs, so a paused match
// keeps its last picture under the overlay.
func (h *Host) afterFrame(ticked bool) {
	match := h.menu.Match()
	if !ticked && !match.Paused() {
		h.canvas.ClearAndFill(match.Colors().Background)
	}

	switch h.menu.Screen() {
	case menu.ScreenMain:
		h.drawMain()
	case menu.ScreenInstructions:
		h.drawLines(menu.Instructions, "Enter or Esc to go back")
	case menu.ScreenCustomize:
		h.drawCustomize()
	case menu.ScreenPlaying:
		if match.Paused() {
			h.drawCentered([]string{
				"PAUSED",
				"",
				"Esc or Enter: resume",
				"q: return to menu",
			})
		}
	}
	if h.menu.ScoreVisible() {
		h.drawStatus(match)
	}
	h.screen.Show()
}

func (h *Host) drawStatus(match *game.Match) {
	w, _ := h.screen.Size()
	style := tcell.StyleDefault.
		Background(tcell.FromImageColor(colornames.Black)).
		Foreground(tcell.FromImageColor(colornames.White))
	for x := range w {
		h.screen.SetContent(x, 0, ' ', nil, style)
	}
	score := match.ScoreText()
	h.drawText((w-len(score))/2, 0, score, style)
	h.drawText(1, 0, match.Mode().String(), style)
}

func (h *Host) drawMain() {
	lines := []string{"PONG", ""}
	for i, item := range menu.MainItems {
		prefix := "  "
		if i == h.menu.Cursor() {
			prefix = "> "
		}
		lines = append(lines, prefix+item.Label)
	}
	lines = append(lines, "", "1/2: start  i: help  c: colors  q: quit")
	h.drawCentered(lines)
}

func (h *Host) drawCustomize() {
	custom := h.menu.Customization()
	lines := []string{"Customize", ""}
	for _, f := range []menu.Field{menu.FieldPaddle, menu.FieldBall, menu.FieldBackground} {
		_, name := custom.Value(f)
		prefix := "  "
		if f == custom.Selected() {
			prefix = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-10s < %s >", prefix, f, name))
	}
	h.drawLines(lines, "Left/Right: change  Esc: back")
}

func (h *Host) drawLines(lines []string, footer string) {
	h.drawCentered(append(append([]string{}, lines...), "", footer))
}

func (h *Host) drawCentered(lines []string) {
	w, hgt := h.screen.Size()
	style := tcell.StyleDefault.
		Background(tcell.FromImageColor(h.menu.Match().Colors().Background)).
		Foreground(tcell.FromImageColor(colornames.White))
	top := (hgt - len(lines)) / 2
	for i, line := range lines {
		h.drawText((w-len(line))/2, top+i, line, style)
	}
}

func (h *Host) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}
