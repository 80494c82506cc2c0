package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"pong/game"
	"pong/menu"
	"pong/settings"
)

// App adapts a menu and its match to ebiten. Ticks run in Update onto an
// offscreen field image; Draw composes the field with the UI.
type App struct {
	menu      *menu.Menu
	field     *ebiten.Image
	scheduler *game.Scheduler
	input     *game.InputState
	profiler  *game.Profiler // nil unless a profile dir is configured
	debug     game.DebugState
	title     *ebiten.Image
	face      text.Face
	logger    *log.Logger
	quit      bool
}

// NewApp creates the ebiten game for m
func NewApp(s settings.Settings, m *menu.Menu, logger *log.Logger) (*App, error) {
	cfg := m.Match().Config()
	a := &App{
		menu:   m,
		field:  ebiten.NewImage(int(cfg.FieldWidth), int(cfg.FieldHeight)),
		input:  game.NewInputState(),
		face:   newFace(),
		logger: logger,
	}
	a.scheduler = game.NewScheduler(m.Match(), a.input, imageCanvas{dst: a.field})

	title, err := loadTitle()
	if err != nil {
		return nil, fmt.Errorf("load title sprite: %w", err)
	}
	a.title = title

	if s.ProfileDir != "" {
		p, err := game.NewProfiler(s.ProfileDir, s.TPS, logger)
		if err != nil {
			return nil, err
		}
		a.profiler = p
	}
	return a, nil
}

// Update handles input and dispatches at most one tick
func (a *App) Update() error {
	a.handleInput()
	if a.quit {
		return ebiten.Termination
	}

	a.scheduler.Step()

	if a.profiler != nil {
		a.profiler.Observe(ebiten.ActualTPS(), time.Now(), a.menu.Match().Snapshot())
	}
	return nil
}

// Draw renders the current screen
func (a *App) Draw(screen *ebiten.Image) {
	switch a.menu.Screen() {
	case menu.ScreenPlaying:
		screen.DrawImage(a.field, nil)
		if a.menu.Match().Paused() {
			a.drawPause(screen)
		}
	case menu.ScreenInstructions:
		screen.Fill(a.menu.Customization().Colors().Background)
		a.drawInstructions(screen)
	case menu.ScreenCustomize:
		screen.Fill(a.menu.Customization().Colors().Background)
		a.drawCustomize(screen)
	default:
		screen.Fill(a.menu.Customization().Colors().Background)
		a.drawMain(screen)
	}

	if a.menu.ScoreVisible() {
		a.drawScore(screen)
	}
	if a.debug.ShowOverlay {
		a.drawDebug(screen)
	}
}

// Layout keeps the logical screen at the field size and lets ebiten scale it
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := a.field.Bounds()
	return b.Dx(), b.Dy()
}

// Close waits for background work to finish
func (a *App) Close() {
	if a.profiler != nil {
		a.profiler.Wait()
	}
	frames, ticks := a.scheduler.Stats()
	a.logger.Printf("exiting after %d frames, %d ticks", frames, ticks)
}
