// Command pong plays Pong in a window
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"pong/settings"
)

func main() {
	s, err := settings.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	logger, closeLog, err := s.OpenLog(os.Stderr)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	m, err := s.NewMenu(context.Background(), logger)
	if err != nil {
		log.Fatalf("Failed to set up match: %v", err)
	}
	app, err := NewApp(s, m, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	cfg := m.Match().Config()
	ebiten.SetWindowSize(int(cfg.FieldWidth*s.Scale), int(cfg.FieldHeight*s.Scale))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(s.TPS)

	err = ebiten.RunGame(app)
	app.Close()
	if err != nil {
		log.Fatal(err)
	}
}
