// Command pongterm plays Pong in a terminal
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"pong/settings"
	"pong/termhost"
)

func main() {
	s, err := settings.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The screen owns the terminal, so the log is dropped unless -log-file is set
	logger, closeLog, err := s.OpenLog(io.Discard)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	m, err := s.NewMenu(ctx, logger)
	if err != nil {
		log.Fatalf("Failed to set up match: %v", err)
	}
	if s.AIScript != "" {
		logger.Printf("Loaded opponent script %s", s.AIScript)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	host := termhost.NewHost(screen, m)
	err = host.Run(ctx, s.FrameInterval())
	screen.Fini()

	frames, ticks := host.Stats()
	logger.Printf("quit after %d frames, %d ticks", frames, ticks)

	if err != nil && !errors.Is(err, context.Canceled) {
		closeLog()
		log.Fatal(err)
	}
}
