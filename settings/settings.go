// Package settings loads host configuration from the environment and
// command-line flags. Flags win over environment variables.
package settings

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"pong/game"
	"pong/menu"
)

// Settings is the host-level configuration. Physics constants are not
// configurable; only colors and host concerns are.
type Settings struct {
	PaddleColor string `env:"PONG_PADDLE_COLOR" envDefault:"white"`
	BallColor   string `env:"PONG_BALL_COLOR"   envDefault:"white"`
	BgColor     string `env:"PONG_BG_COLOR"     envDefault:"#282c34"`

	// Mode starts a match immediately: "", "single" or "two"
	Mode string `env:"PONG_MODE"`

	// Scale multiplies the window size of the graphical host
	Scale float64 `env:"PONG_SCALE" envDefault:"1.5"`

	// TPS is the tick rate. The graphical host uses it as ebiten's TPS,
	// the terminal host as its frame ticker.
	TPS int `env:"PONG_TPS" envDefault:"60"`

	// AIScript is a path or http(s) URL of an opponent script
	AIScript string `env:"PONG_AI_SCRIPT"`

	// ProfileDir enables frame-drop CPU profiles when set
	ProfileDir string `env:"PONG_PROFILE_DIR"`

	// Seed fixes the serve randomness; 0 uses the clock
	Seed int64 `env:"PONG_SEED"`

	// Verbose logs match lifecycle events
	Verbose bool `env:"PONG_VERBOSE"`

	// LogFile receives the log instead of the host's default writer
	LogFile string `env:"PONG_LOG_FILE"`
}

// FromEnv parses the environment
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// RegisterFlags binds flags on fs with the current values as defaults
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&s.PaddleColor, "paddle-color", s.PaddleColor, "paddle color (#rgb, #rrggbb or CSS name)")
	fs.StringVar(&s.BallColor, "ball-color", s.BallColor, "ball color")
	fs.StringVar(&s.BgColor, "bg-color", s.BgColor, "background color")
	fs.StringVar(&s.Mode, "mode", s.Mode, "start immediately in \"single\" or \"two\" player mode")
	fs.Float64Var(&s.Scale, "scale", s.Scale, "window scale")
	fs.IntVar(&s.TPS, "tps", s.TPS, "ticks per second")
	fs.StringVar(&s.AIScript, "ai-script", s.AIScript, "opponent script path or URL")
	fs.StringVar(&s.ProfileDir, "profile-dir", s.ProfileDir, "write CPU profiles here when frames drop")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "random seed for serves (0 = clock)")
	fs.BoolVar(&s.Verbose, "v", s.Verbose, "log match events")
	fs.StringVar(&s.LogFile, "log-file", s.LogFile, "append the log to this file")
}

// OpenLog returns a logger writing to LogFile, or to fallback when no file
// is set. The returned close func must be called once logging is done.
func (s Settings) OpenLog(fallback io.Writer) (*log.Logger, func() error, error) {
	if s.LogFile == "" {
		return log.New(fallback, "pong: ", log.LstdFlags), func() error { return nil }, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "pong: ", log.LstdFlags), f.Close, nil
}

// Load reads the environment and then parses args as flags. A help request
// returns an error matching flag.ErrHelp.
func Load(name string, args []string) (Settings, error) {
	s, err := FromEnv()
	if err != nil {
		return Settings{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	s.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks values that would otherwise fail later
func (s Settings) Validate() error {
	if _, err := s.Colors(); err != nil {
		return err
	}
	if _, err := s.StartMode(); err != nil {
		return err
	}
	if s.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", s.Scale)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", s.TPS)
	}
	return nil
}

// Colors parses the three configured colors
func (s Settings) Colors() (game.Colors, error) {
	var (
		c   game.Colors
		err error
	)
	if c.Paddle, err = game.ParseColor(s.PaddleColor); err != nil {
		return game.Colors{}, fmt.Errorf("paddle color: %w", err)
	}
	if c.Ball, err = game.ParseColor(s.BallColor); err != nil {
		return game.Colors{}, fmt.Errorf("ball color: %w", err)
	}
	if c.Background, err = game.ParseColor(s.BgColor); err != nil {
		return game.Colors{}, fmt.Errorf("background color: %w", err)
	}
	return c, nil
}

// StartMode maps Mode to a game mode; ModeNone means "show the menu"
func (s Settings) StartMode() (game.Mode, error) {
	switch s.Mode {
	case "":
		return game.ModeNone, nil
	case "single", "1":
		return game.ModeSinglePlayer, nil
	case "two", "2":
		return game.ModeTwoPlayer, nil
	}
	return game.ModeNone, fmt.Errorf("unknown mode %q (want single or two)", s.Mode)
}

// FrameInterval is the duration of one tick at TPS
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.TPS)
}

// MatchOptions returns the match options implied by the settings
func (s Settings) MatchOptions() []game.Option {
	var opts []game.Option
	if s.Seed != 0 {
		opts = append(opts, game.WithSeed(s.Seed))
	}
	return opts
}

// NewMenu builds the match and menu a host runs. The opponent script is
// loaded when configured, lifecycle events go to logger when Verbose is
// set, and a configured start mode skips the main menu.
func (s Settings) NewMenu(ctx context.Context, logger *log.Logger) (*menu.Menu, error) {
	colors, err := s.Colors()
	if err != nil {
		return nil, err
	}
	mode, err := s.StartMode()
	if err != nil {
		return nil, err
	}

	cfg := game.DefaultConfig()
	opts := s.MatchOptions()
	if s.Verbose && logger != nil {
		opts = append(opts, game.WithLogger(logger))
	}
	if s.AIScript != "" {
		opp, err := game.LoadScriptOpponent(ctx, s.AIScript, cfg, logger)
		if err != nil {
			return nil, err
		}
		opts = append(opts, game.WithOpponent(opp))
	}

	m := menu.New(game.NewMatch(cfg, opts...), colors)
	switch mode {
	case game.ModeSinglePlayer:
		m.Handle(menu.CommandSinglePlayer)
	case game.ModeTwoPlayer:
		m.Handle(menu.CommandTwoPlayer)
	}
	return m, nil
}
