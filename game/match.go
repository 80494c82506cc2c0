package game

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"
)

// Mode selects who controls the right paddle
type Mode int

const (
	ModeNone         Mode = iota // menu, no match
	ModeSinglePlayer             // right paddle driven by the opponent controller
	ModeTwoPlayer                // right paddle driven by the second player
)

func (m Mode) String() string {
	switch m {
	case ModeSinglePlayer:
		return "single-player"
	case ModeTwoPlayer:
		return "two-player"
	}
	return "none"
}

// Phase is the externally visible state of a match
type Phase int

const (
	PhaseIdle   Phase = iota // not running
	PhaseActive              // running, ticks are dispatched
	PhasePaused              // running, frozen until resumed
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	}
	return "idle"
}

// Side identifies a player
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Match owns every entity, the flags and the score. There is one Match per
// process and its state is reset in place; it is only ever touched from
// the goroutine that dispatches ticks.
type Match struct {
	config Config
	colors Colors

	paddle1 *Paddle
	paddle2 *Paddle
	ball    *Ball

	opponent *OpponentController

	mode    Mode
	running bool
	paused  bool

	score1 int
	score2 int

	ticks uint64

	rng     *rand.Rand
	logger  *log.Logger
	onScore func(text string)
}

// Option customizes a Match
type Option func(*Match)

// WithRand sets the random source used for ball serves
func WithRand(rng *rand.Rand) Option {
	return func(m *Match) { m.rng = rng }
}

// WithSeed seeds the random source used for ball serves
func WithSeed(seed int64) Option {
	return func(m *Match) { m.rng = rand.New(rand.NewSource(seed)) }
}

// WithOpponent replaces the default deadband tracker in single-player
func WithOpponent(opp Opponent) Option {
	return func(m *Match) { m.opponent = NewOpponentController(opp, m.config.AIReactionDelay) }
}

// WithLogger sets where lifecycle events are logged
func WithLogger(logger *log.Logger) Option {
	return func(m *Match) { m.logger = logger }
}

// WithScoreListener registers fn to receive "{left} - {right}" on every
// scoring event and on score reset
func WithScoreListener(fn func(text string)) Option {
	return func(m *Match) { m.onScore = fn }
}

// NewMatch creates an idle match
func NewMatch(config Config, opts ...Option) *Match {
	m := &Match{
		config: config,
		colors: DefaultColors(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log.New(io.Discard, "", 0),
	}
	m.opponent = NewOpponentController(TrackingOpponent{Deadband: config.AIDeadband}, config.AIReactionDelay)

	for _, opt := range opts {
		opt(m)
	}

	m.paddle1 = NewPaddle(config.LeftPaddleX(), config)
	m.paddle2 = NewPaddle(config.RightPaddleX(), config)
	m.ball = NewBall(config, m.rng)
	return m
}

// Start begins a match in the given mode with the given colors. Starting
// while already running restarts the rally without touching the score.
func (m *Match) Start(mode Mode, colors Colors) {
	if mode != ModeSinglePlayer && mode != ModeTwoPlayer {
		m.logger.Printf("start ignored: invalid mode %d", mode)
		return
	}
	m.mode = mode
	m.colors = colors
	m.resetPositions()
	m.running = true
	m.paused = false
	m.logger.Printf("match started: mode=%s", mode)
}

// PauseToggle freezes a running match or unfreezes a paused one. It does
// nothing when no match is running.
func (m *Match) PauseToggle() {
	if !m.running {
		return
	}
	m.paused = !m.paused
	m.logger.Printf("match %s", m.Phase())
}

// Resume unfreezes a paused match. It does nothing in any other phase.
func (m *Match) Resume() {
	if !m.running || !m.paused {
		return
	}
	m.paused = false
	m.logger.Printf("match resumed")
}

// ReturnToMenu stops the match from any phase, resets every entity and
// zeroes the score
func (m *Match) ReturnToMenu() {
	m.running = false
	m.paused = false
	m.mode = ModeNone
	m.resetPositions()
	m.score1 = 0
	m.score2 = 0
	m.notifyScore()
	m.logger.Printf("returned to menu")
}

// ShouldTick reports whether the host should dispatch another tick
func (m *Match) ShouldTick() bool {
	return m.running && !m.paused
}

// Tick advances the simulation by one step: paddle input, ball motion,
// collisions (left paddle first), scoring and the opponent decision. It is
// a no-op unless the match is running and not paused.
func (m *Match) Tick(in InputProvider) {
	if !m.ShouldTick() {
		return
	}
	m.ticks++
	h := m.config.FieldHeight

	if m.mode == ModeSinglePlayer || m.mode == ModeTwoPlayer {
		m.paddle1.Move(in.Held(ControlUp1), in.Held(ControlDown1), h)
	}
	if m.mode == ModeTwoPlayer {
		m.paddle2.Move(in.Held(ControlUp2), in.Held(ControlDown2), h)
	}

	m.ball.Move(h)
	m.ball.CheckCollision(m.paddle1)
	m.ball.CheckCollision(m.paddle2)

	m.checkScore()

	if m.mode == ModeSinglePlayer {
		m.opponent.Update(m.paddle2, m.ball, m.config)
	}
}

// Frame runs one tick and renders the result, mirroring a host frame. It
// reports whether a tick ran.
func (m *Match) Frame(in InputProvider, c Canvas) bool {
	if !m.ShouldTick() {
		return false
	}
	m.Tick(in)
	m.Render(c)
	return true
}

// checkScore awards a point when the ball reaches a side edge. At most one
// side scores per tick.
func (m *Match) checkScore() {
	switch {
	case m.ball.X <= 0:
		m.award(SideRight)
	case m.ball.X+m.ball.Size >= m.config.FieldWidth:
		m.award(SideLeft)
	}
}

func (m *Match) award(side Side) {
	if side == SideLeft {
		m.score1++
	} else {
		m.score2++
	}
	m.notifyScore()
	m.resetPositions()
	m.logger.Printf("point scored: %s", m.ScoreText())
}

func (m *Match) resetPositions() {
	m.ball.Reset(m.config.FieldWidth, m.config.FieldHeight, m.rng)
	m.paddle1.Reset(m.config.FieldHeight)
	m.paddle2.Reset(m.config.FieldHeight)
}

func (m *Match) notifyScore() {
	if m.onScore != nil {
		m.onScore(m.ScoreText())
	}
}

// ScoreText formats the score as "{left} - {right}"
func (m *Match) ScoreText() string {
	return fmt.Sprintf("%d - %d", m.score1, m.score2)
}

// Score returns the left and right scores
func (m *Match) Score() (left, right int) {
	return m.score1, m.score2
}

// Phase returns the current phase
func (m *Match) Phase() Phase {
	switch {
	case !m.running:
		return PhaseIdle
	case m.paused:
		return PhasePaused
	}
	return PhaseActive
}

// Mode returns the current mode
func (m *Match) Mode() Mode { return m.mode }

// Running reports whether a match is in progress, paused or not
func (m *Match) Running() bool { return m.running }

// Paused reports whether the running match is frozen
func (m *Match) Paused() bool { return m.paused }

// Colors returns the colors applied by the last Start
func (m *Match) Colors() Colors { return m.colors }

// Config returns the physics constants
func (m *Match) Config() Config { return m.config }

// Snapshot is a value copy of the match state
type Snapshot struct {
	Mode            Mode
	Running         bool
	Paused          bool
	Score1, Score2  int
	Ball            Ball
	Paddle1         Paddle
	Paddle2         Paddle
	OpponentCounter int
	Ticks           uint64
}

// Snapshot copies the current state
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Mode:            m.mode,
		Running:         m.running,
		Paused:          m.paused,
		Score1:          m.score1,
		Score2:          m.score2,
		Ball:            *m.ball,
		Paddle1:         *m.paddle1,
		Paddle2:         *m.paddle2,
		OpponentCounter: m.opponent.Counter(),
		Ticks:           m.ticks,
	}
}
