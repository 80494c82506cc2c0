package game

import (
	"math"
	"math/rand"
	"testing"
)

func newStartedMatch(t *testing.T, mode Mode, opts ...Option) (*Match, *[]string) {
	t.Helper()
	var notes []string
	opts = append([]Option{WithSeed(1), WithScoreListener(func(s string) { notes = append(notes, s) })}, opts...)
	m := NewMatch(DefaultConfig(), opts...)
	m.Start(mode, DefaultColors())
	if m.Phase() != PhaseActive {
		t.Fatalf("phase after Start = %s, want active", m.Phase())
	}
	return m, &notes
}

func assertResetPositions(t *testing.T, s Snapshot) {
	t.Helper()
	if s.Ball.X != 300 || s.Ball.Y != 200 {
		t.Errorf("ball at (%v, %v), want (300, 200)", s.Ball.X, s.Ball.Y)
	}
	if math.Abs(s.Ball.SpeedX) != 5 || math.Abs(s.Ball.SpeedY) != 5 {
		t.Errorf("ball speed (%v, %v), want magnitude 5", s.Ball.SpeedX, s.Ball.SpeedY)
	}
	if s.Paddle1.Y != 170 || s.Paddle2.Y != 170 {
		t.Errorf("paddles at %v / %v, want 170", s.Paddle1.Y, s.Paddle2.Y)
	}
}

func TestNewMatchIsIdle(t *testing.T) {
	m := NewMatch(DefaultConfig(), WithSeed(1))
	if m.Phase() != PhaseIdle || m.ShouldTick() {
		t.Fatalf("new match phase = %s, ShouldTick = %v", m.Phase(), m.ShouldTick())
	}

	before := m.Snapshot()
	in := NewInputState()
	in.Set(ControlUp1, true)
	m.Tick(in)

	if m.Snapshot() != before {
		t.Error("Tick mutated an idle match")
	}
}

func TestStartRejectsInvalidMode(t *testing.T) {
	m := NewMatch(DefaultConfig(), WithSeed(1))
	m.Start(ModeNone, DefaultColors())
	m.Start(Mode(7), DefaultColors())

	if m.Running() {
		t.Error("match running after invalid Start")
	}
}

func TestStartResetsAndAppliesColors(t *testing.T) {
	colors := DefaultColors()
	colors.Ball.R = 10
	m := NewMatch(DefaultConfig(), WithSeed(1))
	m.ball.X = 17
	m.paddle1.Y = 0

	m.Start(ModeSinglePlayer, colors)

	s := m.Snapshot()
	if !s.Running || s.Paused || s.Mode != ModeSinglePlayer {
		t.Errorf("flags after Start: %+v", s)
	}
	if m.Colors() != colors {
		t.Errorf("colors = %+v, want %+v", m.Colors(), colors)
	}
	assertResetPositions(t, s)
}

func TestTickScoresRightSide(t *testing.T) {
	m, notes := newStartedMatch(t, ModeTwoPlayer)
	m.ball.X, m.ball.Y = -1, 100
	m.ball.SpeedX, m.ball.SpeedY = -5, 0
	m.paddle1.Y = 0

	m.Tick(NoInput{})

	s := m.Snapshot()
	if s.Score1 != 0 || s.Score2 != 1 {
		t.Errorf("score = %d - %d, want 0 - 1", s.Score1, s.Score2)
	}
	assertResetPositions(t, s)
	if len(*notes) != 1 || (*notes)[0] != "0 - 1" {
		t.Errorf("notifications = %v, want [0 - 1]", *notes)
	}
}

func TestTickScoresLeftSide(t *testing.T) {
	m, notes := newStartedMatch(t, ModeTwoPlayer)
	m.ball.X, m.ball.Y = 590, 100
	m.ball.SpeedX, m.ball.SpeedY = 5, 0

	m.Tick(NoInput{})

	s := m.Snapshot()
	if s.Score1 != 1 || s.Score2 != 0 {
		t.Errorf("score = %d - %d, want 1 - 0", s.Score1, s.Score2)
	}
	assertResetPositions(t, s)
	if m.ScoreText() != "1 - 0" || (*notes)[0] != "1 - 0" {
		t.Errorf("score text = %q, notifications = %v", m.ScoreText(), *notes)
	}
}

func TestScoresPersistAcrossPoints(t *testing.T) {
	m, _ := newStartedMatch(t, ModeTwoPlayer)
	for i := 0; i < 3; i++ {
		m.ball.X, m.ball.Y, m.ball.SpeedX, m.ball.SpeedY = 0, 100, -5, 0
		m.Tick(NoInput{})
	}
	m.ball.X, m.ball.Y, m.ball.SpeedX, m.ball.SpeedY = 595, 100, 5, 0
	m.Tick(NoInput{})

	if left, right := m.Score(); left != 1 || right != 3 {
		t.Errorf("score = %d - %d, want 1 - 3", left, right)
	}
}

func TestTickTwoPlayerInput(t *testing.T) {
	m, _ := newStartedMatch(t, ModeTwoPlayer)
	in := NewInputState()
	in.Set(ControlUp1, true)
	in.Set(ControlDown2, true)

	m.Tick(in)

	s := m.Snapshot()
	if s.Paddle1.Y != 161 {
		t.Errorf("paddle1 Y = %v, want 161", s.Paddle1.Y)
	}
	if s.Paddle2.Y != 179 {
		t.Errorf("paddle2 Y = %v, want 179", s.Paddle2.Y)
	}
}

func TestTickSinglePlayerIgnoresSecondPlayerKeys(t *testing.T) {
	opp := &countingOpponent{}
	m, _ := newStartedMatch(t, ModeSinglePlayer, WithOpponent(opp))
	in := NewInputState()
	in.Set(ControlDown1, true)
	in.Set(ControlUp2, true)

	m.Tick(in)
	m.Tick(in)

	s := m.Snapshot()
	if s.Paddle1.Y != 188 {
		t.Errorf("paddle1 Y = %v, want 188", s.Paddle1.Y)
	}
	if s.Paddle2.Y != 170 {
		t.Errorf("paddle2 Y = %v, second player keys moved it in single-player", s.Paddle2.Y)
	}
	if opp.calls != 0 || s.OpponentCounter != 2 {
		t.Errorf("opponent calls = %d, counter = %d after 2 ticks", opp.calls, s.OpponentCounter)
	}

	m.Tick(in)
	if opp.calls != 1 {
		t.Errorf("opponent calls = %d after 3 ticks, want 1", opp.calls)
	}
}

func TestTickTwoPlayerSkipsOpponent(t *testing.T) {
	opp := &countingOpponent{decision: Decision{Up: true}}
	m, _ := newStartedMatch(t, ModeTwoPlayer, WithOpponent(opp))
	for i := 0; i < 9; i++ {
		m.Tick(NoInput{})
	}
	if opp.calls != 0 {
		t.Errorf("opponent consulted %d times in two-player", opp.calls)
	}
}

func TestPauseToggleIdempotence(t *testing.T) {
	m, _ := newStartedMatch(t, ModeSinglePlayer)
	for i := 0; i < 5; i++ {
		m.Tick(NoInput{})
	}
	before := m.Snapshot()

	m.PauseToggle()
	if m.Phase() != PhasePaused || m.ShouldTick() {
		t.Fatalf("phase after toggle = %s", m.Phase())
	}
	m.Tick(NoInput{})
	m.PauseToggle()

	if m.Phase() != PhaseActive {
		t.Fatalf("phase after second toggle = %s, want active", m.Phase())
	}
	if m.Snapshot() != before {
		t.Errorf("state advanced across pause toggle:\n got %+v\nwant %+v", m.Snapshot(), before)
	}
}

func TestPausedMatchIsFrozen(t *testing.T) {
	m, _ := newStartedMatch(t, ModeSinglePlayer)
	m.PauseToggle()
	before := m.Snapshot()

	in := NewInputState()
	in.Set(ControlUp1, true)
	c := &recordingCanvas{}
	for i := 0; i < 10; i++ {
		if m.Frame(in, c) {
			t.Fatal("Frame dispatched a tick while paused")
		}
	}

	if m.Snapshot() != before {
		t.Error("paused match changed")
	}
	if len(c.clears) != 0 {
		t.Error("paused frame rendered")
	}
}

func TestInvalidTransitionsAreNoOps(t *testing.T) {
	m := NewMatch(DefaultConfig(), WithSeed(1))

	m.PauseToggle()
	m.Resume()
	if m.Phase() != PhaseIdle || m.Paused() {
		t.Errorf("idle match became %s", m.Phase())
	}

	m.Start(ModeTwoPlayer, DefaultColors())
	m.Resume()
	if m.Phase() != PhaseActive {
		t.Errorf("Resume while active changed phase to %s", m.Phase())
	}

	m.PauseToggle()
	m.Resume()
	m.Resume()
	if m.Phase() != PhaseActive {
		t.Errorf("phase after resume = %s, want active", m.Phase())
	}
}

func TestReturnToMenuFromAnyPhase(t *testing.T) {
	setups := map[string]func(m *Match){
		"Idle":   func(m *Match) {},
		"Active": func(m *Match) { m.Start(ModeSinglePlayer, DefaultColors()) },
		"Paused": func(m *Match) {
			m.Start(ModeTwoPlayer, DefaultColors())
			m.PauseToggle()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			var notes []string
			m := NewMatch(DefaultConfig(), WithSeed(3), WithScoreListener(func(s string) { notes = append(notes, s) }))
			setup(m)
			m.score1, m.score2 = 4, 2
			m.ball.X, m.paddle1.Y, m.paddle2.Y = 12, 0, 340

			m.ReturnToMenu()

			s := m.Snapshot()
			if s.Running || s.Paused || s.Mode != ModeNone {
				t.Errorf("flags after ReturnToMenu: running=%v paused=%v mode=%s", s.Running, s.Paused, s.Mode)
			}
			if s.Score1 != 0 || s.Score2 != 0 {
				t.Errorf("score = %d - %d, want 0 - 0", s.Score1, s.Score2)
			}
			assertResetPositions(t, s)
			if len(notes) == 0 || notes[len(notes)-1] != "0 - 0" {
				t.Errorf("notifications = %v, want trailing 0 - 0", notes)
			}
			if m.ShouldTick() {
				t.Error("ShouldTick true after ReturnToMenu")
			}
		})
	}
}

func TestMatchInvariantsOverLongRun(t *testing.T) {
	for _, mode := range []Mode{ModeSinglePlayer, ModeTwoPlayer} {
		t.Run(mode.String(), func(t *testing.T) {
			m, _ := newStartedMatch(t, mode)
			cfg := m.Config()
			rng := rand.New(rand.NewSource(99))
			in := NewInputState()

			for tick := 0; tick < 20000; tick++ {
				for _, c := range []Control{ControlUp1, ControlDown1, ControlUp2, ControlDown2} {
					in.Set(c, rng.Intn(3) == 0)
				}
				m.Tick(in)

				s := m.Snapshot()
				for i, p := range []Paddle{s.Paddle1, s.Paddle2} {
					if p.Y < 0 || p.Y > cfg.FieldHeight-p.Height {
						t.Fatalf("tick %d: paddle %d Y = %v out of bounds", tick, i+1, p.Y)
					}
				}
				if math.Abs(s.Ball.SpeedX) > cfg.SpeedBound() || math.Abs(s.Ball.SpeedY) > cfg.SpeedBound() {
					t.Fatalf("tick %d: ball speed (%v, %v) exceeds %v", tick, s.Ball.SpeedX, s.Ball.SpeedY, cfg.SpeedBound())
				}
				if s.OpponentCounter < 0 || s.OpponentCounter >= cfg.AIReactionDelay {
					t.Fatalf("tick %d: opponent counter %d out of range", tick, s.OpponentCounter)
				}
			}

			if left, right := m.Score(); left+right == 0 {
				t.Error("no points scored in 20000 ticks")
			}
		})
	}
}
