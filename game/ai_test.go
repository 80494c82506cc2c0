package game

import "testing"

type countingOpponent struct {
	calls    int
	decision Decision
	lastView OpponentView
}

func (c *countingOpponent) Decide(v OpponentView) Decision {
	c.calls++
	c.lastView = v
	return c.decision
}

func TestTrackingOpponentDeadband(t *testing.T) {
	opp := TrackingOpponent{Deadband: 15}

	tests := []struct {
		name  string
		ballY float64
		want  Decision
	}{
		{"Aligned", 200, Decision{}},
		{"Edge of deadband below", 215, Decision{}},
		{"Edge of deadband above", 185, Decision{}},
		{"Ball below", 216, Decision{Down: true}},
		{"Ball above", 184, Decision{Up: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := opp.Decide(OpponentView{PaddleCenter: 200, BallY: tc.ballY})
			if got != tc.want {
				t.Errorf("Decide = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestOpponentControllerReactionDelay(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPaddle(cfg.RightPaddleX(), cfg)
	b, _ := newTestBall(t)
	opp := &countingOpponent{}
	ctrl := NewOpponentController(opp, 3)

	for tick := 1; tick <= 12; tick++ {
		decided := ctrl.Update(p, b, cfg)
		want := tick%3 == 0
		if decided != want {
			t.Errorf("tick %d: decided = %v, want %v", tick, decided, want)
		}
		if ctrl.Counter() < 0 || ctrl.Counter() >= 3 {
			t.Errorf("tick %d: counter %d outside [0, 3)", tick, ctrl.Counter())
		}
	}
	if opp.calls != 4 {
		t.Errorf("opponent consulted %d times in 12 ticks, want 4", opp.calls)
	}
}

func TestOpponentControllerMovesPaddle(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPaddle(cfg.RightPaddleX(), cfg)
	b, _ := newTestBall(t)
	b.Y = 350
	ctrl := NewOpponentController(TrackingOpponent{Deadband: cfg.AIDeadband}, cfg.AIReactionDelay)

	var moves int
	prev := p.Y
	for tick := 1; tick <= 9; tick++ {
		ctrl.Update(p, b, cfg)
		if p.Y != prev {
			moves++
			if tick%3 != 0 {
				t.Errorf("paddle moved on tick %d, between decisions", tick)
			}
		}
		prev = p.Y
	}

	if moves != 3 {
		t.Errorf("paddle moved %d times, want 3", moves)
	}
	if p.Y != 170+3*cfg.PaddleSpeed {
		t.Errorf("Y = %v, want %v", p.Y, 170+3*cfg.PaddleSpeed)
	}
}

func TestOpponentControllerHoldsInsideDeadband(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPaddle(cfg.RightPaddleX(), cfg)
	b, _ := newTestBall(t)
	b.Y = p.Center() + 15
	ctrl := NewOpponentController(TrackingOpponent{Deadband: cfg.AIDeadband}, cfg.AIReactionDelay)

	for tick := 0; tick < 30; tick++ {
		ctrl.Update(p, b, cfg)
	}
	if p.Y != 170 {
		t.Errorf("Y = %v, paddle moved while inside the deadband", p.Y)
	}
}

func TestOpponentControllerView(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPaddle(cfg.RightPaddleX(), cfg)
	b, _ := newTestBall(t)
	b.X, b.Y, b.SpeedX, b.SpeedY = 123, 45, -6, 7
	opp := &countingOpponent{}
	ctrl := NewOpponentController(opp, 1)

	ctrl.Update(p, b, cfg)

	want := OpponentView{
		PaddleX: 570, PaddleY: 170, PaddleHeight: 60, PaddleCenter: 200,
		BallX: 123, BallY: 45, BallSpeedX: -6, BallSpeedY: 7,
		FieldWidth: 600, FieldHeight: 400,
	}
	if opp.lastView != want {
		t.Errorf("view = %+v, want %+v", opp.lastView, want)
	}
}
