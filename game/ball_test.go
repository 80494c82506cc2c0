package game

import (
	"math"
	"math/rand"
	"testing"
)

func newTestBall(t *testing.T) (*Ball, Config) {
	t.Helper()
	cfg := DefaultConfig()
	return NewBall(cfg, rand.New(rand.NewSource(1))), cfg
}

func TestBallMove(t *testing.T) {
	b, cfg := newTestBall(t)
	b.X, b.Y = 100, 100
	b.SpeedX, b.SpeedY = 5, -5

	b.Move(cfg.FieldHeight)

	if b.X != 105 || b.Y != 95 {
		t.Errorf("position = (%v, %v), want (105, 95)", b.X, b.Y)
	}
	if b.SpeedY != -5 {
		t.Errorf("SpeedY = %v, want -5 (no bounce mid-field)", b.SpeedY)
	}
}

func TestBallWallBounce(t *testing.T) {
	tests := []struct {
		name       string
		y, speedY  float64
		wantSpeedY float64
		wantY      float64
	}{
		{"Top overshoot", 3, -5, 5, -2},
		{"Exactly top", 5, -5, 5, 0},
		{"Bottom overshoot", 386, 5, -5, 391},
		{"Exactly bottom", 385, 5, -5, 390},
		{"Just short of bottom", 384, 5, 5, 389},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, cfg := newTestBall(t)
			b.X, b.Y = 300, tc.y
			b.SpeedX, b.SpeedY = 5, tc.speedY

			b.Move(cfg.FieldHeight)

			if b.SpeedY != tc.wantSpeedY {
				t.Errorf("SpeedY = %v, want %v", b.SpeedY, tc.wantSpeedY)
			}
			if b.Y != tc.wantY {
				t.Errorf("Y = %v, want %v (no positional correction)", b.Y, tc.wantY)
			}
		})
	}
}

func TestBallIncreaseSpeed(t *testing.T) {
	tests := []struct {
		name               string
		speedX, speedY     float64
		wantSpeedX, wantSY float64
	}{
		{"Both positive", 5, 5, 5.25, 5.25},
		{"Mixed signs", -5, 5, -5.25, 5.25},
		{"Zero axis stays zero", 5, 0, 5.25, 0},
		{"At max stays", 16, -16, 16, -16},
		{"Below max overshoots", 15.9, -15.9, 16.15, -16.15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := newTestBall(t)
			b.SpeedX, b.SpeedY = tc.speedX, tc.speedY
			b.IncreaseSpeed()
			if math.Abs(b.SpeedX-tc.wantSpeedX) > 1e-9 || math.Abs(b.SpeedY-tc.wantSY) > 1e-9 {
				t.Errorf("speed = (%v, %v), want (%v, %v)", b.SpeedX, b.SpeedY, tc.wantSpeedX, tc.wantSY)
			}
		})
	}
}

func TestBallIncreaseSpeedMonotonic(t *testing.T) {
	b, cfg := newTestBall(t)
	b.SpeedX, b.SpeedY = -5, 5

	prevX, prevY := math.Abs(b.SpeedX), math.Abs(b.SpeedY)
	for i := 0; i < 100; i++ {
		b.IncreaseSpeed()
		x, y := math.Abs(b.SpeedX), math.Abs(b.SpeedY)

		if prevX < cfg.MaxBallSpeed && x <= prevX {
			t.Fatalf("step %d: |SpeedX| %v did not grow from %v", i, x, prevX)
		}
		if prevY < cfg.MaxBallSpeed && y <= prevY {
			t.Fatalf("step %d: |SpeedY| %v did not grow from %v", i, y, prevY)
		}
		if x > cfg.SpeedBound() || y > cfg.SpeedBound() {
			t.Fatalf("step %d: speed (%v, %v) exceeds bound %v", i, x, y, cfg.SpeedBound())
		}
		prevX, prevY = x, y
	}

	if b.SpeedX != -16 || b.SpeedY != 16 {
		t.Errorf("final speed = (%v, %v), want (-16, 16)", b.SpeedX, b.SpeedY)
	}
}

func TestBallReset(t *testing.T) {
	b, cfg := newTestBall(t)
	rng := rand.New(rand.NewSource(42))

	seen := map[[2]float64]bool{}
	for i := 0; i < 200; i++ {
		b.X, b.Y = 1, 1
		b.SpeedX, b.SpeedY = 12, -3
		b.Reset(cfg.FieldWidth, cfg.FieldHeight, rng)

		if b.X != 300 || b.Y != 200 {
			t.Fatalf("position = (%v, %v), want (300, 200)", b.X, b.Y)
		}
		if math.Abs(b.SpeedX) != 5 || math.Abs(b.SpeedY) != 5 {
			t.Fatalf("speed = (%v, %v), want magnitude 5 on both axes", b.SpeedX, b.SpeedY)
		}
		seen[[2]float64{b.SpeedX, b.SpeedY}] = true
	}

	if len(seen) != 4 {
		t.Errorf("saw %d sign combinations after 200 resets, want all 4", len(seen))
	}
}
