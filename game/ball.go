package game

import (
	"image/color"
	"math"
	"math/rand"
)

// Ball is the square ball. Both velocity components are signed.
type Ball struct {
	X, Y           float64
	Size           float64
	SpeedX, SpeedY float64

	initialSpeedX float64
	initialSpeedY float64
	speedIncrease float64
	maxSpeed      float64
	spinFactor    float64
}

// NewBall creates a ball at the field center with a random direction
func NewBall(cfg Config, rng *rand.Rand) *Ball {
	b := &Ball{
		Size:          cfg.BallSize,
		initialSpeedX: cfg.InitialBallSpeedX,
		initialSpeedY: cfg.InitialBallSpeedY,
		speedIncrease: cfg.BallSpeedIncrease,
		maxSpeed:      cfg.MaxBallSpeed,
		spinFactor:    cfg.SpinFactor,
	}
	b.Reset(cfg.FieldWidth, cfg.FieldHeight, rng)
	return b
}

// Move advances the ball one tick and reflects it off the top and bottom
// walls. Overshoot past a wall is not corrected.
func (b *Ball) Move(fieldHeight float64) {
	b.X += b.SpeedX
	b.Y += b.SpeedY

	if b.Y <= 0 || b.Y+b.Size >= fieldHeight {
		b.SpeedY = -b.SpeedY
	}
}

// IncreaseSpeed speeds up each axis that is below the max by one step in
// the direction it already travels. A zero axis has no direction and
// stays at zero.
func (b *Ball) IncreaseSpeed() {
	b.SpeedX = b.stepAxis(b.SpeedX)
	b.SpeedY = b.stepAxis(b.SpeedY)
}

func (b *Ball) stepAxis(v float64) float64 {
	if math.Abs(v) >= b.maxSpeed {
		return v
	}
	switch {
	case v > 0:
		return v + b.speedIncrease
	case v < 0:
		return v - b.speedIncrease
	}
	return v
}

// Reset centers the ball and picks a fresh sign for each axis
func (b *Ball) Reset(fieldWidth, fieldHeight float64, rng *rand.Rand) {
	b.X = fieldWidth / 2
	b.Y = fieldHeight / 2
	b.SpeedX = b.initialSpeedX * randomSign(rng)
	b.SpeedY = b.initialSpeedY * randomSign(rng)
}

// Draw issues a single filled rectangle at the ball bounds
func (b *Ball) Draw(c Canvas, clr color.Color) {
	c.DrawRect(b.X, b.Y, b.Size, b.Size, clr)
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return 1
	}
	return -1
}
