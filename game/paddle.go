package game

import (
	"image/color"
	"math"
)

// Paddle is a vertical bat fixed to one side of the field
type Paddle struct {
	// X is fixed per side
	X float64

	// Y is the top edge, kept within [0, fieldHeight-Height]
	Y float64

	Width  float64
	Height float64

	// Speed is the distance moved per tick while an intent is held
	Speed float64
}

// NewPaddle creates a paddle at x, vertically centered
func NewPaddle(x float64, cfg Config) *Paddle {
	p := &Paddle{
		X:      x,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Speed:  cfg.PaddleSpeed,
	}
	p.Reset(cfg.FieldHeight)
	return p
}

// Move applies the held intents. Clamping is the final authority, so
// holding both intents or overshooting an edge never leaves the field.
func (p *Paddle) Move(up, down bool, fieldHeight float64) {
	if up && p.Y > 0 {
		p.Y -= p.Speed
	}
	if down && p.Y+p.Height < fieldHeight {
		p.Y += p.Speed
	}
	p.Y = math.Max(0, math.Min(p.Y, fieldHeight-p.Height))
}

// Center returns the vertical center of the paddle
func (p *Paddle) Center() float64 {
	return p.Y + p.Height/2
}

// Reset moves the paddle back to the vertical center of the field
func (p *Paddle) Reset(fieldHeight float64) {
	p.Y = fieldHeight/2 - p.Height/2
}

// Draw issues a single filled rectangle at the paddle bounds
func (p *Paddle) Draw(c Canvas, clr color.Color) {
	c.DrawRect(p.X, p.Y, p.Width, p.Height, clr)
}
