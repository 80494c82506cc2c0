package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pong/game"
)

// Predicted ball path shown by the debug overlay
const (
	predictiveTrailSteps = 120
	predictiveTrailWidth = 1.5
)

var colorPredictiveTrail = color.NRGBA{R: 120, G: 210, B: 255, A: 255}

// drawPredictedPath draws where the ball goes if no paddle touches it, as
// segments fading out along the path
func (a *App) drawPredictedPath(screen *ebiten.Image) {
	match := a.menu.Match()
	positions := game.PredictPath(match.Snapshot().Ball, match.Config(), predictiveTrailSteps)
	if len(positions) <= 1 {
		return
	}

	for i := 0; i < len(positions)-1; i++ {
		p1, p2 := positions[i], positions[i+1]

		// Earlier segments are more opaque, later segments fade out
		progress := float64(i) / float64(len(positions)-1)
		opacity := 1.0 - progress*0.8

		faded := colorPredictiveTrail
		faded.A = uint8(float64(colorPredictiveTrail.A) * opacity)

		vector.StrokeLine(screen, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y),
			predictiveTrailWidth, faded, true)
	}
}
