package game

import "image/color"

// Canvas is the drawing surface a host provides. Every render is a full
// redraw: one ClearAndFill followed by DrawRect calls.
type Canvas interface {
	ClearAndFill(clr color.Color)
	DrawRect(x, y, w, h float64, clr color.Color)
}

// Render draws the current match state: background, paddles, ball and the
// dashed center divider
func (m *Match) Render(c Canvas) {
	c.ClearAndFill(m.colors.Background)

	m.paddle1.Draw(c, m.colors.Paddle)
	m.paddle2.Draw(c, m.colors.Paddle)
	m.ball.Draw(c, m.colors.Ball)

	drawDivider(c, m.config)
}

func drawDivider(c Canvas, cfg Config) {
	period := cfg.DividerDash + cfg.DividerGap
	if period <= 0 {
		return
	}
	x := cfg.FieldWidth/2 - cfg.DividerWidth/2
	for y := 0.0; y < cfg.FieldHeight; y += period {
		h := min(cfg.DividerDash, cfg.FieldHeight-y)
		c.DrawRect(x, y, cfg.DividerWidth, h, colorDivider)
	}
}
