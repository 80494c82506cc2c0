package game

// Overlaps reports whether the ball and paddle rectangles intersect.
// Touching edges do not count.
func Overlaps(b *Ball, p *Paddle) bool {
	return b.X < p.X+p.Width &&
		b.X+b.Size > p.X &&
		b.Y < p.Y+p.Height &&
		b.Y+b.Size > p.Y
}

// CheckCollision bounces the ball off p if they overlap and reports whether
// it did. The new vertical speed is proportional to the distance between
// the ball top and the paddle center, which both reverses incoming vertical
// motion and adds spin. There is no "already colliding" memory: a ball still
// overlapping on the next tick bounces again.
func (b *Ball) CheckCollision(p *Paddle) bool {
	if !Overlaps(b, p) {
		return false
	}

	deltaY := b.Y - p.Center()
	b.SpeedY = deltaY * b.spinFactor
	b.SpeedX = -b.SpeedX

	b.IncreaseSpeed()
	return true
}
