package game

// Point is a position in field coordinates
type Point struct {
	X, Y float64
}

// PredictPath simulates a copy of b forward for up to steps ticks using the
// same wall physics as the match. Paddles are ignored; the path ends at the
// first point where the ball reaches a goal edge. The first point is the
// current ball center.
func PredictPath(b Ball, cfg Config, steps int) []Point {
	half := b.Size / 2
	path := make([]Point, 0, steps+1)
	path = append(path, Point{b.X + half, b.Y + half})

	for range steps {
		b.Move(cfg.FieldHeight)
		path = append(path, Point{b.X + half, b.Y + half})
		if b.X <= 0 || b.X+b.Size >= cfg.FieldWidth {
			break
		}
	}
	return path
}
