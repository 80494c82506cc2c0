package game

// Config holds the physics constants of a match. They are fixed once the
// Match is created; only colors are supplied per Start.
type Config struct {
	// FieldWidth is the width of the playing field in pixels
	FieldWidth float64

	// FieldHeight is the height of the playing field in pixels
	FieldHeight float64

	// PaddleWidth and PaddleHeight are the paddle dimensions in pixels
	PaddleWidth  float64
	PaddleHeight float64

	// PaddleInset is the gap between a paddle and its side of the field
	PaddleInset float64

	// PaddleSpeed is the vertical distance a paddle moves per tick
	PaddleSpeed float64

	// BallSize is the side of the square ball in pixels
	BallSize float64

	// InitialBallSpeedX and InitialBallSpeedY are the per-axis speed
	// magnitudes after every reset
	InitialBallSpeedX float64
	InitialBallSpeedY float64

	// BallSpeedIncrease is added to each axis after a paddle hit
	BallSpeedIncrease float64

	// MaxBallSpeed stops further increases once an axis reaches it
	MaxBallSpeed float64

	// SpinFactor scales the paddle-center offset into vertical speed
	SpinFactor float64

	// AIReactionDelay is the number of ticks between opponent decisions
	AIReactionDelay int

	// AIDeadband is the tolerance around the ball within which the
	// opponent does not move
	AIDeadband float64

	// DividerDash and DividerGap describe the dashed center line
	DividerDash  float64
	DividerGap   float64
	DividerWidth float64
}

// DefaultConfig returns the classic tuning
func DefaultConfig() Config {
	return Config{
		FieldWidth:        600,
		FieldHeight:       400,
		PaddleWidth:       10,
		PaddleHeight:      60,
		PaddleInset:       20,
		PaddleSpeed:       9,
		BallSize:          10,
		InitialBallSpeedX: 5,
		InitialBallSpeedY: 5,
		BallSpeedIncrease: 0.25,
		MaxBallSpeed:      16,
		SpinFactor:        0.3,
		AIReactionDelay:   3,
		AIDeadband:        15,
		DividerDash:       5,
		DividerGap:        5,
		DividerWidth:      1,
	}
}

// LeftPaddleX returns the fixed x of the left paddle
func (c Config) LeftPaddleX() float64 {
	return c.PaddleInset
}

// RightPaddleX returns the fixed x of the right paddle
func (c Config) RightPaddleX() float64 {
	return c.FieldWidth - c.PaddleInset - c.PaddleWidth
}

// SpeedBound is the largest per-axis speed magnitude the ball can reach.
// The max check happens before the increment, so one step of overshoot is
// possible.
func (c Config) SpeedBound() float64 {
	return c.MaxBallSpeed + c.BallSpeedIncrease
}
