package game

// Decision is a set of directional intents, the same ones a human would
// hold for the paddle
type Decision struct {
	Up   bool `json:"up"`
	Down bool `json:"down"`
}

// OpponentView is what an opponent can observe when deciding
type OpponentView struct {
	PaddleX      float64 `json:"paddleX"`
	PaddleY      float64 `json:"paddleY"`
	PaddleHeight float64 `json:"paddleHeight"`
	PaddleCenter float64 `json:"paddleCenter"`
	BallX        float64 `json:"ballX"`
	BallY        float64 `json:"ballY"`
	BallSpeedX   float64 `json:"ballSpeedX"`
	BallSpeedY   float64 `json:"ballSpeedY"`
	FieldWidth   float64 `json:"fieldWidth"`
	FieldHeight  float64 `json:"fieldHeight"`
}

// Opponent turns an observation into directional intents
type Opponent interface {
	Decide(view OpponentView) Decision
}

// TrackingOpponent follows the ball's y with a deadband so it does not
// jitter once aligned
type TrackingOpponent struct {
	Deadband float64
}

// Decide moves toward the ball when the paddle center is outside the
// deadband around it
func (t TrackingOpponent) Decide(v OpponentView) Decision {
	switch {
	case v.PaddleCenter < v.BallY-t.Deadband:
		return Decision{Down: true}
	case v.PaddleCenter > v.BallY+t.Deadband:
		return Decision{Up: true}
	}
	return Decision{}
}

// OpponentController rate-limits an Opponent: it only reconsiders once
// every ReactionDelay ticks, which models reaction latency.
type OpponentController struct {
	opponent      Opponent
	reactionDelay int
	counter       int
}

// NewOpponentController wraps opp with the given reaction delay
func NewOpponentController(opp Opponent, reactionDelay int) *OpponentController {
	if reactionDelay < 1 {
		reactionDelay = 1
	}
	return &OpponentController{
		opponent:      opp,
		reactionDelay: reactionDelay,
	}
}

// Update advances the reaction counter and, when it reaches the delay,
// asks the opponent for a decision and applies it to p. It reports whether
// a decision was made this tick.
func (o *OpponentController) Update(p *Paddle, b *Ball, cfg Config) bool {
	o.counter++
	if o.counter < o.reactionDelay {
		return false
	}
	o.counter = 0

	d := o.opponent.Decide(OpponentView{
		PaddleX:      p.X,
		PaddleY:      p.Y,
		PaddleHeight: p.Height,
		PaddleCenter: p.Center(),
		BallX:        b.X,
		BallY:        b.Y,
		BallSpeedX:   b.SpeedX,
		BallSpeedY:   b.SpeedY,
		FieldWidth:   cfg.FieldWidth,
		FieldHeight:  cfg.FieldHeight,
	})
	if d.Up || d.Down {
		p.Move(d.Up, d.Down, cfg.FieldHeight)
	}
	return true
}

// Counter returns the current reaction counter, in [0, delay)
func (o *OpponentController) Counter() int {
	return o.counter
}
