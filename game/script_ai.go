package game

import (
	"io"
	"log"
)

// ScriptOpponent asks a user script for each decision. When the script
// fails, the fallback opponent decides instead; the first failure is
// logged and later ones are counted.
type ScriptOpponent struct {
	runner   *ScriptRunner
	fallback Opponent
	logger   *log.Logger

	failures int
}

// NewScriptOpponent wraps runner. A nil logger discards output.
func NewScriptOpponent(runner *ScriptRunner, fallback Opponent, logger *log.Logger) *ScriptOpponent {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ScriptOpponent{
		runner:   runner,
		fallback: fallback,
		logger:   logger,
	}
}

// Decide implements Opponent
func (s *ScriptOpponent) Decide(view OpponentView) Decision {
	d, err := s.runner.Decide(view)
	if err == nil {
		return d
	}

	s.failures++
	if s.failures == 1 {
		s.logger.Printf("opponent script failed, using built-in opponent: %v", err)
	}
	return s.fallback.Decide(view)
}

// Failures returns how many decisions fell back to the built-in opponent
func (s *ScriptOpponent) Failures() int {
	return s.failures
}
