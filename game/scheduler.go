package game

import (
	"context"
	"time"
)

// Scheduler dispatches ticks at the host's frame cadence. The match never
// schedules itself: on every frame the scheduler asks ShouldTick, so
// pausing is simply the absence of dispatched ticks.
type Scheduler struct {
	match  *Match
	input  InputProvider
	canvas Canvas

	// AfterFrame, if set, runs after every frame whether or not a tick was
	// dispatched. Hosts use it to draw overlays and present the frame.
	AfterFrame func(ticked bool)

	frames uint64
	ticked uint64
}

// NewScheduler creates a scheduler that feeds in to m and renders to c
func NewScheduler(m *Match, in InputProvider, c Canvas) *Scheduler {
	return &Scheduler{
		match:  m,
		input:  in,
		canvas: c,
	}
}

// Step handles one host frame and reports whether a tick was dispatched
func (s *Scheduler) Step() bool {
	s.frames++
	ticked := s.match.Frame(s.input, s.canvas)
	if ticked {
		s.ticked++
	}
	if s.AfterFrame != nil {
		s.AfterFrame(ticked)
	}
	return ticked
}

// Run steps once per value received from frames until ctx is done or
// frames is closed
func (s *Scheduler) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			s.Step()
		}
	}
}

// Stats returns the number of frames seen and ticks dispatched
func (s *Scheduler) Stats() (frames, ticks uint64) {
	return s.frames, s.ticked
}
