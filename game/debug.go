package game

import "fmt"

// DebugState holds debug toggles that persist across matches
type DebugState struct {
	ShowOverlay bool // Show ball velocity, opponent timing and tick counters
}

// Toggle flips the overlay
func (d *DebugState) Toggle() {
	d.ShowOverlay = !d.ShowOverlay
}

// DebugText formats the overlay for a snapshot. tps is the host's measured
// tick rate.
func DebugText(s Snapshot, tps float64, frames, ticks uint64) string {
	return fmt.Sprintf("TPS: %.1f | frames %d | ticks %d\n"+
		"mode %s | running %v | paused %v\n"+
		"ball (%.1f, %.1f) v=(%.2f, %.2f)\n"+
		"paddles y=%.1f / %.1f | opponent counter %d",
		tps, frames, ticks,
		s.Mode, s.Running, s.Paused,
		s.Ball.X, s.Ball.Y, s.Ball.SpeedX, s.Ball.SpeedY,
		s.Paddle1.Y, s.Paddle2.Y, s.OpponentCounter)
}
