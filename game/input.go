package game

// Control is a logical input name, independent of the physical key
type Control string

const (
	ControlUp1         Control = "up1"
	ControlDown1       Control = "down1"
	ControlUp2         Control = "up2"
	ControlDown2       Control = "down2"
	ControlPauseToggle Control = "pauseToggle"
)

// Controls lists every control in a stable order
var Controls = []Control{ControlUp1, ControlDown1, ControlUp2, ControlDown2, ControlPauseToggle}

// InputProvider exposes the latest "held" snapshot for each control
type InputProvider interface {
	// Held returns true while the control is pressed
	Held(c Control) bool
}

// InputState maps controls to their held flag. Hosts write it from their
// input layer; the match reads it once per tick. The previous snapshot is
// kept so hosts can detect presses. The zero value is ready to use. It is
// not safe for concurrent use.
type InputState struct {
	held map[Control]bool
	prev map[Control]bool
}

// NewInputState creates an input state with nothing held
func NewInputState() *InputState {
	s := &InputState{}
	s.init()
	return s
}

func (s *InputState) init() {
	if s.held == nil {
		s.held = make(map[Control]bool, len(Controls))
		s.prev = make(map[Control]bool, len(Controls))
	}
}

// Set records whether c is currently held
func (s *InputState) Set(c Control, held bool) {
	s.init()
	s.held[c] = held
}

// Capture takes a new snapshot of every control from read and keeps the
// previous one for JustPressed
func (s *InputState) Capture(read func(Control) bool) {
	s.init()
	for _, c := range Controls {
		s.prev[c] = s.held[c]
		s.held[c] = read(c)
	}
}

// Held implements InputProvider
func (s *InputState) Held(c Control) bool {
	return s.held[c]
}

// JustPressed reports whether c is held now but was not at the previous
// Capture
func (s *InputState) JustPressed(c Control) bool {
	return s.held[c] && !s.prev[c]
}

// Clear releases every control
func (s *InputState) Clear() {
	clear(s.held)
	clear(s.prev)
}

// NoInput is an InputProvider with nothing held
type NoInput struct{}

// Held always returns false
func (NoInput) Held(Control) bool { return false }
