package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow
	ActionDown          // S, Down arrow
	ActionLeft          // A, Left arrow
	ActionRight         // D, Right arrow
	ActionJump          // Space - jump in the runner phase
	ActionPause         // P, Escape
	ActionAnyKey        // Set for every key press and tap; drives start/reset bindings
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionAnyKey:
		return "AnyKey"
	default:
		return "Unknown"
	}
}

// Tap is a pointer press (mouse click or touch) in screen cells.
type Tap struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Tap holds the last pointer press of the frame, if any.
	Tap    Tap
	HasTap bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetTap records a pointer press. A tap also counts as "any key".
func (f *InputFrame) SetTap(x, y int) {
	f.Tap = Tap{X: x, Y: y}
	f.HasTap = true
	f.Set(ActionAnyKey)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Tap = Tap{}
	f.HasTap = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Tap = f.Tap
	clone.HasTap = f.HasTap
	return clone
}
