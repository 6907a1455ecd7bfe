package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A - shift piece left
	ActionRight           // Right arrow, D - shift piece right
	ActionRotate          // Up arrow, W, X - rotate clockwise
	ActionSoftDrop        // Down arrow, S - held: fall every frame
	ActionRestart         // R, Enter - restart after game over
	ActionPause           // P - pause/unpause
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
// Edge-triggered actions appear in exactly one frame; a held key appears in
// every frame it is down.
type InputFrame struct {
	Actions map[Action]bool
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
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
