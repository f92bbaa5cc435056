package core

// Action represents a semantic game action, abstracted from physical key
// presses. The game works with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter/Space in menu - begin playing
	ActionPause          // P, Esc - pause/unpause
	ActionRestart        // R - restart after game over
	ActionMute           // M - toggle audio
	ActionDebug          // Tab - toggle tuning panel
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionDebug:
		return "Debug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick:
// the current pointer target in simulation coordinates, whether fire
// intent is held, and any discrete actions triggered since the last tick.
type InputFrame struct {
	// Target is the pointer position the ship steers toward.
	Target Vec2

	// Fire is true while the player holds fire intent (mouse button or space).
	Fire bool

	// Actions maps action types to whether they were triggered this frame.
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

// Clear resets discrete actions for the next frame.
// Target and Fire are continuous state and persist across frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Target = f.Target
	clone.Fire = f.Fire
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
