package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game only sees intents.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move the build cursor up
	ActionDown             // S, Down arrow - move the build cursor down
	ActionLeft             // A, Left arrow - move the build cursor left
	ActionRight            // D, Right arrow - move the build cursor right
	ActionPlace            // Space, Enter - place the held block at the cursor
	ActionChisel           // X - chip one damage off the block at the cursor
	ActionRotateCW         // E - rotate the held block clockwise
	ActionRotateCCW        // Q - rotate the held block counterclockwise
	ActionNextBlock        // Tab - hold the next conveyor block
	ActionPrevBlock        // Shift+Tab - hold the previous conveyor block
	ActionFinish           // F - end the run once the conveyor is empty
	ActionConfirm          // Enter - confirm in menus/overlays
	ActionBack             // B, Escape - go back
	ActionRestart          // R - restart after the run ends
	ActionQuit             // Ctrl+C - exit
	ActionPause            // P - pause/unpause
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
	case ActionPlace:
		return "Place"
	case ActionChisel:
		return "Chisel"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionNextBlock:
		return "NextBlock"
	case ActionPrevBlock:
		return "PrevBlock"
	case ActionFinish:
		return "Finish"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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
