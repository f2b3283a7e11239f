package core

// Action is a semantic input, independent of the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, K - move the cursor up
	ActionDown           // S, Down arrow, J - move the cursor down
	ActionLeft           // A, Left arrow, H - move the cursor left
	ActionRight          // D, Right arrow, L - move the cursor right
	ActionSelect         // Space, Enter - pick the tile under the cursor
	ActionCancel         // Esc, X - drop the current selection
	ActionHint           // ? - show a possible move now
	ActionRestart        // R - start a new board after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionCancel:  "Cancel",
	ActionHint:    "Hint",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the input for one simulation tick.
type InputFrame struct {
	Actions map[Action]bool

	// Click is the screen cell clicked this tick, if any.
	Click *Point
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

// SetClick records a pointer click at screen cell (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Point{X: x, Y: y}
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return f.Click == nil
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}
