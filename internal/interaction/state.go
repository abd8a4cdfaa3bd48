package interaction

// Gesture is the phase of the current press-drag-release span.
type Gesture int

const (
	// GestureIdle means the left button is up.
	GestureIdle Gesture = iota
	// GesturePending means the button is down but no motion has arrived yet.
	GesturePending
	// GestureMoving translates the window for the rest of the gesture.
	GestureMoving
	// GestureResizing grows or shrinks the window for the rest of the gesture.
	GestureResizing
)

// String returns the string representation of the gesture
func (g Gesture) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GesturePending:
		return "pending"
	case GestureMoving:
		return "moving"
	case GestureResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Dragging reports whether the left button is held.
func (g Gesture) Dragging() bool {
	return g != GestureIdle
}

// Cursor is a cursor position relative to the window's client area.
type Cursor struct {
	X float64
	Y float64
}

// State holds everything the event handler mutates between events.
type State struct {
	Gesture Gesture
	// Cursor is the last reported position, used to classify the next gesture.
	Cursor     Cursor
	Terminated bool
}

// Reset ends the current gesture, keeping the last cursor position.
func (s *State) Reset() {
	s.Gesture = GestureIdle
}
