// Package interaction turns raw pointer and keyboard events into window moves
// and resizes. A gesture that starts inside the padded interior of the window
// moves it; one that starts within the edge padding resizes it. The choice is
// made on the first motion after the press and held until release.
package interaction

import (
	"github.com/rs/zerolog"

	"github.com/1broseidon/hideme/internal/platform"
)

// Window is the subset of window operations the state machine needs.
type Window interface {
	OuterPosition() (platform.Point, error)
	SetOuterPosition(platform.Point)
	InnerSize() platform.Size
	SetInnerSize(platform.Size)
}

// Outcome tells the event loop what, if anything, changed.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeGeometryChanged means the window was moved or resized and the
	// renderer's uniform must be refreshed.
	OutcomeGeometryChanged
	// OutcomeTerminate means the application should exit.
	OutcomeTerminate
)

// Machine owns the interaction State for a single window.
type Machine struct {
	state   State
	win     Window
	padding float64
	log     zerolog.Logger
}

// NewMachine creates an idle machine for win. padding is the edge margin in pixels.
func NewMachine(win Window, padding int, log zerolog.Logger) *Machine {
	return &Machine{
		state:   State{Gesture: GestureIdle},
		win:     win,
		padding: float64(padding),
		log:     log,
	}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Handle applies one event.
func (m *Machine) Handle(ev Event) Outcome {
	if m.state.Terminated {
		return OutcomeTerminate
	}

	switch e := ev.(type) {
	case CloseRequested:
		return m.terminate("close requested")

	case KeyChanged:
		if e.Key == KeyEscape && e.Down {
			return m.terminate("escape pressed")
		}

	case ButtonPressed:
		if e.Button == ButtonLeft && m.state.Gesture == GestureIdle {
			m.state.Gesture = GesturePending
		}

	case ButtonReleased:
		if e.Button == ButtonLeft {
			m.state.Reset()
		}

	case CursorMoved:
		m.state.Cursor = Cursor{X: e.X, Y: e.Y}

	case Motion:
		return m.drag(int(e.DX), int(e.DY))
	}

	return OutcomeNone
}

func (m *Machine) terminate(reason string) Outcome {
	m.log.Debug().Str("reason", reason).Msg("terminating")
	m.state.Terminated = true
	m.state.Reset()
	return OutcomeTerminate
}

func (m *Machine) drag(dx, dy int) Outcome {
	if !m.state.Gesture.Dragging() {
		return OutcomeNone
	}

	if m.state.Gesture == GesturePending {
		m.state.Gesture = m.classify()
		m.log.Debug().
			Stringer("gesture", m.state.Gesture).
			Float64("x", m.state.Cursor.X).
			Float64("y", m.state.Cursor.Y).
			Msg("gesture classified")
	}

	switch m.state.Gesture {
	case GestureMoving:
		pos, err := m.win.OuterPosition()
		if err != nil {
			m.log.Warn().Err(err).Msg("couldn't read window position")
			pos = platform.Point{}
		}
		m.win.SetOuterPosition(platform.Point{X: pos.X + dx, Y: pos.Y + dy})
	case GestureResizing:
		size := m.win.InnerSize()
		m.win.SetInnerSize(platform.Size{Width: size.Width + dx, Height: size.Height + dy})
	}
	return OutcomeGeometryChanged
}

// classify decides between moving and resizing from the last cursor position.
func (m *Machine) classify() Gesture {
	size := m.win.InnerSize()
	c := m.state.Cursor
	p := m.padding

	inside := p < c.X && c.X < float64(size.Width)-p &&
		p < c.Y && c.Y < float64(size.Height)-p
	if inside {
		return GestureMoving
	}
	return GestureResizing
}
