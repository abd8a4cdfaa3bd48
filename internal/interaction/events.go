package interaction

// Event is one input notification fed to Machine.Handle.
type Event interface {
	event()
}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

// Key identifies the keys the overlay reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
)

// ButtonPressed is a mouse button going down.
type ButtonPressed struct{ Button Button }

// ButtonReleased is a mouse button going up.
type ButtonReleased struct{ Button Button }

// CursorMoved reports the cursor position inside the window.
type CursorMoved struct{ X, Y float64 }

// Motion is a relative pointer movement in screen pixels.
type Motion struct{ DX, DY float64 }

// KeyChanged is a key going down (Down=true) or up.
type KeyChanged struct {
	Key  Key
	Down bool
}

// CloseRequested is the window manager asking the window to close.
type CloseRequested struct{}

func (ButtonPressed) event()  {}
func (ButtonReleased) event() {}
func (CursorMoved) event()    {}
func (Motion) event()         {}
func (KeyChanged) event()     {}
func (CloseRequested) event() {}
