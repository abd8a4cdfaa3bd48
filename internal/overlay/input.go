package overlay

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/1broseidon/hideme/internal/interaction"
	"github.com/1broseidon/hideme/internal/platform"
)

func buttonEvent(b glfw.MouseButton, action glfw.Action) (interaction.Event, bool) {
	var button interaction.Button
	switch b {
	case glfw.MouseButtonLeft:
		button = interaction.ButtonLeft
	case glfw.MouseButtonRight:
		button = interaction.ButtonRight
	case glfw.MouseButtonMiddle:
		button = interaction.ButtonMiddle
	default:
		button = interaction.ButtonOther
	}

	switch action {
	case glfw.Press:
		return interaction.ButtonPressed{Button: button}, true
	case glfw.Release:
		return interaction.ButtonReleased{Button: button}, true
	}
	return nil, false
}

func keyEvent(k glfw.Key, action glfw.Action) interaction.Event {
	key := interaction.KeyOther
	if k == glfw.KeyEscape {
		key = interaction.KeyEscape
	}
	return interaction.KeyChanged{Key: key, Down: action != glfw.Release}
}

// pointerTracker turns absolute screen positions into relative motion.
// Motion is emitted before the cursor update so a pending gesture is
// classified from where the pointer was when it started moving.
type pointerTracker struct {
	last  platform.Point
	valid bool
}

func (t *pointerTracker) observe(screen platform.Point, x, y float64) []interaction.Event {
	events := make([]interaction.Event, 0, 2)
	if t.valid {
		dx, dy := screen.X-t.last.X, screen.Y-t.last.Y
		if dx != 0 || dy != 0 {
			events = append(events, interaction.Motion{DX: float64(dx), DY: float64(dy)})
		}
	}
	t.last, t.valid = screen, true
	return append(events, interaction.CursorMoved{X: x, Y: y})
}
