package overlay

import (
	"errors"

	"github.com/1broseidon/hideme/internal/fault"
	"github.com/1broseidon/hideme/internal/render"
)

// frameAction is what the loop does after a Render call.
type frameAction int

const (
	framePresented frameAction = iota
	// frameSkipped means there was nothing to draw into; wait for events.
	frameSkipped
	// frameDropped means the backend failed this frame only.
	frameDropped
	frameFatal
)

func classifyFrame(err error) frameAction {
	switch {
	case err == nil:
		return framePresented
	case fault.IsFatal(err):
		return frameFatal
	case errors.Is(err, render.ErrSurfaceUnavailable):
		return frameSkipped
	default:
		return frameDropped
	}
}
