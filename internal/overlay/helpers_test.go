package overlay

import (
	"github.com/rs/zerolog"

	"github.com/1broseidon/hideme/internal/platform"
)

type fakeWindow struct {
	pos  platform.Point
	size platform.Size
}

func (w *fakeWindow) OuterPosition() (platform.Point, error) { return w.pos, nil }
func (w *fakeWindow) SetOuterPosition(p platform.Point) { w.pos = p }
func (w *fakeWindow) InnerSize() platform.Size { return w.size }
func (w *fakeWindow) SetInnerSize(s platform.Size) { w.size = s }

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
