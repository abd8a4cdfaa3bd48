package render

import (
	"encoding/binary"
	"math"

	"github.com/1broseidon/hideme/internal/platform"
)

// uniformBlockSize is the std140 size of the Placement block: two vec2s.
const uniformBlockSize = 16

// Uniforms is the window rectangle normalized to the monitor it is on, used
// as the texture-coordinate window into the background image.
type Uniforms struct {
	TopLeft     [2]float32
	BottomRight [2]float32
}

// Normalize maps window, in screen pixels, into 0..1 coordinates of monitor.
// The result is relative to the monitor's own origin. A monitor with a zero
// dimension yields the zero Uniforms.
func Normalize(window, monitor platform.Rect) Uniforms {
	if monitor.Width <= 0 || monitor.Height <= 0 {
		return Uniforms{}
	}
	mw := float32(monitor.Width)
	mh := float32(monitor.Height)
	x := float32(window.X - monitor.X)
	y := float32(window.Y - monitor.Y)

	return Uniforms{
		TopLeft:     [2]float32{x / mw, y / mh},
		BottomRight: [2]float32{(x + float32(window.Width)) / mw, (y + float32(window.Height)) / mh},
	}
}

// Bytes encodes u with std140 layout in native byte order.
func (u Uniforms) Bytes() []byte {
	buf := make([]byte, uniformBlockSize)
	vals := [4]float32{u.TopLeft[0], u.TopLeft[1], u.BottomRight[0], u.BottomRight[1]}
	for i, v := range vals {
		binary.NativeEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
