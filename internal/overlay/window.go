package overlay

import (
	"fmt"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"github.com/1broseidon/hideme/internal/interaction"
	"github.com/1broseidon/hideme/internal/platform"
	"github.com/1broseidon/hideme/internal/render"
)

type pointerSource interface {
	Pointer() (platform.Point, error)
}

// window adapts a glfw window to the interaction and render packages.
type window struct {
	win     *glfw.Window
	locator platform.MonitorLocator
	pointer pointerSource
	log     zerolog.Logger
}

var (
	_ interaction.Window    = (*window)(nil)
	_ render.GeometrySource = (*window)(nil)
)

// OuterPosition returns the window position. glfw panics on compositors that
// do not expose it (Wayland), which is reported as an error instead.
func (w *window) OuterPosition() (pos platform.Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("window position unavailable: %v", r)
		}
	}()
	x, y := w.win.GetPos()
	return platform.Point{X: x, Y: y}, nil
}

func (w *window) SetOuterPosition(p platform.Point) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Warn().Interface("error", r).Msg("couldn't move window")
		}
	}()
	w.win.SetPos(p.X, p.Y)
}

func (w *window) InnerSize() platform.Size {
	width, height := w.win.GetSize()
	return platform.Size{Width: width, Height: height}
}

func (w *window) SetInnerSize(s platform.Size) {
	s = clampSize(s)
	w.win.SetSize(s.Width, s.Height)
}

// Placement implements render.GeometrySource.
func (w *window) Placement() (platform.Rect, error) {
	pos, err := w.OuterPosition()
	return platform.RectFrom(pos, w.InnerSize()), err
}

// Monitor implements render.GeometrySource.
func (w *window) Monitor() (platform.Rect, error) {
	placement, _ := w.Placement()
	d, err := w.locator.DisplayFor(placement)
	if err != nil {
		return platform.Rect{}, err
	}
	return d.Bounds, nil
}

// screenPointer converts a window-relative cursor position to screen
// coordinates, preferring the native pointer query when there is one.
func (w *window) screenPointer(x, y float64) platform.Point {
	if w.pointer != nil {
		if p, err := w.pointer.Pointer(); err == nil {
			return p
		}
	}
	pos, _ := w.OuterPosition()
	return platform.Point{X: pos.X + int(math.Floor(x)), Y: pos.Y + int(math.Floor(y))}
}

// clampSize keeps both dimensions at least one pixel.
func clampSize(s platform.Size) platform.Size {
	return platform.Size{Width: max(1, s.Width), Height: max(1, s.Height)}
}

// glfwMonitors locates displays through glfw's monitor list.
type glfwMonitors struct{}

func (glfwMonitors) DisplayFor(window platform.Rect) (platform.Display, error) {
	monitors := glfw.GetMonitors()
	displays := make([]platform.Display, 0, len(monitors))
	for i, m := range monitors {
		mode := m.GetVideoMode()
		if mode == nil {
			continue
		}
		x, y := m.GetPos()
		displays = append(displays, platform.Display{
			ID:     i,
			Name:   m.GetName(),
			Bounds: platform.Rect{X: x, Y: y, Width: mode.Width, Height: mode.Height},
		})
	}
	return platform.BestDisplay(displays, window)
}
