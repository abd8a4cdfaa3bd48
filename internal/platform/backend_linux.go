//go:build linux

package platform

import (
	"fmt"
	"os"

	"github.com/1broseidon/hideme/internal/x11"
)

// LinuxBackend answers monitor and stacking queries over an X11 connection.
// The monitor list is cached and refreshed on RandR screen changes.
type LinuxBackend struct {
	conn     *x11.Connection
	monitors DisplayCache
	watching bool
}

var _ Native = (*LinuxBackend)(nil)

// OpenNative connects to the X server named by $DISPLAY.
func OpenNative() (Native, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	b := &LinuxBackend{conn: conn}
	b.monitors.Load = b.Displays
	b.watching = conn.WatchScreenChanges() == nil
	return b, nil
}

// Close closes the underlying X11 connection.
func (b *LinuxBackend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Displays returns all active monitors reported by RandR.
func (b *LinuxBackend) Displays() ([]Display, error) {
	monitors, err := b.conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	displays := make([]Display, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, displayFromMonitor(m))
	}
	return displays, nil
}

// DisplayFor implements MonitorLocator.
func (b *LinuxBackend) DisplayFor(window Rect) (Display, error) {
	if !b.watching || b.conn.ScreenChanged() {
		b.monitors.Invalidate()
	}
	return b.monitors.DisplayFor(window)
}

// KeepAbove sets _NET_WM_STATE_ABOVE on the window this process owns with
// the given title.
func (b *LinuxBackend) KeepAbove(title string) error {
	wid, err := b.conn.FindOwnWindow(title, os.Getpid())
	if err != nil {
		return err
	}
	return b.conn.KeepAbove(wid)
}

// Pointer implements Native.
func (b *LinuxBackend) Pointer() (Point, error) {
	x, y, err := b.conn.PointerPosition()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func displayFromMonitor(m x11.Monitor) Display {
	return Display{
		ID:   m.ID,
		Name: m.Name,
		Bounds: Rect{
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		},
	}
}
