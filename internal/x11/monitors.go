package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
)

// Monitor is one active CRTC in root window coordinates.
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors lists active monitors from the server's current RandR
// configuration without making the server poll its outputs again.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	conn := c.XUtil.Conn()
	resources, err := randr.GetScreenResourcesCurrent(conn, c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil || info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("crtc-%d", i)
		if out, err := randr.GetOutputInfo(conn, info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   name,
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}

	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors found")
	}
	return monitors, nil
}

// WatchScreenChanges asks the server for ScreenChangeNotify events on the
// root window; ScreenChanged reports them.
func (c *Connection) WatchScreenChanges() error {
	err := randr.SelectInputChecked(c.XUtil.Conn(), c.Root, randr.NotifyMaskScreenChange).Check()
	if err != nil {
		return fmt.Errorf("failed to select randr screen change events: %w", err)
	}
	return nil
}

// ScreenChanged drains pending events without blocking and reports whether
// any of them was a RandR screen change.
func (c *Connection) ScreenChanged() bool {
	changed := false
	for {
		ev, xerr := c.XUtil.Conn().PollForEvent()
		if ev == nil && xerr == nil {
			return changed
		}
		if _, ok := ev.(randr.ScreenChangeNotifyEvent); ok {
			changed = true
		}
	}
}
