package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// FindOwnWindow returns the client whose _NET_WM_NAME equals title and
// whose _NET_WM_PID is pid.
func (c *Connection) FindOwnWindow(title string, pid int) (xproto.Window, error) {
	if title == "" {
		return 0, fmt.Errorf("empty window title")
	}
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get client list: %w", err)
	}
	for _, win := range clients {
		name, err := ewmh.WmNameGet(c.XUtil, win)
		if err != nil || name != title {
			continue
		}
		owner, err := ewmh.WmPidGet(c.XUtil, win)
		if err != nil {
			continue
		}
		if matchClient(name, owner, title, pid) {
			return win, nil
		}
	}
	return 0, fmt.Errorf("no window titled %q owned by pid %d", title, pid)
}

// matchClient requires an exact title so windows that merely mention the
// title, such as an editor with a hideme file open, are never picked.
func matchClient(name string, owner uint, title string, pid int) bool {
	return name == title && pid > 0 && owner == uint(pid)
}

// KeepAbove adds _NET_WM_STATE_ABOVE to the window unless it is already set.
func (c *Connection) KeepAbove(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err == nil {
		for _, state := range states {
			if state == "_NET_WM_STATE_ABOVE" {
				return nil
			}
		}
	}

	// 1 = _NET_WM_STATE_ADD
	if err := ewmh.WmStateReq(c.XUtil, windowID, 1, "_NET_WM_STATE_ABOVE"); err != nil {
		return fmt.Errorf("failed to request _NET_WM_STATE_ABOVE: %w", err)
	}
	return nil
}
