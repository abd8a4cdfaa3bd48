package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// PointerPosition returns the pointer location relative to the root window.
func (c *Connection) PointerPosition() (int, int, error) {
	reply, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), nil
}
