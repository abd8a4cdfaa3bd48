//go:build darwin

package wallpaper

import (
	"context"
	"strings"
)

func (f *Finder) strategies() []strategy {
	return []strategy{{"osascript", f.systemEvents}}
}

func (f *Finder) systemEvents(ctx context.Context) (string, error) {
	out, err := f.output(ctx, "osascript", "-e",
		`tell application "System Events" to get picture of current desktop`)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
