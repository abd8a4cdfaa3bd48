//go:build windows

package wallpaper

import (
	"context"

	"golang.org/x/sys/windows/registry"
)

func (f *Finder) strategies() []strategy {
	return []strategy{{"registry", f.registry}}
}

func (f *Finder) registry(context.Context) (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	path, _, err := key.GetStringValue("WallPaper")
	if err != nil {
		return "", err
	}
	return path, nil
}
