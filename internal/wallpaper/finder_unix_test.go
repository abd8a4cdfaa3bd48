//go:build !windows && !darwin

package wallpaper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func (r *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, cmd)
	out, ok := r.outputs[cmd]
	if !ok {
		return nil, errors.New("exit status 1")
	}
	return []byte(out), nil
}

func newTestFinder(t *testing.T, env map[string]string, outputs map[string]string) (*Finder, *fakeRunner) {
	t.Helper()
	runner := &fakeRunner{outputs: outputs}
	return &Finder{
		Run:    runner,
		Getenv: func(k string) string { return env[k] },
		Home:   t.TempDir(),
	}, runner
}

func TestFinder_GNOME(t *testing.T) {
	f, _ := newTestFinder(t,
		map[string]string{"XDG_CURRENT_DESKTOP": "ubuntu:GNOME"},
		map[string]string{
			"gsettings get org.gnome.desktop.interface color-scheme": "'default'\n",
			"gsettings get org.gnome.desktop.background picture-uri": "'file:///usr/share/backgrounds/light.png'\n",
		})

	path, err := f.Path(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/backgrounds/light.png", path)
}

func TestFinder_GNOMEDark(t *testing.T) {
	f, _ := newTestFinder(t,
		map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"},
		map[string]string{
			"gsettings get org.gnome.desktop.interface color-scheme":      "'prefer-dark'\n",
			"gsettings get org.gnome.desktop.background picture-uri-dark": "'file:///usr/share/backgrounds/dark.png'\n",
			"gsettings get org.gnome.desktop.background picture-uri":      "'file:///usr/share/backgrounds/light.png'\n",
		})

	path, err := f.Path(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/backgrounds/dark.png", path)
}

func TestFinder_XFCE(t *testing.T) {
	prop := "/backdrop/screen0/monitor0/workspace0/last-image"
	f, _ := newTestFinder(t,
		map[string]string{"XDG_CURRENT_DESKTOP": "XFCE"},
		map[string]string{
			"xfconf-query -c xfce4-desktop -l":          prop + "\n",
			"xfconf-query -c xfce4-desktop -p " + prop: "/usr/share/backgrounds/xfce/blue.svg\n",
		})

	path, err := f.Path(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/backgrounds/xfce/blue.svg", path)
}

func TestFinder_KDE(t *testing.T) {
	f, runner := newTestFinder(t, map[string]string{"XDG_CURRENT_DESKTOP": "KDE"}, nil)

	dir := filepath.Join(f.Home, ".config")
	require.NoError(t, os.MkdirAll(dir, 0755))
	data := "[Containments][7][Wallpaper][org.kde.image][General]\nImage=/home/me/k.png\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plasma-org.kde.plasma.desktop-appletsrc"), []byte(data), 0644))

	path, err := f.Path(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/home/me/k.png", path)
	assert.Empty(t, runner.calls)
}

func TestFinder_FallsBackToFeh(t *testing.T) {
	f, _ := newTestFinder(t, map[string]string{"XDG_CURRENT_DESKTOP": "i3"}, nil)
	require.NoError(t, os.WriteFile(filepath.Join(f.Home, ".fehbg"),
		[]byte("#!/bin/sh\nfeh --no-fehbg --bg-fill '/home/me/i3.jpg' \n"), 0644))

	path, err := f.Path(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/home/me/i3.jpg", path)
}

func TestFinder_FallsBackToNitrogenAfterGNOMEFailure(t *testing.T) {
	f, _ := newTestFinder(t, map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"}, nil)
	dir := filepath.Join(f.Home, ".config", "nitrogen")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bg-saved.cfg"),
		[]byte("[xin_-1]\nfile=/home/me/n.png\nmode=5\n"), 0644))

	path, err := f.Path(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/home/me/n.png", path)
}

func TestFinder_NotFound(t *testing.T) {
	f, _ := newTestFinder(t, map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"}, nil)

	_, err := f.Path(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "gnome")
}
