//go:build !windows && !darwin

package wallpaper

import (
	"context"
	"path/filepath"
	"strings"
)

func (f *Finder) strategies() []strategy {
	desktop := strings.ToLower(f.Getenv("XDG_CURRENT_DESKTOP"))
	if desktop == "" {
		desktop = strings.ToLower(f.Getenv("DESKTOP_SESSION"))
	}

	var out []strategy
	switch {
	case strings.Contains(desktop, "cinnamon"):
		out = append(out, strategy{"cinnamon", f.gsettings("org.cinnamon.desktop.background", "picture-uri")})
	case strings.Contains(desktop, "mate"):
		out = append(out, strategy{"mate", f.gsettings("org.mate.background", "picture-filename")})
	case strings.Contains(desktop, "xfce"):
		out = append(out, strategy{"xfce", f.xfce})
	case strings.Contains(desktop, "kde"):
		out = append(out, strategy{"kde", f.kde})
	case strings.Contains(desktop, "lxde"), strings.Contains(desktop, "lxqt"):
		out = append(out, strategy{"pcmanfm", f.pcmanfm})
	case strings.Contains(desktop, "gnome"), strings.Contains(desktop, "unity"),
		strings.Contains(desktop, "pantheon"), strings.Contains(desktop, "budgie"),
		strings.Contains(desktop, "ubuntu"), strings.Contains(desktop, "deepin"):
		out = append(out, strategy{"gnome", f.gnome})
	}

	// Window-manager setters work under any desktop.
	return append(out,
		strategy{"feh", f.feh},
		strategy{"nitrogen", f.nitrogen},
	)
}

func (f *Finder) gsettings(schema, key string) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		out, err := f.output(ctx, "gsettings", "get", schema, key)
		if err != nil {
			return "", err
		}
		return parseGSettingsValue(out), nil
	}
}

// gnome prefers picture-uri-dark when the dark color scheme is active.
func (f *Finder) gnome(ctx context.Context) (string, error) {
	const schema = "org.gnome.desktop.background"
	if scheme, err := f.output(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme"); err == nil &&
		parseGSettingsValue(scheme) == "prefer-dark" {
		if path, err := f.gsettings(schema, "picture-uri-dark")(ctx); err == nil && path != "" {
			return path, nil
		}
	}
	return f.gsettings(schema, "picture-uri")(ctx)
}

func (f *Finder) xfce(ctx context.Context) (string, error) {
	list, err := f.output(ctx, "xfconf-query", "-c", "xfce4-desktop", "-l")
	if err != nil {
		return "", err
	}
	prop := pickXfconfProperty(list)
	if prop == "" {
		return "", ErrNotFound
	}
	out, err := f.output(ctx, "xfconf-query", "-c", "xfce4-desktop", "-p", prop)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (f *Finder) kde(context.Context) (string, error) {
	data, err := f.readFile(filepath.Join(f.configDir(), "plasma-org.kde.plasma.desktop-appletsrc"))
	if err != nil {
		return "", err
	}
	return parseINIKey(data, "[Wallpaper][org.kde.image][General]", "Image"), nil
}

func (f *Finder) pcmanfm(context.Context) (string, error) {
	for _, profile := range []string{"LXDE", "lxqt", "default"} {
		data, err := f.readFile(filepath.Join(f.configDir(), "pcmanfm", profile, "desktop-items-0.conf"))
		if err != nil {
			continue
		}
		if path := parseINIKey(data, "", "wallpaper"); path != "" {
			return path, nil
		}
	}
	return "", ErrNotFound
}

func (f *Finder) feh(context.Context) (string, error) {
	data, err := f.readFile(filepath.Join(f.Home, ".fehbg"))
	if err != nil {
		return "", err
	}
	return parseFehbg(data), nil
}

func (f *Finder) nitrogen(context.Context) (string, error) {
	data, err := f.readFile(filepath.Join(f.configDir(), "nitrogen", "bg-saved.cfg"))
	if err != nil {
		return "", err
	}
	return parseINIKey(data, "", "file"), nil
}

func (f *Finder) configDir() string {
	if dir := f.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(f.Home, ".config")
}
