package wallpaper

import (
	"bufio"
	"net/url"
	"strings"
)

// fromURI turns file:// URIs into local paths and leaves anything else alone.
func fromURI(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "file://") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil {
		return strings.TrimPrefix(s, "file://")
	}
	return u.Path
}

// parseGSettingsValue handles output such as "'file:///home/me/a%20b.jpg'\n".
func parseGSettingsValue(out string) string {
	v := strings.TrimSpace(out)
	v = strings.Trim(v, "'\"")
	return fromURI(v)
}

// parseINIKey returns the first value of key in an INI-style file, optionally
// restricted to sections whose header contains section.
func parseINIKey(data, section, key string) string {
	inSection := section == ""
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if section != "" {
				inSection = strings.Contains(line, section)
			}
			continue
		}
		if !inSection {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(k) != key {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return fromURI(v)
		}
	}
	return ""
}

// parseFehbg extracts the image from a ~/.fehbg script such as
// "feh --no-fehbg --bg-fill '/home/me/pic.jpg' ".
func parseFehbg(data string) string {
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "feh ") || !strings.Contains(line, "--bg-") {
			continue
		}
		if start := strings.IndexByte(line, '\''); start >= 0 {
			if end := strings.IndexByte(line[start+1:], '\''); end >= 0 {
				return line[start+1 : start+1+end]
			}
		}
		fields := strings.Fields(line)
		return strings.Trim(fields[len(fields)-1], "\"")
	}
	return ""
}

// pickXfconfProperty chooses the last-image property for the first monitor and
// workspace from "xfconf-query -l" output.
func pickXfconfProperty(list string) string {
	var first string
	sc := bufio.NewScanner(strings.NewReader(list))
	for sc.Scan() {
		prop := strings.TrimSpace(sc.Text())
		if !strings.HasSuffix(prop, "/last-image") {
			continue
		}
		if strings.Contains(prop, "workspace0/") {
			return prop
		}
		if first == "" {
			first = prop
		}
	}
	return first
}
