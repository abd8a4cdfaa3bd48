// Package assets holds files compiled into the binary.
package assets

import _ "embed"

// BlackBackground is a solid black 1920x1080 PNG used when wallpaper
// compositing is off.
//
//go:embed black_1920x1080.png
var BlackBackground []byte
