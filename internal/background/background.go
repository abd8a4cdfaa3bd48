// Package background resolves the encoded image bytes handed to the renderer.
package background

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/1broseidon/hideme/internal/assets"
)

// PathFinder returns the path of the desktop wallpaper.
type PathFinder interface {
	Path(ctx context.Context) (string, error)
}

// Options selects where the background comes from.
type Options struct {
	// Enabled turns on wallpaper compositing. When false the bundled black
	// image is returned and nothing is read from disk.
	Enabled bool
	// Image, when set, is read instead of asking Finder.
	Image  string
	Finder PathFinder
}

// Load returns the encoded background image. Any failure to locate or read
// the file is returned as an error; callers treat it as fatal.
func Load(ctx context.Context, opts Options, log zerolog.Logger) ([]byte, error) {
	if !opts.Enabled {
		log.Debug().Msg("background compositing disabled, using bundled image")
		return assets.BlackBackground, nil
	}

	path := opts.Image
	if path == "" {
		if opts.Finder == nil {
			return nil, fmt.Errorf("couldn't read wallpaper file: no wallpaper lookup available")
		}
		p, err := opts.Finder.Path(ctx)
		if err != nil {
			return nil, fmt.Errorf("couldn't read wallpaper file, check permissions: %w", err)
		}
		path = p
	}

	log.Info().Str("path", path).Msg("loading background image")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read bytes from wallpaper file: %w", err)
	}
	return data, nil
}
