package config

import (
	"fmt"
)

const (
	DefaultTitle       = "hideme"
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultEdgePadding = 100
	DefaultColor       = "1,0,0,1"
	DefaultLogLevel    = "0"
)

// Config holds the startup settings for the overlay. Command-line flags are
// applied on top of whatever the config file provides.
type Config struct {
	// Color is the clear color as "r,g,b,a"; see ParseColor.
	Color string `yaml:"color"`
	// LogLevel is the verbosity 0 (errors) to 3 (debug).
	LogLevel string `yaml:"log_level"`
	// Background enables wallpaper compositing.
	Background bool `yaml:"background"`
	// BackgroundImage replaces the desktop wallpaper lookup with a fixed file.
	BackgroundImage string `yaml:"background_image,omitempty"`
	// EdgePadding is the margin in pixels that turns a drag into a resize.
	EdgePadding int    `yaml:"edge_padding"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Title       string `yaml:"title"`
	// ReconfigureOnResize resizes the GL viewport whenever the framebuffer size
	// changes. Set to false to keep the initial surface size.
	ReconfigureOnResize bool `yaml:"reconfigure_on_resize"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Color:               DefaultColor,
		LogLevel:            DefaultLogLevel,
		Background:          false,
		EdgePadding:         DefaultEdgePadding,
		Width:               DefaultWidth,
		Height:              DefaultHeight,
		Title:               DefaultTitle,
		ReconfigureOnResize: true,
	}
}

// Validate checks values that would make the overlay unusable.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.EdgePadding < 0 {
		return fmt.Errorf("edge_padding must be >= 0, got %d", c.EdgePadding)
	}
	if c.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	return nil
}
