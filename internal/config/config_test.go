package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.EdgePadding)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, "hideme", cfg.Title)
	assert.False(t, cfg.Background)

	color, err := ParseColor(cfg.Color)
	require.NoError(t, err)
	assert.Equal(t, FallbackColor, color)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative padding", func(c *Config) { c.EdgePadding = -5 }},
		{"empty title", func(c *Config) { c.Title = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(writeConfig(t, "# empty\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		`color: "0.2,0.3,0.4,0.5"`,
		`log_level: 2`,
		`background: true`,
		`background_image: /tmp/wall.png`,
		`edge_padding: 40`,
		`width: 800`,
		`reconfigure_on_resize: false`,
		"",
	}, "\n"))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "0.2,0.3,0.4,0.5", cfg.Color)
	assert.Equal(t, "2", cfg.LogLevel)
	assert.True(t, cfg.Background)
	assert.Equal(t, "/tmp/wall.png", cfg.BackgroundImage)
	assert.Equal(t, 40, cfg.EdgePadding)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.False(t, cfg.ReconfigureOnResize)
}

func TestLoadFromPath_RejectsUnknownKeys(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadFromPath_RejectsInvalidValues(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "width: -10\n"))
	assert.Error(t, err)
}

func TestDefaultConfigPath_UsesXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hideme", "config.yaml"), path)
}
