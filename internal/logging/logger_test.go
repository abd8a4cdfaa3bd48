package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		inRange bool
	}{
		{"0", zerolog.ErrorLevel, true},
		{"1", zerolog.WarnLevel, true},
		{"2", zerolog.InfoLevel, true},
		{"3", zerolog.DebugLevel, true},
		{"4", zerolog.ErrorLevel, false},
		{"-1", zerolog.ErrorLevel, false},
		{"100", zerolog.ErrorLevel, false},
		{"", zerolog.ErrorLevel, true},
		{"debug", zerolog.ErrorLevel, true},
		{"2.5", zerolog.ErrorLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseVerbosity(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.inRange, ok)
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	console := false
	log, err := New(Config{Level: zerolog.WarnLevel, Console: &console, Out: &buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("arg", "color").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "color", entry["arg"])
}

func TestNew_ConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	console := true
	log, err := New(Config{Level: zerolog.DebugLevel, Console: &console, Out: &buf})
	require.NoError(t, err)

	log.Debug().Msg("uniform updated")
	assert.Contains(t, buf.String(), "uniform updated")
	assert.Contains(t, buf.String(), "DBG")
}

func TestNew_RejectsInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: zerolog.Level(42)})
	assert.Error(t, err)
}
