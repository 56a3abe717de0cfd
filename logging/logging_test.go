package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/airroute/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "info", "")
	require.NoError(t, err)

	log.Debug("hidden")
	log.With("component", "store").WithGroup("load").Info("network loaded", "airports", 7, "file", "flight network.dat")

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "\n"), out)
	assert.Contains(t, out, " INFO network loaded")
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "load.airports=7")
	assert.Contains(t, out, `load.file="flight network.dat"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "debug", logging.FormatJSON)
	require.NoError(t, err)

	log.Debug("query", "from", "DEL")
	assert.Contains(t, buf.String(), `"from":"DEL"`)
}

func TestNew_BadFormat(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "info", "xml")
	require.ErrorIs(t, err, logging.ErrBadFormat)
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	log.Error("dropped")
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
