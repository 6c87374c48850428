package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNew_NonTerminalUsesTextHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug)

	log.Warn("careful")

	// logfmt, not ANSI-colored terminal output
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.False(t, strings.Contains(out, "\x1b["), "unexpected ANSI escapes: %q", out)
}

func TestSetup_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := Setup(&buf, true)

	log.Debug("visible in verbose mode")
	assert.Contains(t, buf.String(), "visible in verbose mode")
}
