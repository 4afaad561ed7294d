package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("Info"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}

func TestLogFilePath(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	path := LogFilePath("/var/log/stepshot", start)
	assert.Equal(t, "/var/log/stepshot/stepshot.20260314_150926.log", path)
}

func TestSetupWritesToFile(t *testing.T) {
	var buf bytes.Buffer
	log, err := Setup(Options{Level: "debug", File: &buf})
	require.NoError(t, err)

	log.Debug().Str("k", "v").Msg("hello from the test")

	out := buf.String()
	assert.Contains(t, out, "Logging set up")
	assert.Contains(t, out, "hello from the test")
	// The file sink is the no-color writer.
	assert.NotContains(t, out, "\x1b[")
}

func TestSetupWithoutFile(t *testing.T) {
	log, err := Setup(Options{Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
	log.Info().Msg("suppressed")
}
