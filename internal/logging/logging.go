// Package logging sets up the process-wide zerolog logger: colored console
// output, a no-color session log file, and an optional GELF (Graylog)
// transport.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

// parseLevel converts a string log level to a zerolog level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogFilePath builds a session log file path.
func LogFilePath(logsDir string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("stepshot.%s.log", sessionStart.Format("20060102_150405")),
	)
}

// Options configures Setup.
type Options struct {
	Level          string
	File           io.Writer // session log file; nil disables file output
	GraylogEnabled bool
	GraylogAddress string
}

// Setup configures and returns the root logger. Timestamps are UTC RFC3339
// at every sink.
func Setup(opts Options) (zerolog.Logger, error) {
	zerolog.SetGlobalLevel(parseLevel(opts.Level))
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		},
	}
	if opts.File != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.File,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}
	if opts.GraylogEnabled {
		gw, err := gelf.NewWriter(opts.GraylogAddress)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("connecting GELF writer: %w", err)
		}
		writers = append(writers, gw)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Logger()
	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")
	return logger, nil
}
