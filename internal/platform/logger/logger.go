package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"kiosk/internal/platform/config"
)

// New returns a zerolog logger writing to stdout, JSON by default and a
// human readable console layout when cfg.LogFormat is "console".
func New(cfg config.Server) zerolog.Logger {
	return newWithWriter(cfg, os.Stdout)
}

func newWithWriter(cfg config.Server, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "kiosk").Logger()
}
