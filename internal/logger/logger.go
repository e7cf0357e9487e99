package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config interface {
	LogLevel() string
	LogFile() string
	LogMaxSize() int
}

// New builds a console logger on stderr, teeing to a rotating file when
// LogFile is set. Stdout is left to command output. An unknown level falls
// back to info.
func New(cfg Config) zerolog.Logger {
	return newWithConsole(cfg, os.Stderr)
}

func newWithConsole(cfg Config, console io.Writer) zerolog.Logger {
	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339},
	}
	if cfg.LogFile() != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile(),
			MaxSize:    cfg.LogMaxSize(),
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
}
