// Package logger wraps logrus behind the small surface the application
// uses, configured from the logging section of the config.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LoggingConfig mirrors the logging section of the application config.
type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

// Logger is the application logger.
type Logger struct {
	*logrus.Logger
}

// New builds a logger from the supplied config. Unknown values fall back
// to info level, text format, stdout.
func New(cfg LoggingConfig) *Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.SetOutput(output(cfg.Output))

	return &Logger{Logger: log}
}

// Discard returns a logger that drops everything, for tests.
func Discard() *Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Logger{Logger: log}
}

func output(name string) io.Writer {
	switch name {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	case "discard":
		return io.Discard
	default:
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return os.Stdout
		}
		return f
	}
}
