// Package logger builds the logrus logger shared by the server and CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects level, format and destination.
type Config struct {
	// Level is a logrus level name; unknown names fall back to info.
	Level string
	// Format is "json" or "text".
	Format string
	// Out defaults to os.Stdout.
	Out io.Writer
}

// FromEnv reads LOG_LEVEL (default "info") and LOG_FORMAT (default "text").
func FromEnv() Config {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	return Config{
		Level:  level,
		Format: strings.ToLower(os.Getenv("LOG_FORMAT")),
	}
}

// New returns a logger configured by cfg.
func New(cfg Config) *logrus.Logger {
	log := logrus.New()

	// 1. Level
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// 2. Formatter: json for collection, text for local work.
	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	// 3. Output
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)
	return log
}
