// Package logging configures the charm logger shared by every binary.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// Config controls logger construction
type Config struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// DefaultConfig logs info and above as text to stderr.
// Stdout belongs to the TUI and to the MCP stdio transport.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Output: os.Stderr,
	}
}

var defaultLogger atomic.Pointer[charmlog.Logger]

func init() {
	defaultLogger.Store(New(DefaultConfig()))
}

// New creates a logger from cfg
func New(cfg Config) *charmlog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	logger := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           ParseLevel(cfg.Level),
	})
	if cfg.JSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	}
	return logger
}

// ParseLevel maps a level name to a charm level, defaulting to info
func ParseLevel(level string) charmlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return charmlog.DebugLevel
	case "warn", "warning":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// Init replaces the package default logger
func Init(cfg Config) *charmlog.Logger {
	logger := New(cfg)
	defaultLogger.Store(logger)
	return logger
}

// Default returns the package default logger
func Default() *charmlog.Logger {
	return defaultLogger.Load()
}

// Discard returns a logger that drops everything, for tests
func Discard() *charmlog.Logger {
	return charmlog.New(io.Discard)
}
