package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is shared by the library packages. Commands install it as the
// process default through Configure.
var Logger *log.Logger

// LogLevel represents available log levels
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Options describes how a command wants its logs written.
type Options struct {
	Level  LogLevel
	Format string // text, json or logfmt
	Prefix string
	// Caller adds the calling file and line to text output
	Caller bool
	Output io.Writer
}

// InitLogger initializes the global logger with configuration from environment variables
func InitLogger() {
	Logger = newLogger(Options{Level: ParseLevel(os.Getenv("LOG_LEVEL")), Prefix: "noise"})
	Logger.Debug("Logger initialized successfully", "level", Logger.GetLevel())
}

// Configure replaces the global logger and makes it the default for the
// top level log functions.
func Configure(opts Options) *log.Logger {
	Logger = newLogger(opts)
	log.SetDefault(Logger)
	return Logger
}

func newLogger(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           opts.Level.charm(),
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	switch strings.ToLower(opts.Format) {
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		logger.SetReportCaller(opts.Caller)
	}
	return logger
}

// ParseLevel maps a level name to a LogLevel, defaulting to debug
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return DebugLevel
	}
}

func (l LogLevel) charm() log.Level {
	switch l {
	case InfoLevel:
		return log.InfoLevel
	case WarnLevel:
		return log.WarnLevel
	case ErrorLevel:
		return log.ErrorLevel
	default:
		return log.DebugLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *log.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}

// WithFields creates a logger with contextual fields
func WithFields(fields ...interface{}) *log.Logger {
	return GetLogger().With(fields...)
}

// WithPreset tags log lines with the preset being rendered or sampled.
func WithPreset(name string) *log.Logger {
	return WithFields("preset", name)
}

// WithShape tags log lines with a buffer shape.
func WithShape(shape []int) *log.Logger {
	return WithFields("shape", shape)
}

// Since tags log lines with an operation and the time elapsed since start.
func Since(operation string, start time.Time) *log.Logger {
	return WithFields("operation", operation, "duration", time.Since(start).Round(time.Microsecond))
}
