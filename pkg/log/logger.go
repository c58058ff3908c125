package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name (debug|info|warn|error|fatal) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("log: unknown level %q", s)
	}
}

// Fields is a map of field names to values.
type Fields map[string]any

// Entry is a single log entry handed to formatters and outputs.
type Entry struct {
	Level     Level
	Message   string
	Fields    Fields
	Timestamp time.Time
}

// Logger is the logging interface used throughout the CLI.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	// With returns a derived Logger carrying additional fields.
	With(fields ...Field) Logger
	// WithComponent tags logs with a component name.
	WithComponent(component string) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// Formatter renders an Entry to bytes.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// Output receives formatted entries.
type Output interface {
	Write(entry *Entry, formatted []byte) error
	Close() error
}

// LoggerOption configures a logger at construction time.
type LoggerOption func(*BaseLogger)

// core is the state shared by a logger and everything derived from it with
// With/WithComponent, so SetLevel on any of them affects the whole family.
type core struct {
	level     *slog.LevelVar
	formatter Formatter
	outputs   []Output
}

// BaseLogger implements Logger on top of a slog pipeline.
type BaseLogger struct {
	core *core
	slog *slog.Logger
}

// exit is swapped out by tests of Fatal.
var exit = os.Exit

// NewLogger creates a logger. Without options it logs at InfoLevel, in text
// form, to the console.
func NewLogger(options ...LoggerOption) Logger {
	c := &core{
		level:     new(slog.LevelVar),
		formatter: &TextFormatter{},
	}
	c.level.Set(toSlogLevel(InfoLevel))

	logger := &BaseLogger{core: c}
	for _, option := range options {
		option(logger)
	}
	if len(c.outputs) == 0 {
		c.outputs = append(c.outputs, NewConsoleOutput())
	}

	logger.slog = slog.New(&bridgeHandler{core: c})
	return logger
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(l *BaseLogger) {
		l.core.level.Set(toSlogLevel(level))
	}
}

// WithFormatter sets the log formatter.
func WithFormatter(formatter Formatter) LoggerOption {
	return func(l *BaseLogger) {
		l.core.formatter = formatter
	}
}

// WithOutput adds an output to the logger.
func WithOutput(output Output) LoggerOption {
	return func(l *BaseLogger) {
		l.core.outputs = append(l.core.outputs, output)
	}
}

func (l *BaseLogger) log(level slog.Level, msg string, fields []Field) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}
	l.slog.LogAttrs(ctx, level, msg, toAttrs(fields)...)
}

func (l *BaseLogger) Debug(msg string, fields ...Field) { l.log(slog.LevelDebug, msg, fields) }
func (l *BaseLogger) Info(msg string, fields ...Field)  { l.log(slog.LevelInfo, msg, fields) }
func (l *BaseLogger) Warn(msg string, fields ...Field)  { l.log(slog.LevelWarn, msg, fields) }
func (l *BaseLogger) Error(msg string, fields ...Field) { l.log(slog.LevelError, msg, fields) }

// Fatal logs at FatalLevel and terminates the process.
func (l *BaseLogger) Fatal(msg string, fields ...Field) {
	l.log(slogFatal, msg, fields)
	exit(1)
}

// With returns a derived Logger carrying additional fields.
func (l *BaseLogger) With(fields ...Field) Logger {
	nl := *l
	nl.slog = l.slog.With(toArgs(fields)...)
	return &nl
}

// WithComponent tags logs with a component name.
func (l *BaseLogger) WithComponent(component string) Logger {
	return l.With(F("component", component))
}

// SetLevel sets the minimum log level for this logger and all loggers
// derived from it.
func (l *BaseLogger) SetLevel(level Level) {
	l.core.level.Set(toSlogLevel(level))
}

// GetLevel returns the current minimum log level.
func (l *BaseLogger) GetLevel() Level {
	return fromSlogLevel(l.core.level.Level())
}
