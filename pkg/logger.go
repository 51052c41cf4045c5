package pkg

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging surface used by the service layer. Fields are
// alternating key/value pairs.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	WithRequestID(requestID string) Logger
	SetLevel(level string) error
	SetOutput(output io.Writer) error
}

// standardLogger implements the Logger interface using slog
type standardLogger struct {
	logger    *slog.Logger
	level     slog.Level
	format    string
	output    io.Writer
	mu        sync.RWMutex
	requestID string
}

// NewLogger creates a new standard logger wrapping the given slog logger.
func NewLogger(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}

	return &standardLogger{
		logger: logger,
		level:  slog.LevelInfo,
		format: "text",
		output: os.Stderr,
	}
}

// NewTextLogger creates a text-format logger writing to the given output.
func NewTextLogger(output io.Writer, level string) (Logger, error) {
	return newHandlerLogger(output, level, "text")
}

// NewRotatingFileLogger creates a logger writing to a size-rotated log
// file. Rotation is handled by lumberjack.
func NewRotatingFileLogger(file string, maxSizeMB, maxBackups int, level, format string) (Logger, error) {
	output := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
	return newHandlerLogger(output, level, format)
}

func newHandlerLogger(output io.Writer, level, format string) (Logger, error) {
	slogLevel, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}

	handler, err := buildLogHandler(output, slogLevel, format)
	if err != nil {
		return nil, err
	}

	return &standardLogger{
		logger: slog.New(handler),
		level:  slogLevel,
		format: format,
		output: output,
	}, nil
}

func buildLogHandler(output io.Writer, level slog.Level, format string) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "", "text":
		return slog.NewTextHandler(output, opts), nil
	case "json":
		return slog.NewJSONHandler(output, opts), nil
	default:
		return nil, NewConfigurationError("log.format", "must be one of text, json")
	}
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, NewConfigurationError("log.level", "must be one of debug, info, warn, error")
	}
}

// Debug logs a debug message
func (l *standardLogger) Debug(msg string, fields ...interface{}) {
	l.log(slog.LevelDebug, msg, fields...)
}

// Info logs an info message
func (l *standardLogger) Info(msg string, fields ...interface{}) {
	l.log(slog.LevelInfo, msg, fields...)
}

// Warn logs a warning message
func (l *standardLogger) Warn(msg string, fields ...interface{}) {
	l.log(slog.LevelWarn, msg, fields...)
}

// Error logs an error message
func (l *standardLogger) Error(msg string, fields ...interface{}) {
	l.log(slog.LevelError, msg, fields...)
}

func (l *standardLogger) log(level slog.Level, msg string, fields ...interface{}) {
	l.mu.RLock()
	logger := l.logger
	requestID := l.requestID
	l.mu.RUnlock()

	if requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	logger.Log(context.Background(), level, msg, fields...)
}

// WithRequestID returns a logger that stamps every line with the request id.
func (l *standardLogger) WithRequestID(requestID string) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &standardLogger{
		logger:    l.logger,
		level:     l.level,
		format:    l.format,
		output:    l.output,
		requestID: requestID,
	}
}

// SetLevel sets the log level
func (l *standardLogger) SetLevel(level string) error {
	slogLevel, err := parseLogLevel(level)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = slogLevel

	handler, err := buildLogHandler(l.output, slogLevel, l.format)
	if err != nil {
		return err
	}
	l.logger = slog.New(handler)

	return nil
}

// SetOutput sets the output writer
func (l *standardLogger) SetOutput(output io.Writer) error {
	if output == nil {
		output = os.Stderr
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.output = output

	handler, err := buildLogHandler(output, l.level, l.format)
	if err != nil {
		return err
	}
	l.logger = slog.New(handler)

	return nil
}
