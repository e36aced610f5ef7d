package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv selects the minimum log level when set
const LevelEnv = "PAKE_LOG_LEVEL"

// Logger interface for shell components
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// DefaultLogger writes structured JSON lines through zap
type DefaultLogger struct {
	sugar *zap.SugaredLogger
}

// NewDefaultLogger creates a logger at the level named by PAKE_LOG_LEVEL
func NewDefaultLogger() Logger {
	return NewLogger(os.Getenv(LevelEnv))
}

// NewLogger creates a JSON logger writing to stderr at the given level.
// Unknown or empty levels fall back to info.
func NewLogger(level string) Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil

	z, err := cfg.Build()
	if err != nil {
		// stderr sink failed to open; nothing sensible left to log to
		z = zap.NewNop()
	}
	return NewFromZap(z)
}

// NewFromZap wraps an existing zap logger. Caller annotations point at the
// code calling Debug/Info/Warn/Error, not at this wrapper.
func NewFromZap(z *zap.Logger) Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &DefaultLogger{sugar: z.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// With returns a logger that adds the given fields to every entry
func (l *DefaultLogger) With(fields ...interface{}) Logger {
	return &DefaultLogger{sugar: l.sugar.With(fields...)}
}

// Sync flushes buffered entries
func (l *DefaultLogger) Sync() error {
	return l.sugar.Sync()
}

func (l *DefaultLogger) Debug(msg string, fields ...interface{}) {
	l.sugar.Debugw(msg, fields...)
}

func (l *DefaultLogger) Info(msg string, fields ...interface{}) {
	l.sugar.Infow(msg, fields...)
}

func (l *DefaultLogger) Warn(msg string, fields ...interface{}) {
	l.sugar.Warnw(msg, fields...)
}

func (l *DefaultLogger) Error(msg string, fields ...interface{}) {
	l.sugar.Errorw(msg, fields...)
}

// WithSession tags every entry of logger with the launch session id.
// Loggers that cannot carry fields are returned unchanged.
func WithSession(logger Logger, session string) Logger {
	if dl, ok := logger.(*DefaultLogger); ok {
		return dl.With("session", session)
	}
	return logger
}

// ShellError interface for error classification (to avoid circular imports)
type ShellError interface {
	Error() string
	GetCode() string
	IsFatal() bool
	GetContext() map[string]string
	GetTimestamp() time.Time
}

// LogError logs shell errors with their classification and context
func LogError(logger Logger, err error, operation string, context map[string]interface{}) {
	if err == nil {
		return
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	if shellErr, ok := err.(ShellError); ok {
		fields := []interface{}{
			"operation", operation,
			"error_code", shellErr.GetCode(),
			"fatal", shellErr.IsFatal(),
			"timestamp", shellErr.GetTimestamp(),
		}

		for k, v := range shellErr.GetContext() {
			fields = append(fields, k, v)
		}

		for k, v := range context {
			fields = append(fields, k, v)
		}

		logger.Error(fmt.Sprintf("Shell error: %s", err.Error()), fields...)
	} else {
		fields := []interface{}{
			"operation", operation,
			"error_type", fmt.Sprintf("%T", err),
		}

		for k, v := range context {
			fields = append(fields, k, v)
		}

		logger.Error(fmt.Sprintf("Unexpected error: %s", err.Error()), fields...)
	}
}

// LogOperation logs a completed shell operation
func LogOperation(logger Logger, operation string, duration time.Duration, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	fields := []interface{}{
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	}

	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Info(fmt.Sprintf("Operation completed: %s", operation), fields...)
}
