package logging

import (
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

var _ logger.Logger = (*WailsLoggerAdapter)(nil)

// WailsLoggerAdapter routes host framework output into the shell logger.
// Every entry is tagged source=wails; blank lines are dropped.
type WailsLoggerAdapter struct {
	logger Logger
}

// NewWailsLoggerAdapter wraps l, or the default logger when l is nil
func NewWailsLoggerAdapter(l Logger) *WailsLoggerAdapter {
	if l == nil {
		l = NewDefaultLogger()
	}
	return &WailsLoggerAdapter{logger: l}
}

func (w *WailsLoggerAdapter) emit(level logger.LogLevel, message string, extra ...interface{}) {
	message = strings.TrimRight(message, "\r\n")
	if strings.TrimSpace(message) == "" {
		return
	}
	fields := append([]interface{}{"source", "wails"}, extra...)

	switch level {
	case logger.TRACE, logger.DEBUG:
		w.logger.Debug(message, fields...)
	case logger.WARNING:
		w.logger.Warn(message, fields...)
	case logger.ERROR:
		w.logger.Error(message, fields...)
	default:
		w.logger.Info(message, fields...)
	}
}

func (w *WailsLoggerAdapter) Print(message string)   { w.emit(logger.INFO, message) }
func (w *WailsLoggerAdapter) Trace(message string)   { w.emit(logger.TRACE, message, "level", "trace") }
func (w *WailsLoggerAdapter) Debug(message string)   { w.emit(logger.DEBUG, message) }
func (w *WailsLoggerAdapter) Info(message string)    { w.emit(logger.INFO, message) }
func (w *WailsLoggerAdapter) Warning(message string) { w.emit(logger.WARNING, message) }
func (w *WailsLoggerAdapter) Error(message string)   { w.emit(logger.ERROR, message) }

// Fatal is logged at error level; the framework does not get to exit the shell
func (w *WailsLoggerAdapter) Fatal(message string) {
	w.emit(logger.ERROR, message, "level", "fatal")
}
