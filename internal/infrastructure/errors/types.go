package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode represents the classes of failure the shell can report
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeConfigParse
	ErrCodeInvalidURL
	ErrCodeHomeDirNotFound
	ErrCodeDirectoryCreate
	ErrCodeWindowOperation
	ErrCodeZoomApply
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodeConfigParse:
		return "CONFIG_PARSE"
	case ErrCodeInvalidURL:
		return "INVALID_URL"
	case ErrCodeHomeDirNotFound:
		return "HOME_DIR_NOT_FOUND"
	case ErrCodeDirectoryCreate:
		return "DIRECTORY_CREATE"
	case ErrCodeWindowOperation:
		return "WINDOW_OPERATION"
	case ErrCodeZoomApply:
		return "ZOOM_APPLY"
	default:
		return "UNKNOWN"
	}
}

// ShellError represents a shell failure with context and fatality information
type ShellError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Fatal     bool              // whether the process must stop
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *ShellError) Error() string {
	if e == nil {
		return "shell error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	if e.Fatal {
		parts = append(parts, "fatal=true")
	}

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "shell error" + contextStr
}

func (e *ShellError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *ShellError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*ShellError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// IsFatal returns whether the error must terminate the process
func (e *ShellError) IsFatal() bool {
	if e == nil {
		return false
	}
	return e.Fatal
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *ShellError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *ShellError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *ShellError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error has been handed to another goroutine.
func (e *ShellError) WithContext(key, value string) *ShellError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// New creates a new shell error with the given parameters
func New(op string, err error, code ErrorCode) *ShellError {
	return &ShellError{
		Op:        op,
		Err:       err,
		Code:      code,
		Fatal:     isFatalCode(code),
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewWithContext creates a new shell error with additional context
func NewWithContext(op string, err error, code ErrorCode, context map[string]string) *ShellError {
	shellErr := New(op, err, code)
	if context != nil {
		shellErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			shellErr.Context[k] = v
		}
	}
	return shellErr
}

// isFatalCode reports whether failures of this class stop the process.
// Only startup failures are fatal; anything raised while handling menu or
// tray events is logged and dropped.
func isFatalCode(code ErrorCode) bool {
	switch code {
	case ErrCodeConfigParse, ErrCodeInvalidURL, ErrCodeHomeDirNotFound, ErrCodeDirectoryCreate:
		return true
	default:
		return false
	}
}

// CodeOf returns the classification of err, or ErrCodeUnknown
func CodeOf(err error) ErrorCode {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Code
	}
	return ErrCodeUnknown
}

// IsFatal checks if the error must terminate the process
func IsFatal(err error) bool {
	var shellErr *ShellError
	if errors.As(err, &shellErr) {
		return shellErr.Fatal
	}
	return false
}

// IsConfigParse checks if the error is a configuration parse error
func IsConfigParse(err error) bool {
	return CodeOf(err) == ErrCodeConfigParse
}

// IsInvalidURL checks if the error is an invalid navigation URL error
func IsInvalidURL(err error) bool {
	return CodeOf(err) == ErrCodeInvalidURL
}

// IsHomeDirNotFound checks if the error reports a missing home directory
func IsHomeDirNotFound(err error) bool {
	return CodeOf(err) == ErrCodeHomeDirNotFound
}

// IsDirectoryCreate checks if the error is a data directory creation error
func IsDirectoryCreate(err error) bool {
	return CodeOf(err) == ErrCodeDirectoryCreate
}

// IsWindowOperation checks if the error is a window operation error
func IsWindowOperation(err error) bool {
	return CodeOf(err) == ErrCodeWindowOperation
}

// IsZoomApply checks if the error is a zoom error
func IsZoomApply(err error) bool {
	return CodeOf(err) == ErrCodeZoomApply
}
