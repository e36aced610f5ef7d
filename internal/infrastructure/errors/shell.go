package errors

import (
	"errors"
	"fmt"
	"strconv"
)

// HandleConfigParse creates a standardized error for a malformed embedded document
func HandleConfigParse(op string, document string, err error) error {
	if err == nil {
		err = errors.New("malformed document")
	}
	contextMap := map[string]string{
		"document": document,
	}
	return NewWithContext(op, err, ErrCodeConfigParse, contextMap)
}

// HandleInvalidURL creates a standardized error for a web target that is not an absolute URI
func HandleInvalidURL(op string, rawURL string, reason string) error {
	contextMap := map[string]string{
		"url":    rawURL,
		"reason": reason,
	}
	return NewWithContext(op, errors.New("invalid url"), ErrCodeInvalidURL, contextMap)
}

// HandleHomeDirNotFound creates a standardized error for an unresolvable home directory
func HandleHomeDirNotFound(op string, err error) error {
	if err == nil {
		err = errors.New("home directory not found")
	}
	return New(op, err, ErrCodeHomeDirNotFound)
}

// HandleDirectoryCreate creates a standardized error for a data directory that could not be created
func HandleDirectoryCreate(op string, path string, err error) error {
	contextMap := map[string]string{
		"path": path,
	}
	return NewWithContext(op, fmt.Errorf("create directory: %w", err), ErrCodeDirectoryCreate, contextMap)
}

// HandleWindowOperation creates a standardized error for a failed window operation
func HandleWindowOperation(op string, window string, action string, err error) error {
	if err == nil {
		err = errors.New("window operation failed")
	}
	contextMap := map[string]string{
		"window": window,
		"action": action,
	}
	return NewWithContext(op, err, ErrCodeWindowOperation, contextMap)
}

// HandleZoomApply creates a standardized error for a failed zoom call
func HandleZoomApply(op string, factor float64, err error) error {
	if err == nil {
		err = errors.New("zoom failed")
	}
	contextMap := map[string]string{
		"factor": strconv.FormatFloat(factor, 'f', -1, 64),
	}
	return NewWithContext(op, err, ErrCodeZoomApply, contextMap)
}
