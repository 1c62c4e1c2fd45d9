package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Helper to extract context from our errors
func GetContext(err error) map[string]string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Context
	}
	return nil
}

// Helper to get error code
func GetCode(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code.String()
	}
	return ""
}

// HasCode reports whether err (or anything it wraps) carries the given code
func HasCode(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code.Equals(code) {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// Helper to format error for logging
func FormatError(err error) string {
	var e *Error
	if !stderrors.As(err, &e) {
		return err.Error()
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Code: %s", e.Code))
	parts = append(parts, fmt.Sprintf("Message: %s", e.Message))

	if len(e.Context) > 0 {
		parts = append(parts, "Context:")
		for k, v := range e.Context {
			parts = append(parts, fmt.Sprintf("  %s: %v", k, v))
		}
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %v", e.Cause))
	}

	return strings.Join(parts, "\n")
}
