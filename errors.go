package siteatlas

import (
	"errors"
	"fmt"
)

// Application error codes. They map the failure taxonomy of the extraction
// pipeline onto a small set of machine-readable values:
// fetch/transport failures are EUNAVAILABLE, a classification selector that
// matches nothing is ENOTFOUND, malformed options are EINVALID, artifact
// persistence failures are EINTERNAL, and a partially successful asset
// capture is EPARTIAL.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
	EPARTIAL     = "partial"
	EINTERNAL    = "internal"
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message with enough context
// (URL, selector, stage) to diagnose a failure without internal state.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("siteatlas error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
