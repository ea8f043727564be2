package websoup

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic enough to carry across package boundaries
// while still letting callers distinguish failure classes programmatically.
const (
	EINVALID     = "invalid"     // malformed URL or invalid configuration
	ENOTFOUND    = "not_found"   // requested element (e.g. a form) does not exist
	ESTATUS      = "http_status" // non-2xx HTTP response
	ETIMEOUT     = "timeout"     // deadline exceeded before completion
	EUNAVAILABLE = "unavailable" // connection could not be established
	ERENDER      = "render"      // script execution or browser navigation failed
	EUNSUPPORTED = "unsupported" // unrecognized backend or parser selector
	ETLS         = "tls"         // TLS certificate verification failed
	EINTERNAL    = "internal"
)

// Error represents an application-specific error. Errors can be unwrapped
// by the caller to extract the code, the human-readable message, and, for
// ESTATUS errors, the HTTP status code that triggered the failure.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string

	// HTTP status code for ESTATUS errors, zero otherwise.
	Status int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("websoup error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL. A nil error returns "".
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

// ErrorStatus unwraps an application error and returns its HTTP status
// code. Returns zero for nil, non-application, and non-ESTATUS errors.
func ErrorStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// StatusErrorf returns an ESTATUS Error carrying the HTTP status code
// of a non-2xx response.
func StatusErrorf(status int, format string, args ...any) *Error {
	return &Error{
		Code:    ESTATUS,
		Status:  status,
		Message: fmt.Sprintf(format, args...),
	}
}
