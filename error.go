package vnfeed

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	ENOTFOUND  = "not_found"
	EALIGNMENT = "alignment"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// AlignmentError reports parallel title, link and image lists of different
// lengths. Zipping such lists would pair records with the wrong titles, so
// the whole extraction fails.
type AlignmentError struct {
	Type   AndroidType
	Titles int
	URLs   int
	Covers int
}

// Error implements the error interface.
func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%s section misaligned: %d titles, %d urls, %d covers",
		e.Type, e.Titles, e.URLs, e.Covers)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var ae *AlignmentError
	if errors.As(err, &ae) {
		return EALIGNMENT
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var ae *AlignmentError
	if errors.As(err, &ae) {
		return ae.Error()
	}
	return "Internal error"
}
