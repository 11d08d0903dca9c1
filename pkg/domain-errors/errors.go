// Package domainerrors provides coded errors for domain validation failures.
//
// A coded error carries a stable Code that callers can branch on, a
// human-readable message, and optionally the underlying cause so that
// errors.Is and errors.As keep working through the wrapper.
package domainerrors

import (
	"errors"
)

// Code classifies a domain error.
type Code string

const (
	// CodeInvalidInput means a required value was absent.
	CodeInvalidInput Code = "invalid_input"
	// CodeValidation means a value was present but failed validation.
	CodeValidation Code = "validation_error"
	// CodeInvariantViolation means a value that should already be valid was not.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal is used for failures that are not the caller's fault.
	CodeInternal Code = "internal_error"
)

// Error is a domain error with a code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error returns the message when set, falling back to the cause and then the code.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a coded error without a cause.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap returns a coded error whose cause is err.
func Wrap(err error, code Code, msg string) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the outermost coded error in err's chain,
// or the empty code if there is none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// HasCode reports whether any coded error in err's chain has the given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is shorthand for HasCode.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}
