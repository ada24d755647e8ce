// Package domainerrors defines the coded errors returned by every kiosk
// operation.
//
// Three codes describe expected failures and are part of the public contract:
//
//   - CodeInvalidResource: input failed a value-object or aggregate check
//   - CodeConflict: a uniqueness or at-most-once rule was violated
//   - CodeNotFound: a referenced entity does not exist
//
// CodeInternal is reserved for unexpected failures (store I/O and the like).
// Aggregates and value objects never produce it. Services use it when wrapping
// gateway failures, and the application boundary assigns it to anything that
// arrives unclassified.
package domainerrors

import (
	"errors"
)

// Code classifies a domain error.
type Code string

const (
	CodeInvalidResource Code = "invalid_resource"
	CodeConflict        Code = "conflict"
	CodeNotFound        Code = "not_found"
	CodeInternal        Code = "internal"
)

// Kind returns the error kind name exposed to controllers.
func (c Code) Kind() string {
	switch c {
	case CodeInvalidResource:
		return "InvalidResourceError"
	case CodeConflict:
		return "ResourceConflictError"
	case CodeNotFound:
		return "ResourceNotFoundError"
	default:
		return "UnexpectedError"
	}
}

// Error is a domain error carrying exactly one code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// As returns the outermost domain error in err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}

// CodeOf returns the code carried by err, or CodeInternal when err is not a
// domain error. A nil error has no code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if de, ok := As(err); ok {
		return de.Code
	}
	return CodeInternal
}

// Classify guarantees a domain error: domain errors pass through untouched,
// anything else is wrapped as CodeInternal.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	if de, ok := As(err); ok {
		return de
	}
	return Wrap(err, CodeInternal, "unexpected error")
}
