package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies an engine error.
type ErrorCode string

const (
	// S0xxx: parse errors
	ErrInvalidCharacter  ErrorCode = "S0001"
	ErrUnmatchedParen    ErrorCode = "S0002"
	ErrInvalidExpression ErrorCode = "S0003"
	ErrInvalidNumber     ErrorCode = "S0004"

	// E1xxx: evaluation errors
	ErrVariableNotFound ErrorCode = "E1001"
	ErrDivisionByZero   ErrorCode = "E1002"
	ErrLogDomain        ErrorCode = "E1003"

	// U2xxx: programming errors (node tag outside the closed set)
	ErrUnsupportedOperation ErrorCode = "U2001"
)

// Error is a structured engine error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int // byte offset into the source text, -1 when not applicable
	Err      error
}

// NewError creates a new engine error.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// IsParseError reports whether err is an engine error from the parser.
func IsParseError(err error) bool {
	return hasCodePrefix(err, "S")
}

// IsEvalError reports whether err is an engine error from the evaluator.
func IsEvalError(err error) bool {
	return hasCodePrefix(err, "E")
}

func hasCodePrefix(err error, prefix string) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return strings.HasPrefix(string(e.Code), prefix)
}
