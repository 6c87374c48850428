package rut

import (
	"errors"
	"fmt"
)

// Code classifies why an input could not be parsed into a (body, check
// digit) pair. There is exactly one error kind in this package — the
// format error — and codes distinguish its causes so callers can present
// diagnostics without re-deriving them.
//
// Checksum mismatches and range violations are NOT errors: a RUT that is
// syntactically fine but has the wrong check digit is an expected,
// common outcome, reported as a plain false from Validate.
type Code string

const (
	// CodeEmptyInput means the input was empty, or empty once
	// formatting characters were stripped.
	CodeEmptyInput Code = "empty_input"
	// CodeTooShort means the cleaned input has fewer than two
	// characters: at least one body digit plus the check digit.
	CodeTooShort Code = "too_short"
	// CodeBadCharacter means the cleaned input contains a character
	// outside [0-9K], or a K anywhere but the check position.
	CodeBadCharacter Code = "bad_character"
	// CodeBodyOverflow means the body has too many digits to represent
	// as a non-negative integer.
	CodeBodyOverflow Code = "body_overflow"
)

// FormatError reports that an input could not be parsed as a RUT.
// It carries the offending input alongside the message.
type FormatError struct {
	Code    Code
	Input   string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message, e.Input)
}

func newFormatError(code Code, input, message string) *FormatError {
	return &FormatError{Code: code, Input: input, Message: message}
}

// HasCode reports whether err is a FormatError with the given code.
func HasCode(err error, code Code) bool {
	var fe *FormatError
	return errors.As(err, &fe) && fe.Code == code
}

// AsFormatError unwraps err into a FormatError if it is one.
func AsFormatError(err error) (*FormatError, bool) {
	var fe *FormatError
	ok := errors.As(err, &fe)
	return fe, ok
}
