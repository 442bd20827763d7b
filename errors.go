package aoc

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a line or file does not have the shape a
// puzzle expects, e.g. a pattern did not match or a field is missing.
var ErrInvalidInput = errors.New("invalid input")

// ParseError records the line of input that failed to parse.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Invalid returns an error wrapping ErrInvalidInput with a description of
// what was wrong.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
