package puzzle

import (
	"context"
	"fmt"
	"strings"
)

// Solver computes the answer for one part of a puzzle from its raw input text.
type Solver func(ctx context.Context, input string) (int, error)

// ParseError reports input that a puzzle could not parse. Line is 1-based;
// zero means the error concerns the input as a whole.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	return fmt.Sprintf("parse error on line %d (%q): %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// LineError builds a ParseError for the given 1-based line.
func LineError(line int, text string, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Text: text, Err: fmt.Errorf(format, args...)}
}

// InputError builds a ParseError that is not tied to a single line.
func InputError(format string, args ...any) *ParseError {
	return &ParseError{Err: fmt.Errorf(format, args...)}
}

// Lines splits input into lines. A single trailing newline does not produce
// an extra empty line, and carriage returns are dropped.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Sections splits input into blank-line separated sections.
func Sections(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.Split(strings.Trim(input, "\n"), "\n\n")
}
