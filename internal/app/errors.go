package app

import (
	"errors"
	"fmt"
)

// ErrUnknownPuzzle is returned when a requested puzzle is not registered.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// MismatchError reports an answer that differs from the expected one.
type MismatchError struct {
	Puzzle string
	Part   int
	// Sample is the sample name, or empty for the real input.
	Sample string
	Want   int
	Got    int
}

func (e *MismatchError) Error() string {
	source := "input"
	if e.Sample != "" {
		source = fmt.Sprintf("sample %q", e.Sample)
	}
	return fmt.Sprintf("puzzle %q part %d: %s: got %d, want %d", e.Puzzle, e.Part, source, e.Got, e.Want)
}
