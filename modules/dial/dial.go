// Package dial counts how often a circular combination dial points at zero
// while a sequence of rotations is applied.
package dial

import (
	"strconv"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
)

const (
	// Size is the number of positions on the dial, 0 through Size-1.
	Size = 100
	// Start is the position the dial points at before the first rotation.
	Start = 50
)

// Rotation is a signed number of clicks: negative turns left, positive right.
type Rotation int

// Parse reads one rotation per line, written as L<n> or R<n>.
func Parse(input string) ([]Rotation, error) {
	lines := puzzle.Lines(input)
	rotations := make([]Rotation, 0, len(lines))
	for i, line := range lines {
		if len(line) < 2 {
			return nil, puzzle.LineError(i+1, line, "rotation needs a direction and a distance")
		}
		var sign int
		switch line[0] {
		case 'L':
			sign = -1
		case 'R':
			sign = 1
		default:
			return nil, puzzle.LineError(i+1, line, "unknown direction %q", line[0])
		}
		n, err := strconv.Atoi(line[1:])
		if err != nil || n < 0 {
			return nil, puzzle.LineError(i+1, line, "invalid distance %q", line[1:])
		}
		rotations = append(rotations, Rotation(sign*n))
	}
	return rotations, nil
}

// Turn applies r to a dial at pos. It returns the new position and the
// number of clicks during the rotation that landed on zero, the final click
// included.
func Turn(pos int, r Rotation) (next, zeros int) {
	next = ((pos+int(r))%Size + Size) % Size
	if r >= 0 {
		return next, (pos + int(r)) / Size
	}

	dist := -int(r)
	first := pos
	if first == 0 {
		first = Size
	}
	if dist < first {
		return next, 0
	}
	return next, 1 + (dist-first)/Size
}

// CountStops returns how many rotations leave the dial at zero.
func CountStops(rotations []Rotation) int {
	pos, count := Start, 0
	for _, r := range rotations {
		pos, _ = Turn(pos, r)
		if pos == 0 {
			count++
		}
	}
	return count
}

// CountClicks returns how many individual clicks land on zero.
func CountClicks(rotations []Rotation) int {
	pos, count := Start, 0
	for _, r := range rotations {
		var zeros int
		pos, zeros = Turn(pos, r)
		count += zeros
	}
	return count
}
