// Package reports checks reactor reports for safety: levels must move in one
// direction by steps of one to three.
package reports

import (
	"slices"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
)

// Report is one line of levels.
type Report []int

// Parse reads one report per line.
func Parse(input string) ([]Report, error) {
	lines := puzzle.Lines(input)
	out := make([]Report, 0, len(lines))
	for i, line := range lines {
		levels, err := puzzle.Ints(line)
		if err != nil {
			return nil, puzzle.LineError(i+1, line, "%v", err)
		}
		if len(levels) == 0 {
			return nil, puzzle.LineError(i+1, line, "empty report")
		}
		out = append(out, levels)
	}
	return out, nil
}

// FirstUnsafe returns the index of the first level that breaks the rules, or
// -1 when the report is safe. The direction is set by the first two levels.
func (r Report) FirstUnsafe() int {
	if len(r) < 2 {
		return -1
	}
	increasing := r[1] > r[0]
	for i := 1; i < len(r); i++ {
		if d := puzzle.AbsDiff(r[i], r[i-1]); d < 1 || d > 3 {
			return i
		}
		if (r[i] > r[i-1]) != increasing {
			return i
		}
	}
	return -1
}

// Safe reports whether the report follows the rules as is.
func (r Report) Safe() bool {
	return r.FirstUnsafe() < 0
}

// SafeWithDampener reports whether the report is safe after removing at most
// one level. Only the first level and the two levels around the first
// violation can fix a report.
func (r Report) SafeWithDampener() bool {
	bad := r.FirstUnsafe()
	if bad < 0 {
		return true
	}
	for _, skip := range []int{0, bad - 1, bad} {
		if r.without(skip).Safe() {
			return true
		}
	}
	return false
}

func (r Report) without(i int) Report {
	return slices.Delete(slices.Clone(r), i, i+1)
}

// CountSafe counts the reports accepted by check.
func CountSafe(reports []Report, check func(Report) bool) int {
	n := 0
	for _, r := range reports {
		if check(r) {
			n++
		}
	}
	return n
}
