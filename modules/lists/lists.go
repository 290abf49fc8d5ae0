// Package lists compares two columns of location ids: the total distance
// between their sorted pairs and a similarity score based on how often each
// left id occurs on the right.
package lists

import (
	"slices"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
)

// Parse reads two whitespace-separated columns of integers.
func Parse(input string) (left, right []int, err error) {
	for i, line := range puzzle.Lines(input) {
		nums, err := puzzle.Ints(line)
		if err != nil {
			return nil, nil, puzzle.LineError(i+1, line, "%v", err)
		}
		if len(nums) != 2 {
			return nil, nil, puzzle.LineError(i+1, line, "want 2 columns, got %d", len(nums))
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	return left, right, nil
}

// Distance pairs the smallest left id with the smallest right id, and so on,
// and sums the differences of each pair. The inputs are not modified.
func Distance(left, right []int) int {
	l, r := slices.Sorted(slices.Values(left)), slices.Sorted(slices.Values(right))
	total := 0
	for i := range l {
		total += puzzle.AbsDiff(l[i], r[i])
	}
	return total
}

// Similarity sums every left id multiplied by its number of occurrences in
// the right column.
func Similarity(left, right []int) int {
	counts := make(map[int]int, len(right))
	for _, n := range right {
		counts[n]++
	}
	total := 0
	for _, n := range left {
		total += n * counts[n]
	}
	return total
}
