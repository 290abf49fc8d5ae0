// Package calibration decides which calibration equations can be made true
// by inserting operators between their numbers. Operators are evaluated
// strictly left to right.
package calibration

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
)

// Operator combines the running total with the next number.
type Operator uint8

const (
	Add Operator = iota
	Multiply
	Concat
)

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Multiply:
		return "*"
	case Concat:
		return "||"
	default:
		return fmt.Sprintf("Operator(%d)", o)
	}
}

// Overflow is the running total once a value no longer fits in an int.
// Targets are never negative, so an overflowed total cannot match one.
const Overflow = -1

// Apply evaluates a o b for non-negative operands. Results that do not fit in
// an int are Overflow; only multiplying by zero brings a total back.
func (o Operator) Apply(a, b int) int {
	if o == Multiply && (a == 0 || b == 0) {
		return 0
	}
	if a == Overflow {
		if o > Concat {
			panic(fmt.Sprintf("invalid operator %d", o))
		}
		return Overflow
	}
	switch o {
	case Add:
		if a > math.MaxInt-b {
			return Overflow
		}
		return a + b
	case Multiply:
		if a > math.MaxInt/b {
			return Overflow
		}
		return a * b
	case Concat:
		shift := 10
		for shift <= b {
			if shift > math.MaxInt/10 {
				return Overflow
			}
			shift *= 10
		}
		if a > (math.MaxInt-b)/shift {
			return Overflow
		}
		return a*shift + b
	default:
		panic(fmt.Sprintf("invalid operator %d", o))
	}
}

// Equation is a target value and the numbers that should produce it.
type Equation struct {
	Target  int
	Numbers []int
}

// Parse reads one "target: n1 n2 ..." equation per line.
func Parse(input string) ([]Equation, error) {
	lines := puzzle.Lines(input)
	out := make([]Equation, 0, len(lines))
	for i, line := range lines {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, puzzle.LineError(i+1, line, "missing ':' after the target")
		}
		target, err := strconv.Atoi(strings.TrimSpace(head))
		if err != nil {
			return nil, puzzle.LineError(i+1, line, "invalid target %q", head)
		}
		if target < 0 {
			return nil, puzzle.LineError(i+1, line, "negative target %d", target)
		}
		nums, err := puzzle.Ints(tail)
		if err != nil {
			return nil, puzzle.LineError(i+1, line, "%v", err)
		}
		if len(nums) == 0 {
			return nil, puzzle.LineError(i+1, line, "no numbers after the target")
		}
		for _, n := range nums {
			if n < 0 {
				return nil, puzzle.LineError(i+1, line, "negative number %d", n)
			}
		}
		out = append(out, Equation{Target: target, Numbers: nums})
	}
	return out, nil
}

// FindOperators searches every assignment of ops between the numbers and
// returns the first one that evaluates to the target.
func (e Equation) FindOperators(ops []Operator) ([]Operator, bool) {
	chosen := make([]Operator, len(e.Numbers)-1)
	var search func(i, acc int) bool
	search = func(i, acc int) bool {
		if i == len(e.Numbers) {
			return acc == e.Target
		}
		for _, op := range ops {
			chosen[i-1] = op
			if search(i+1, op.Apply(acc, e.Numbers[i])) {
				return true
			}
		}
		return false
	}
	if !search(1, e.Numbers[0]) {
		return nil, false
	}
	return chosen, true
}

// Total sums the targets of the equations that some assignment of ops can
// satisfy.
func Total(equations []Equation, ops []Operator) int {
	total := 0
	for _, e := range equations {
		if _, ok := e.FindOperators(ops); ok {
			total += e.Target
		}
	}
	return total
}
