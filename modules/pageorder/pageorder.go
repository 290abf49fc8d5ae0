// Package pageorder checks print updates against page ordering rules and
// repairs the updates that break them.
package pageorder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/dag"
	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
)

// ErrCycle is returned when the rules that apply to an update contradict each
// other, so the update has no valid order.
var ErrCycle = dag.ErrCycle

// Rules records, for each page, the pages that must be printed after it.
type Rules map[int]map[int]struct{}

// Before reports whether a rule requires a to be printed before b.
func (r Rules) Before(a, b int) bool {
	_, ok := r[a][b]
	return ok
}

func (r Rules) add(a, b int) {
	if r[a] == nil {
		r[a] = make(map[int]struct{})
	}
	r[a][b] = struct{}{}
}

// Update is a list of page numbers in print order.
type Update []int

// Middle returns the middle page; for even lengths the lower middle.
func (u Update) Middle() int {
	return u[(len(u)-1)/2]
}

// Parse reads the "a|b" rules, a blank line, then comma-separated updates.
func Parse(input string) (Rules, []Update, error) {
	lines := puzzle.Lines(input)
	rules := make(Rules)
	i := 0
	for ; i < len(lines) && lines[i] != ""; i++ {
		a, b, ok := strings.Cut(lines[i], "|")
		if !ok {
			return nil, nil, puzzle.LineError(i+1, lines[i], "rule must look like a|b")
		}
		before, err := parsePage(a)
		if err != nil {
			return nil, nil, puzzle.LineError(i+1, lines[i], "%v", err)
		}
		after, err := parsePage(b)
		if err != nil {
			return nil, nil, puzzle.LineError(i+1, lines[i], "%v", err)
		}
		if before == after {
			return nil, nil, puzzle.LineError(i+1, lines[i], "page %d ordered against itself", before)
		}
		rules.add(before, after)
	}
	if i == len(lines) {
		return nil, nil, puzzle.InputError("missing blank line between rules and updates")
	}

	var updates []Update
	for i++; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}
		pages, err := puzzle.SplitInts(lines[i], ",")
		if err != nil {
			return nil, nil, puzzle.LineError(i+1, lines[i], "%v", err)
		}
		if dup, ok := firstDuplicate(pages); ok {
			return nil, nil, puzzle.LineError(i+1, lines[i], "page %d listed twice", dup)
		}
		updates = append(updates, pages)
	}
	return rules, updates, nil
}

func parsePage(s string) (int, error) {
	page, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid page %q", s)
	}
	return page, nil
}

func firstDuplicate(pages []int) (int, bool) {
	seen := make(map[int]bool, len(pages))
	for _, p := range pages {
		if seen[p] {
			return p, true
		}
		seen[p] = true
	}
	return 0, false
}

// Valid reports whether no rule is broken by the update. Rules that mention
// pages missing from the update are ignored.
func (r Rules) Valid(u Update) bool {
	for i := range u {
		for j := i + 1; j < len(u); j++ {
			if r.Before(u[j], u[i]) {
				return false
			}
		}
	}
	return true
}

// Sort returns the update's pages in an order that satisfies every applicable
// rule. Only rules between pages of the update are considered; ties keep the
// update's original order.
func (r Rules) Sort(u Update) (Update, error) {
	g := dag.New[int]()
	for _, p := range u {
		g.AddNode(p)
	}
	for _, p := range u {
		for q := range r[p] {
			if !g.Has(q) {
				continue
			}
			if err := g.AddEdge(p, q); err != nil {
				return nil, fmt.Errorf("update %v: %w", u, err)
			}
		}
	}

	sorted, err := g.Sorted()
	if err != nil {
		return nil, fmt.Errorf("update %v: %w", u, err)
	}
	return sorted, nil
}

// SumValid sums the middle pages of the updates that are already in order.
func SumValid(rules Rules, updates []Update) int {
	total := 0
	for _, u := range updates {
		if rules.Valid(u) {
			total += u.Middle()
		}
	}
	return total
}

// SumRepaired sorts every out-of-order update and sums their middle pages.
func SumRepaired(rules Rules, updates []Update) (int, error) {
	total := 0
	for _, u := range updates {
		if rules.Valid(u) {
			continue
		}
		sorted, err := rules.Sort(u)
		if err != nil {
			return 0, err
		}
		total += sorted.Middle()
	}
	return total, nil
}
