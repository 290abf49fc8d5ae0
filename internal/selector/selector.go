package selector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// selectorRegex parses a single selection, e.g. `guard` or `guard[1]`.
var selectorRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(?:\[(\d+)\])?$`)

// Selector names a puzzle and, optionally, one of its parts.
type Selector struct {
	Puzzle string
	Part   int // 0 selects every part.
}

// HasPart returns true if the selector names an explicit part.
func (s Selector) HasPart() bool {
	return s.Part != 0
}

// String serializes the Selector into its canonical representation.
func (s Selector) String() string {
	var sb strings.Builder
	sb.WriteString(s.Puzzle)
	if s.HasPart() {
		fmt.Fprintf(&sb, "[%d]", s.Part)
	}
	return sb.String()
}

// Parse creates a Selector by parsing its canonical string representation.
func Parse(raw string) (Selector, error) {
	if raw == "" {
		return Selector{}, fmt.Errorf("puzzle selection cannot be empty")
	}

	matches := selectorRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Selector{}, fmt.Errorf("invalid puzzle selection %q, want name or name[part]", raw)
	}
	if matches[1] == "-" {
		return Selector{}, fmt.Errorf("invalid puzzle name: %q", matches[1])
	}

	sel := Selector{Puzzle: matches[1]}
	if matches[2] != "" {
		part, err := strconv.Atoi(matches[2])
		if err != nil {
			return Selector{}, fmt.Errorf("invalid part in %q: %w", raw, err)
		}
		if part == 0 {
			return Selector{}, fmt.Errorf("invalid part in %q: parts are numbered from 1", raw)
		}
		sel.Part = part
	}
	return sel, nil
}

// ParseAll parses every raw selection, stopping at the first invalid one.
func ParseAll(raw []string) ([]Selector, error) {
	out := make([]Selector, 0, len(raw))
	for _, r := range raw {
		sel, err := Parse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}
