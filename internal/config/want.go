package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePartKey accepts "part1", "Part1" or "1".
func ParsePartKey(key string) (int, error) {
	digits := key
	if rest, ok := strings.CutPrefix(strings.ToLower(key), "part"); ok {
		digits = rest
	}
	part, err := strconv.Atoi(digits)
	if err != nil || part < 1 {
		return 0, fmt.Errorf("invalid part key %q: expected partN or N with N >= 1", key)
	}
	return part, nil
}

// AddWant parses key and records answer under its part. A part may be set
// only once, whichever spelling of the key is used.
func AddWant(want map[int]int, key string, answer int) error {
	part, err := ParsePartKey(key)
	if err != nil {
		return err
	}
	if _, ok := want[part]; ok {
		return fmt.Errorf("want declares part %d more than once", part)
	}
	want[part] = answer
	return nil
}
