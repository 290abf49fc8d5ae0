// Package antennas finds the antinodes created by pairs of antennas that share
// a frequency on a rectangular map.
package antennas

import (
	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
)

// Point is a map coordinate.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Map holds the antenna positions grouped by frequency.
type Map struct {
	Width, Height int
	Antennas      map[byte][]Point
}

// InBounds reports whether p lies on the map.
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.Width && p.Y < m.Height
}

func isFrequency(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Parse reads the map. Letters and digits are antennas; '.' and '#' are empty.
func Parse(input string) (*Map, error) {
	lines := puzzle.Lines(input)
	m := &Map{Height: len(lines), Antennas: make(map[byte][]Point)}
	if len(lines) > 0 {
		m.Width = len(lines[0])
	}
	for y, line := range lines {
		if len(line) != m.Width {
			return nil, puzzle.LineError(y+1, line, "row has %d cells, want %d", len(line), m.Width)
		}
		for x := 0; x < len(line); x++ {
			switch c := line[x]; {
			case c == '.' || c == '#':
			case isFrequency(c):
				m.Antennas[c] = append(m.Antennas[c], Point{x, y})
			default:
				return nil, puzzle.LineError(y+1, line, "unexpected character %q at column %d", c, x+1)
			}
		}
	}
	return m, nil
}

// forEachPair calls f for every ordered pair of distinct antennas sharing a
// frequency.
func (m *Map) forEachPair(f func(a, b Point)) {
	for _, points := range m.Antennas {
		for i, a := range points {
			for j, b := range points {
				if i != j {
					f(a, b)
				}
			}
		}
	}
}

// Antinodes counts the distinct in-bounds points that lie one pair distance
// beyond either antenna of a pair.
func (m *Map) Antinodes() int {
	seen := make(map[Point]struct{})
	m.forEachPair(func(a, b Point) {
		if p := b.Add(b.Sub(a)); m.InBounds(p) {
			seen[p] = struct{}{}
		}
	})
	return len(seen)
}

// Harmonics counts the distinct in-bounds points at any whole multiple of a
// pair's offset from one of its antennas, the antennas themselves included.
func (m *Map) Harmonics() int {
	seen := make(map[Point]struct{})
	m.forEachPair(func(a, b Point) {
		step := b.Sub(a)
		for p := a; m.InBounds(p); p = p.Add(step) {
			seen[p] = struct{}{}
		}
	})
	return len(seen)
}
