// Package wordsearch counts words hidden in a letter grid.
package wordsearch

import "github.com/specialistvlad/puzzlegrid/internal/puzzle"

// Grid is a rectangular block of letters.
type Grid struct {
	rows []string
}

// Parse reads a rectangular letter grid.
func Parse(input string) (*Grid, error) {
	rows := puzzle.Lines(input)
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, puzzle.LineError(i+1, row, "row has %d letters, want %d", len(row), len(rows[0]))
		}
	}
	return &Grid{rows: rows}, nil
}

// at returns the letter at x,y, or 0 outside the grid.
func (g *Grid) at(x, y int) byte {
	if y < 0 || y >= len(g.rows) || x < 0 || x >= len(g.rows[y]) {
		return 0
	}
	return g.rows[y][x]
}

var directions = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// CountWord counts the occurrences of word in any of the eight directions,
// reading forwards only. Overlapping occurrences all count.
func (g *Grid) CountWord(word string) int {
	if word == "" {
		return 0
	}
	count := 0
	for y := range g.rows {
		for x := 0; x < len(g.rows[y]); x++ {
			if g.rows[y][x] != word[0] {
				continue
			}
			for _, d := range directions {
				if g.matches(word, x, y, d[0], d[1]) {
					count++
				}
			}
		}
	}
	return count
}

func (g *Grid) matches(word string, x, y, dx, dy int) bool {
	for i := 0; i < len(word); i++ {
		if g.at(x+i*dx, y+i*dy) != word[i] {
			return false
		}
	}
	return true
}

// CountCrosses counts the 'A' cells where both diagonals read "MAS" in
// either direction.
func (g *Grid) CountCrosses() int {
	count := 0
	for y := range g.rows {
		for x := 0; x < len(g.rows[y]); x++ {
			if g.rows[y][x] != 'A' {
				continue
			}
			if isMS(g.at(x-1, y-1), g.at(x+1, y+1)) && isMS(g.at(x+1, y-1), g.at(x-1, y+1)) {
				count++
			}
		}
	}
	return count
}

func isMS(a, b byte) bool {
	return (a == 'M' && b == 'S') || (a == 'S' && b == 'M')
}
