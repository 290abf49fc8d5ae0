// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file models the patrol map: a fixed-size grid of open and blocked
// tiles, parsed together with the guard's starting state.
package guard

import (
	"fmt"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
)

// Tile is the content of a single grid cell.
type Tile uint8

const (
	Open Tile = iota
	Obstacle
)

// Position is a cell coordinate; X grows to the east and Y to the south.
type Position struct {
	X, Y int
}

// Shift returns the neighbouring position in the given heading.
func (p Position) Shift(h Heading) Position {
	switch h {
	case North:
		return Position{p.X, p.Y - 1}
	case East:
		return Position{p.X + 1, p.Y}
	case South:
		return Position{p.X, p.Y + 1}
	case West:
		return Position{p.X - 1, p.Y}
	default:
		panic(fmt.Sprintf("invalid heading %d", h))
	}
}

// Grid is an immutable rectangular map. Use WithObstacle to derive a
// modified copy.
type Grid struct {
	width, height int
	tiles         []Tile
}

// NewGrid builds an all-open grid of the given size.
func NewGrid(width, height int) *Grid {
	return &Grid{width: width, height: height, tiles: make([]Tile, width*height)}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At returns the tile at p. p must be in bounds.
func (g *Grid) At(p Position) Tile {
	return g.tiles[g.index(p)]
}

// WithObstacle returns a copy of the grid with an obstacle at p. The receiver
// is left untouched.
func (g *Grid) WithObstacle(p Position) *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	tiles[g.index(p)] = Obstacle
	return &Grid{width: g.width, height: g.height, tiles: tiles}
}

func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

// Parse reads a patrol map. '#' is an obstacle and one of '^', '>', 'v', '<'
// marks the guard and its heading; every other character is open floor.
func Parse(input string) (*Grid, Guard, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, Guard{}, puzzle.InputError("empty map")
	}

	width := len(lines[0])
	g := &Grid{width: width, height: len(lines), tiles: make([]Tile, 0, width*len(lines))}
	var start Guard
	found := false

	for y, line := range lines {
		if len(line) != width {
			return nil, Guard{}, puzzle.LineError(y+1, line, "row has %d cells, want %d", len(line), width)
		}
		for x := 0; x < len(line); x++ {
			tile := Open
			switch c := line[x]; c {
			case '#':
				tile = Obstacle
			case '^', '>', 'v', '<':
				if found {
					return nil, Guard{}, puzzle.LineError(y+1, line, "second guard at column %d, first at %d,%d", x+1, start.Pos.X+1, start.Pos.Y+1)
				}
				found = true
				start = Guard{Pos: Position{x, y}, Heading: headingFromMarker(c)}
			}
			g.tiles = append(g.tiles, tile)
		}
	}

	if !found {
		return nil, Guard{}, puzzle.InputError("no guard marker in map")
	}
	return g, start, nil
}
