// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file runs whole patrols: coverage until exit, loop detection and the
// exhaustive search for loop-inducing obstructions.
package guard

import "errors"

// ErrLoop is returned by Coverage when the guard never leaves the grid.
var ErrLoop = errors.New("guard is stuck in a loop")

// visited is a dense set of guard states indexed by position and heading.
type visited struct {
	grid *Grid
	seen []bool
}

func newVisited(g *Grid) *visited {
	return &visited{grid: g, seen: make([]bool, len(g.tiles)*headingCount)}
}

// add records the state and reports whether it was new.
func (v *visited) add(s Guard) bool {
	i := v.grid.index(s.Pos)*headingCount + int(s.Heading)
	if v.seen[i] {
		return false
	}
	v.seen[i] = true
	return true
}

// Coverage walks the guard until it leaves the grid and returns the number of
// distinct positions it occupied, the start included.
func Coverage(g *Grid, start Guard) (int, error) {
	states := newVisited(g)
	cells := make([]bool, len(g.tiles))
	count := 0

	guard := start
	for {
		if !states.add(guard) {
			return count, ErrLoop
		}
		if i := g.index(guard.Pos); !cells[i] {
			cells[i] = true
			count++
		}
		var ok bool
		if guard, ok = Step(g, guard); !ok {
			return count, nil
		}
	}
}

// IsLoop reports whether the guard repeats a state before leaving the grid.
func IsLoop(g *Grid, start Guard) bool {
	states := newVisited(g)
	guard := start
	for {
		if !states.add(guard) {
			return true
		}
		var ok bool
		if guard, ok = Step(g, guard); !ok {
			return false
		}
	}
}

// CountObstructions counts the open cells, other than the start position,
// where a single new obstacle traps the guard in a loop.
func CountObstructions(g *Grid, start Guard) int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Position{x, y}
			if p == start.Pos || g.At(p) != Open {
				continue
			}
			if IsLoop(g.WithObstacle(p), start) {
				count++
			}
		}
	}
	return count
}
