// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the guard's state and the single-step movement rule.
package guard

import "fmt"

// Heading is one of the four compass directions the guard can face.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

const headingCount = 4

// TurnRight rotates the heading 90 degrees clockwise.
func (h Heading) TurnRight() Heading {
	return (h + 1) % headingCount
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Heading(%d)", h)
	}
}

func headingFromMarker(c byte) Heading {
	switch c {
	case '>':
		return East
	case 'v':
		return South
	case '<':
		return West
	default:
		return North
	}
}

// Guard is the guard's position and heading. It is a value; Step returns a
// new one.
type Guard struct {
	Pos     Position
	Heading Heading
}

// Step advances the guard by one move. It turns right in place when the cell
// ahead is blocked and moves forward otherwise. The second result is false
// when the move would leave the grid.
func Step(g *Grid, guard Guard) (Guard, bool) {
	next := guard.Pos.Shift(guard.Heading)
	if !g.InBounds(next) {
		return guard, false
	}
	switch g.At(next) {
	case Obstacle:
		return Guard{Pos: guard.Pos, Heading: guard.Heading.TurnRight()}, true
	case Open:
		return Guard{Pos: next, Heading: guard.Heading}, true
	default:
		panic(fmt.Sprintf("invalid tile %d", g.At(next)))
	}
}
