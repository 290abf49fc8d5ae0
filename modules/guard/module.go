// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file registers the guard patrol puzzle with the registry.
package guard

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// SolveCoverage is part 1: the number of positions the guard visits.
func SolveCoverage(ctx context.Context, input string) (int, error) {
	g, start, err := Parse(input)
	if err != nil {
		return 0, err
	}
	ctxlog.FromContext(ctx).Debug("Parsed patrol map.", "width", g.Width(), "height", g.Height(), "heading", start.Heading)
	return Coverage(g, start)
}

// SolveObstructions is part 2: the number of cells where one new obstacle
// traps the guard.
func SolveObstructions(ctx context.Context, input string) (int, error) {
	g, start, err := Parse(input)
	if err != nil {
		return 0, err
	}
	ctxlog.FromContext(ctx).Debug("Searching obstruction placements.", "candidates", g.Width()*g.Height())
	return CountObstructions(g, start), nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "guard",
		Day:         6,
		Description: "Guard patrol coverage and loop-inducing obstructions.",
		Parts: map[int]puzzle.Solver{
			1: SolveCoverage,
			2: SolveObstructions,
		},
	})
}
