package mulscan

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func solve(conditionals bool) puzzle.Solver {
	return func(ctx context.Context, input string) (int, error) {
		instructions := Scan(input)
		ctxlog.FromContext(ctx).Debug("Scanned memory.", "instructions", len(instructions), "conditionals", conditionals)
		return Sum(instructions, conditionals), nil
	}
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "mulscan",
		Day:         3,
		Description: "Sum mul(X,Y) products found in corrupted memory.",
		Parts: map[int]puzzle.Solver{
			1: solve(false),
			2: solve(true),
		},
	})
}
