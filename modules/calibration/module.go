package calibration

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func solve(ops ...Operator) puzzle.Solver {
	return func(ctx context.Context, input string) (int, error) {
		equations, err := Parse(input)
		if err != nil {
			return 0, err
		}
		ctxlog.FromContext(ctx).Debug("Searching operator assignments.", "equations", len(equations), "operators", ops)
		return Total(equations, ops), nil
	}
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "calibration",
		Day:         7,
		Description: "Sum calibration targets reachable by inserting operators.",
		Parts: map[int]puzzle.Solver{
			1: solve(Add, Multiply),
			2: solve(Add, Multiply, Concat),
		},
	})
}
