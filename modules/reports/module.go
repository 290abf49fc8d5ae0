package reports

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func solve(check func(Report) bool) puzzle.Solver {
	return func(_ context.Context, input string) (int, error) {
		reports, err := Parse(input)
		if err != nil {
			return 0, err
		}
		return CountSafe(reports, check), nil
	}
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "reports",
		Day:         2,
		Description: "Count safe reactor reports, optionally tolerating one bad level.",
		Parts: map[int]puzzle.Solver{
			1: solve(Report.Safe),
			2: solve(Report.SafeWithDampener),
		},
	})
}
