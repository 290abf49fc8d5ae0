package lists

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func solve(score func(left, right []int) int) puzzle.Solver {
	return func(_ context.Context, input string) (int, error) {
		left, right, err := Parse(input)
		if err != nil {
			return 0, err
		}
		return score(left, right), nil
	}
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "lists",
		Day:         1,
		Description: "Distance and similarity between two location id lists.",
		Parts: map[int]puzzle.Solver{
			1: solve(Distance),
			2: solve(Similarity),
		},
	})
}
