package dial

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func solveStops(_ context.Context, input string) (int, error) {
	rotations, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountStops(rotations), nil
}

func solveClicks(_ context.Context, input string) (int, error) {
	rotations, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountClicks(rotations), nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "dial",
		Day:         1,
		Description: "Safe dial rotations that stop on or pass through zero.",
		Parts: map[int]puzzle.Solver{
			1: solveStops,
			2: solveClicks,
		},
	})
}
