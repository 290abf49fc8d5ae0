package pageorder

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func solveValid(_ context.Context, input string) (int, error) {
	rules, updates, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return SumValid(rules, updates), nil
}

func solveRepaired(_ context.Context, input string) (int, error) {
	rules, updates, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return SumRepaired(rules, updates)
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "pageorder",
		Day:         5,
		Description: "Validate and repair print updates against page ordering rules.",
		Parts: map[int]puzzle.Solver{
			1: solveValid,
			2: solveRepaired,
		},
	})
}
