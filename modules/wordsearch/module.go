package wordsearch

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func solveWords(_ context.Context, input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return g.CountWord("XMAS"), nil
}

func solveCrosses(_ context.Context, input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return g.CountCrosses(), nil
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "wordsearch",
		Day:         4,
		Description: "Count XMAS words and X-shaped MAS crosses in a letter grid.",
		Parts: map[int]puzzle.Solver{
			1: solveWords,
			2: solveCrosses,
		},
	})
}
