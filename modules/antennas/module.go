package antennas

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func solve(count func(*Map) int) puzzle.Solver {
	return func(ctx context.Context, input string) (int, error) {
		m, err := Parse(input)
		if err != nil {
			return 0, err
		}
		ctxlog.FromContext(ctx).Debug("Parsed antenna map.", "width", m.Width, "height", m.Height, "frequencies", len(m.Antennas))
		return count(m), nil
	}
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "antennas",
		Day:         8,
		Description: "Count antinode positions created by same-frequency antenna pairs.",
		Parts: map[int]puzzle.Solver{
			1: solve((*Map).Antinodes),
			2: solve((*Map).Harmonics),
		},
	})
}
