package diskmap

import (
	"context"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

func solve(compact func(Disk) Disk) puzzle.Solver {
	return func(ctx context.Context, input string) (int, error) {
		disk, err := Parse(input)
		if err != nil {
			return 0, err
		}
		ctxlog.FromContext(ctx).Debug("Expanded disk map.", "blocks", len(disk))
		return compact(disk).Checksum(), nil
	}
}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name:        "diskmap",
		Day:         9,
		Description: "Compact a run-length disk map and compute its checksum.",
		Parts: map[int]puzzle.Solver{
			1: solve(Disk.CompactBlocks),
			2: solve(Disk.CompactFiles),
		},
	})
}
