package registry

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
)

// RegisteredPuzzle holds the compiled Go parts of a puzzle.
type RegisteredPuzzle struct {
	Name        string
	Day         int
	Description string
	Parts       map[int]puzzle.Solver
}

// PartNumbers returns the registered part numbers in ascending order.
func (p *RegisteredPuzzle) PartNumbers() []int {
	parts := make([]int, 0, len(p.Parts))
	for n := range p.Parts {
		parts = append(parts, n)
	}
	slices.Sort(parts)
	return parts
}

// RegisterPuzzle registers the Go solvers of a puzzle under its name.
func (r *Registry) RegisterPuzzle(p *RegisteredPuzzle) {
	if p.Name == "" {
		panic("puzzle registered without a name")
	}
	if len(p.Parts) == 0 {
		panic(fmt.Sprintf("puzzle '%s' registered without any parts", p.Name))
	}
	if _, exists := r.PuzzleRegistry[p.Name]; exists {
		panic(fmt.Sprintf("puzzle with name '%s' already registered", p.Name))
	}
	slog.Debug("Registering puzzle.", "name", p.Name, "day", p.Day, "parts", p.PartNumbers())
	r.PuzzleRegistry[p.Name] = p
}

// Puzzle returns the registered puzzle with the given name.
func (r *Registry) Puzzle(name string) (*RegisteredPuzzle, bool) {
	p, ok := r.PuzzleRegistry[name]
	return p, ok
}
