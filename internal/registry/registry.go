package registry

import (
	"cmp"
	"slices"

	"github.com/specialistvlad/puzzlegrid/internal/config"
)

// Module is the interface that all puzzle modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered solvers and manifest definitions for
// a single application instance.
type Registry struct {
	PuzzleRegistry     map[string]*RegisteredPuzzle
	DefinitionRegistry map[string]*config.PuzzleDefinition

	// order preserves the manifest order of definitions.
	order []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		PuzzleRegistry:     make(map[string]*RegisteredPuzzle),
		DefinitionRegistry: make(map[string]*config.PuzzleDefinition),
	}
}

// PopulateDefinitionsFromModel copies the loaded puzzle definitions from the
// manifest into the registry for easy access during execution.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Manifest) {
	for _, def := range model.Puzzles {
		if _, exists := r.DefinitionRegistry[def.Name]; !exists {
			r.order = append(r.order, def.Name)
		}
		r.DefinitionRegistry[def.Name] = def
	}
}

// Definition returns the manifest definition for a puzzle. Puzzles that are
// registered in Go but absent from every manifest get a default definition
// built from their registration.
func (r *Registry) Definition(name string) (*config.PuzzleDefinition, bool) {
	if def, ok := r.DefinitionRegistry[name]; ok {
		return def, true
	}
	p, ok := r.PuzzleRegistry[name]
	if !ok {
		return nil, false
	}
	return &config.PuzzleDefinition{
		Name:        p.Name,
		Day:         p.Day,
		Description: p.Description,
	}, true
}

// Names returns every runnable puzzle: manifest puzzles first, in manifest
// order, followed by the remaining registered puzzles sorted by day and name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.PuzzleRegistry))
	seen := make(map[string]struct{}, len(r.PuzzleRegistry))
	for _, name := range r.order {
		if _, ok := r.PuzzleRegistry[name]; ok {
			names = append(names, name)
			seen[name] = struct{}{}
		}
	}

	var rest []*RegisteredPuzzle
	for name, p := range r.PuzzleRegistry {
		if _, ok := seen[name]; !ok {
			rest = append(rest, p)
		}
	}
	slices.SortFunc(rest, func(a, b *RegisteredPuzzle) int {
		return cmp.Or(cmp.Compare(a.Day, b.Day), cmp.Compare(a.Name, b.Name))
	})
	for _, p := range rest {
		names = append(names, p.Name)
	}
	return names
}
