package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between manifests and Go code.
// Every manifest puzzle must have a registered solver, and every part it
// mentions (in parts, want, or sample wants) must be implemented.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.order {
		def := r.DefinitionRegistry[name]
		p, ok := r.PuzzleRegistry[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("puzzle '%s' (%s): manifest declares a puzzle with no Go solver", name, def.Source))
			continue
		}

		if def.Day != 0 && def.Day != p.Day {
			logger.Warn("Manifest day differs from the registered day.", "puzzle", name, "manifest_day", def.Day, "registered_day", p.Day)
		}

		for _, part := range def.Parts {
			if _, ok := p.Parts[part]; !ok {
				errs = append(errs, fmt.Sprintf("puzzle '%s': manifest lists part %d, but only parts %v are implemented", name, part, p.PartNumbers()))
			}
		}
		for part := range def.Want {
			if _, ok := p.Parts[part]; !ok {
				errs = append(errs, fmt.Sprintf("puzzle '%s': want declares part %d, which is not implemented", name, part))
			}
		}
		for _, s := range def.Samples {
			for part := range s.Want {
				if _, ok := p.Parts[part]; !ok {
					errs = append(errs, fmt.Sprintf("puzzle '%s', sample '%s': want declares part %d, which is not implemented", name, s.Name, part))
				}
			}
		}
	}

	for name := range r.PuzzleRegistry {
		if _, ok := r.DefinitionRegistry[name]; !ok {
			logger.Debug("Puzzle has no manifest entry, using defaults.", "puzzle", name)
		}
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
