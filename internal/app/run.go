package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/specialistvlad/puzzlegrid/internal/config"
	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
	"github.com/specialistvlad/puzzlegrid/internal/selector"
)

// Run solves the selected puzzles one after another and prints one line per
// solved part. It stops at the first failure.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	selections, err := a.selectPuzzles()
	if err != nil {
		return err
	}
	if len(selections) == 0 {
		a.logger.Warn("No puzzles selected, nothing to run.")
		return nil
	}

	a.logger.Info("🚀 Solving puzzles...", "count", len(selections))
	for _, sel := range selections {
		if err := a.runPuzzle(ctx, sel); err != nil {
			return err
		}
	}
	a.logger.Info("🏁 All puzzles solved.")

	a.logger.Debug("App.Run method finished.")
	return nil
}

// selectPuzzles resolves the configured selections, or every registered
// puzzle when none were given.
func (a *App) selectPuzzles() ([]selector.Selector, error) {
	if len(a.config.Puzzles) == 0 {
		var all []selector.Selector
		for _, name := range a.registry.Names() {
			all = append(all, selector.Selector{Puzzle: name})
		}
		return all, nil
	}

	selections, err := selector.ParseAll(a.config.Puzzles)
	if err != nil {
		return nil, err
	}
	for _, sel := range selections {
		if _, ok := a.registry.Puzzle(sel.Puzzle); !ok {
			return nil, fmt.Errorf("%w %q, available: %v", ErrUnknownPuzzle, sel.Puzzle, a.registry.Names())
		}
	}
	return selections, nil
}

// selectParts returns the parts to run: the one named by the selection or
// the -part flag, or every registered part the manifest allows.
func (a *App) selectParts(p *registry.RegisteredPuzzle, def *config.PuzzleDefinition, sel selector.Selector) ([]int, error) {
	part := a.config.Part
	if sel.HasPart() {
		part = sel.Part
	}
	if part != 0 {
		if _, ok := p.Parts[part]; !ok {
			return nil, fmt.Errorf("puzzle %q has no part %d, available: %v", p.Name, part, p.PartNumbers())
		}
		return []int{part}, nil
	}
	return slices.DeleteFunc(p.PartNumbers(), func(n int) bool { return !def.RunsPart(n) }), nil
}

func (a *App) runPuzzle(ctx context.Context, sel selector.Selector) error {
	name := sel.Puzzle
	p, _ := a.registry.Puzzle(name)
	def, _ := a.registry.Definition(name)
	logger := ctxlog.FromContext(ctx).With("puzzle", name, "day", p.Day)
	ctx = ctxlog.WithLogger(ctx, logger)

	parts, err := a.selectParts(p, def, sel)
	if err != nil {
		return err
	}
	logger.Debug("Puzzle selected.", "selection", sel.String(), "parts", parts)

	var text string
	loaded := false
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return err
		}
		solve := p.Parts[part]
		partCtx := ctxlog.WithLogger(ctx, logger.With("part", part))

		if !a.config.SkipSamples {
			if err := a.checkSamples(partCtx, def, part, solve); err != nil {
				return err
			}
		}
		if a.config.SamplesOnly {
			continue
		}

		if !loaded {
			if text, err = a.inputs.Read(ctx, name, def.Input); err != nil {
				return fmt.Errorf("puzzle %q: %w", name, err)
			}
			loaded = true
		}

		start := time.Now()
		answer, err := solve(partCtx, text)
		if err != nil {
			return fmt.Errorf("puzzle %q part %d: %w", name, part, err)
		}
		logger.Debug("Part solved.", "part", part, "answer", answer, "duration", time.Since(start))

		if want, ok := def.Want[part]; ok && want != answer {
			return &MismatchError{Puzzle: name, Part: part, Want: want, Got: answer}
		}
		fmt.Fprintf(a.outW, "%s part %d: %d\n", name, part, answer)
	}
	return nil
}

// checkSamples solves every sample that declares an answer for part. In
// samples-only mode the sample answers are printed as well.
func (a *App) checkSamples(ctx context.Context, def *config.PuzzleDefinition, part int, solve puzzle.Solver) error {
	logger := ctxlog.FromContext(ctx)
	samples := def.SamplesFor(part)
	if len(samples) == 0 && a.config.SamplesOnly {
		logger.Warn("No samples declared for this part.")
	}

	for _, s := range samples {
		got, err := solve(ctx, s.Input)
		if err != nil {
			return fmt.Errorf("puzzle %q part %d: sample %q: %w", def.Name, part, s.Name, err)
		}
		if want := s.Want[part]; got != want {
			return &MismatchError{Puzzle: def.Name, Part: part, Sample: s.Name, Want: want, Got: got}
		}
		logger.Debug("Sample passed.", "sample", s.Name, "answer", got)
		if a.config.SamplesOnly {
			fmt.Fprintf(a.outW, "%s part %d sample %s: %d\n", def.Name, part, s.Name, got)
		}
	}
	return nil
}
