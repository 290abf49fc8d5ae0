// This file contains the logic for translating HCL schema structs into the
// format-agnostic manifest model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/specialistvlad/puzzlegrid/internal/config"
	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/input"
)

// translatePuzzle converts the HCL-specific puzzle schema into the agnostic model.
func (l *Loader) translatePuzzle(ctx context.Context, p *Puzzle, file string) (*config.PuzzleDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("puzzle", p.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Debug("Translating HCL puzzle to internal config model.")

	if p.Day < 0 {
		return nil, fmt.Errorf("puzzle '%s': day must not be negative, got %d", p.Name, p.Day)
	}
	for _, part := range p.Parts {
		if part < 1 {
			return nil, fmt.Errorf("puzzle '%s': parts must be positive, got %d", p.Name, part)
		}
	}

	want, err := decodeWant(ctx, p.Want)
	if err != nil {
		return nil, fmt.Errorf("puzzle '%s': %w", p.Name, err)
	}

	def := &config.PuzzleDefinition{
		Name:        p.Name,
		Day:         p.Day,
		Description: p.Description,
		Input:       p.Input,
		Parts:       p.Parts,
		Want:        want,
		Source:      file,
	}

	for _, s := range p.Samples {
		sample, err := translateSample(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("puzzle '%s', sample '%s': %w", p.Name, s.Name, err)
		}
		def.Samples = append(def.Samples, sample)
	}

	return def, nil
}

// translateSample converts a single HCL sample block.
func translateSample(ctx context.Context, s *Sample) (*config.Sample, error) {
	text := input.Normalize(s.Input)
	if text == "" {
		return nil, fmt.Errorf("input must not be empty")
	}

	want, err := decodeWant(ctx, s.Want)
	if err != nil {
		return nil, err
	}

	return &config.Sample{
		Name:  s.Name,
		Input: text,
		Want:  want,
	}, nil
}
