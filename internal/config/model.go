package config

import (
	"fmt"
	"slices"
)

// Manifest is the unified, format-agnostic representation of all puzzle
// declarations, in the order they were read.
type Manifest struct {
	Puzzles []*PuzzleDefinition
}

// NewManifest returns an empty Manifest.
func NewManifest() *Manifest {
	return &Manifest{Puzzles: []*PuzzleDefinition{}}
}

// PuzzleDefinition is the format-agnostic representation of a `puzzle` block.
type PuzzleDefinition struct {
	Name        string
	Day         int
	Description string
	// Input is the input file name, relative to the inputs directory. Empty
	// means "<Name>.txt".
	Input string
	// Parts restricts which parts run. Empty means every registered part.
	Parts []int
	// Want holds expected answers for the real input, keyed by part.
	Want map[int]int
	// Samples are small published examples checked before the real input.
	Samples []*Sample
	// Source is the file the definition was read from.
	Source string
}

// Sample is an inline example input with its expected answers.
type Sample struct {
	Name  string
	Input string
	Want  map[int]int
}

// Puzzle returns the definition with the given name.
func (m *Manifest) Puzzle(name string) (*PuzzleDefinition, bool) {
	for _, p := range m.Puzzles {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Add appends a definition, rejecting duplicate puzzle names.
func (m *Manifest) Add(def *PuzzleDefinition) error {
	if existing, ok := m.Puzzle(def.Name); ok {
		return fmt.Errorf("puzzle %q declared twice (%s and %s)", def.Name, existing.Source, def.Source)
	}
	m.Puzzles = append(m.Puzzles, def)
	return nil
}

// Merge appends every definition of other into m.
func (m *Manifest) Merge(other *Manifest) error {
	for _, def := range other.Puzzles {
		if err := m.Add(def); err != nil {
			return err
		}
	}
	return nil
}

// RunsPart reports whether the definition allows the given part to run.
func (p *PuzzleDefinition) RunsPart(part int) bool {
	return len(p.Parts) == 0 || slices.Contains(p.Parts, part)
}

// SamplesFor returns the samples that declare an expected answer for part.
func (p *PuzzleDefinition) SamplesFor(part int) []*Sample {
	var out []*Sample
	for _, s := range p.Samples {
		if _, ok := s.Want[part]; ok {
			out = append(out, s)
		}
	}
	return out
}
