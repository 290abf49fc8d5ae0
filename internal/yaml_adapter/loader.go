// Package yaml_adapter implements config.Loader for YAML puzzle manifests.
//
//	puzzles:
//	  - name: guard
//	    day: 6
//	    input: guard.txt
//	    parts: [1, 2]
//	    want: {part1: 41}
//	    samples:
//	      - name: example
//	        input: |
//	          ....#.....
//	        want: {part1: 41, part2: 6}
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/specialistvlad/puzzlegrid/internal/config"
	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/fsutil"
	"github.com/specialistvlad/puzzlegrid/internal/input"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Puzzles []puzzleDoc `yaml:"puzzles"`
}

type puzzleDoc struct {
	Name        string         `yaml:"name"`
	Day         int            `yaml:"day"`
	Description string         `yaml:"description"`
	Input       string         `yaml:"input"`
	Parts       []int          `yaml:"parts"`
	Want        map[string]int `yaml:"want"`
	Samples     []sampleDoc    `yaml:"samples"`
}

type sampleDoc struct {
	Name  string         `yaml:"name"`
	Input string         `yaml:"input"`
	Want  map[string]int `yaml:"want"`
}

// Load parses every .yaml and .yml file found under the given paths.
// Paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	manifest := config.NewManifest()
	seen := make(map[string]struct{})

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		for _, file := range files {
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}

			if err := l.loadFile(ctx, file, manifest); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("YAML loading complete.", "puzzles", len(manifest.Puzzles))
	return manifest, nil
}

func (l *Loader) loadFile(ctx context.Context, file string, manifest *config.Manifest) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}

	for _, doc := range root.Puzzles {
		def, err := translatePuzzle(doc, file)
		if err != nil {
			return fmt.Errorf("in %s: %w", file, err)
		}
		if err := manifest.Add(def); err != nil {
			return err
		}
	}
	ctxlog.FromContext(ctx).Debug("Successfully loaded puzzles from YAML file.", "file", file, "puzzles", len(root.Puzzles))
	return nil
}

func translatePuzzle(doc puzzleDoc, file string) (*config.PuzzleDefinition, error) {
	if doc.Name == "" {
		return nil, errors.New("puzzle is missing a name")
	}
	if doc.Day < 0 {
		return nil, fmt.Errorf("puzzle '%s': day must not be negative, got %d", doc.Name, doc.Day)
	}
	for _, part := range doc.Parts {
		if part < 1 {
			return nil, fmt.Errorf("puzzle '%s': parts must be positive, got %d", doc.Name, part)
		}
	}

	want, err := translateWant(doc.Want)
	if err != nil {
		return nil, fmt.Errorf("puzzle '%s': %w", doc.Name, err)
	}

	def := &config.PuzzleDefinition{
		Name:        doc.Name,
		Day:         doc.Day,
		Description: doc.Description,
		Input:       doc.Input,
		Parts:       doc.Parts,
		Want:        want,
		Source:      file,
	}

	for i, s := range doc.Samples {
		name := s.Name
		if name == "" {
			name = strconv.Itoa(i + 1)
		}
		text := input.Normalize(s.Input)
		if text == "" {
			return nil, fmt.Errorf("puzzle '%s', sample '%s': input must not be empty", doc.Name, name)
		}
		sampleWant, err := translateWant(s.Want)
		if err != nil {
			return nil, fmt.Errorf("puzzle '%s', sample '%s': %w", doc.Name, name, err)
		}
		def.Samples = append(def.Samples, &config.Sample{Name: name, Input: text, Want: sampleWant})
	}

	return def, nil
}

// translateWant converts `partN`/`N` keys into part numbers.
func translateWant(raw map[string]int) (map[int]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	want := make(map[int]int, len(raw))
	for key, answer := range raw {
		if err := config.AddWant(want, key, answer); err != nil {
			return nil, err
		}
	}
	return want, nil
}
