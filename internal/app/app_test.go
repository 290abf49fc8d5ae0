package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/puzzlegrid/internal/config"
	"github.com/specialistvlad/puzzlegrid/internal/input"
	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type staticLoader struct {
	manifest *config.Manifest
	err      error
}

func (s staticLoader) Load(context.Context, ...string) (*config.Manifest, error) {
	return s.manifest, s.err
}

// lengthModule registers "length": part 1 counts bytes, part 2 counts lines.
type lengthModule struct{}

func (lengthModule) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name: "length",
		Day:  2,
		Parts: map[int]puzzle.Solver{
			1: func(_ context.Context, in string) (int, error) { return len(in), nil },
			2: func(_ context.Context, in string) (int, error) { return len(puzzle.Lines(in)), nil },
		},
	})
}

// strictModule registers "strict", which rejects any input containing "!".
type strictModule struct{}

func (strictModule) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.RegisteredPuzzle{
		Name: "strict",
		Day:  1,
		Parts: map[int]puzzle.Solver{
			1: func(_ context.Context, in string) (int, error) {
				if i := strings.Index(in, "!"); i >= 0 {
					return 0, puzzle.LineError(1, in, "bang at %d", i)
				}
				return 1, nil
			},
		},
	})
}

func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRun_SolvesEveryPuzzleInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	// --- Arrange ---
	dir := writeInputs(t, map[string]string{"length.txt": "ab\ncd\n", "strict.txt": "ok\n"})
	cfg := &Config{ManifestPath: "unused", InputsPath: dir}
	app, out, logs := SetupAppTest(t, cfg, staticLoader{manifest: config.NewManifest()}, lengthModule{}, strictModule{})

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "strict part 1: 1\nlength part 1: 5\nlength part 2: 2\n", out.String())
	assert.Contains(t, logs.String(), "run_id=")
}

func TestRun_ManifestOrderAndInputOverride(t *testing.T) {
	dir := writeInputs(t, map[string]string{"custom.txt": "xyz"})
	manifest := &config.Manifest{Puzzles: []*config.PuzzleDefinition{
		{Name: "length", Input: "custom.txt", Parts: []int{1}, Want: map[int]int{1: 3}},
	}}
	cfg := &Config{ManifestPath: "puzzles", InputsPath: dir, Puzzles: []string{"length"}}
	app, out, _ := SetupAppTest(t, cfg, staticLoader{manifest: manifest}, lengthModule{}, strictModule{})

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "length part 1: 3\n", out.String())
}

func TestRun_Samples(t *testing.T) {
	manifest := &config.Manifest{Puzzles: []*config.PuzzleDefinition{{
		Name: "length",
		Samples: []*config.Sample{
			{Name: "short", Input: "abc", Want: map[int]int{1: 3, 2: 1}},
			{Name: "two-lines", Input: "a\nb", Want: map[int]int{2: 2}},
		},
	}}}

	t.Run("samples only prints sample answers without reading input", func(t *testing.T) {
		cfg := &Config{ManifestPath: "p", InputsPath: t.TempDir(), SamplesOnly: true}
		app, out, _ := SetupAppTest(t, cfg, staticLoader{manifest: manifest}, lengthModule{})

		require.NoError(t, app.Run(context.Background()))
		assert.Equal(t, "length part 1 sample short: 3\nlength part 2 sample short: 1\nlength part 2 sample two-lines: 2\n", out.String())
	})

	t.Run("samples checked before the real input", func(t *testing.T) {
		dir := writeInputs(t, map[string]string{"length.txt": "hello"})
		cfg := &Config{ManifestPath: "p", InputsPath: dir, Part: 1}
		app, out, _ := SetupAppTest(t, cfg, staticLoader{manifest: manifest}, lengthModule{})

		require.NoError(t, app.Run(context.Background()))
		assert.Equal(t, "length part 1: 5\n", out.String())
	})

	t.Run("skip samples", func(t *testing.T) {
		bad := &config.Manifest{Puzzles: []*config.PuzzleDefinition{{
			Name:    "length",
			Samples: []*config.Sample{{Name: "wrong", Input: "abc", Want: map[int]int{1: 99}}},
		}}}
		dir := writeInputs(t, map[string]string{"length.txt": "hello"})
		cfg := &Config{ManifestPath: "p", InputsPath: dir, Part: 1, SkipSamples: true}
		app, out, _ := SetupAppTest(t, cfg, staticLoader{manifest: bad}, lengthModule{})

		require.NoError(t, app.Run(context.Background()))
		assert.Equal(t, "length part 1: 5\n", out.String())
	})
}

func TestRun_Failures(t *testing.T) {
	testCases := []struct {
		name     string
		manifest *config.Manifest
		files    map[string]string
		cfg      Config
		check    func(t *testing.T, err error)
	}{
		{
			name: "sample mismatch",
			manifest: &config.Manifest{Puzzles: []*config.PuzzleDefinition{{
				Name:    "length",
				Samples: []*config.Sample{{Name: "wrong", Input: "abc", Want: map[int]int{1: 4}}},
			}}},
			files: map[string]string{"length.txt": "x"},
			check: func(t *testing.T, err error) {
				var mismatch *MismatchError
				require.ErrorAs(t, err, &mismatch)
				assert.Equal(t, &MismatchError{Puzzle: "length", Part: 1, Sample: "wrong", Want: 4, Got: 3}, mismatch)
				assert.EqualError(t, err, `puzzle "length" part 1: sample "wrong": got 3, want 4`)
			},
		},
		{
			name: "real input mismatch",
			manifest: &config.Manifest{Puzzles: []*config.PuzzleDefinition{{
				Name: "length", Want: map[int]int{2: 7},
			}}},
			files: map[string]string{"length.txt": "x"},
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, `puzzle "length" part 2: input: got 1, want 7`)
			},
		},
		{
			name:     "missing input",
			manifest: config.NewManifest(),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, input.ErrNotFound)
			},
		},
		{
			name:     "parse error keeps its type",
			manifest: config.NewManifest(),
			files:    map[string]string{"length.txt": "x", "strict.txt": "no!"},
			check: func(t *testing.T, err error) {
				var perr *puzzle.ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, 1, perr.Line)
				assert.True(t, strings.HasPrefix(err.Error(), `puzzle "strict" part 1: `))
			},
		},
		{
			name:     "unknown puzzle",
			manifest: config.NewManifest(),
			cfg:      Config{Puzzles: []string{"nope"}},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnknownPuzzle)
			},
		},
		{
			name:     "unknown part",
			manifest: config.NewManifest(),
			cfg:      Config{Puzzles: []string{"strict"}, Part: 2},
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, `puzzle "strict" has no part 2, available: [1]`)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			cfg := tc.cfg
			cfg.ManifestPath = "p"
			cfg.InputsPath = writeInputs(t, tc.files)
			app, _, _ := SetupAppTest(t, &cfg, staticLoader{manifest: tc.manifest}, strictModule{}, lengthModule{})

			// --- Act ---
			err := app.Run(context.Background())

			// --- Assert ---
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestRun_SelectionWithPart(t *testing.T) {
	dir := writeInputs(t, map[string]string{"length.txt": "ab\ncd"})
	// The part in the selection wins over the -part flag.
	cfg := &Config{ManifestPath: "p", InputsPath: dir, Puzzles: []string{"length[2]"}, Part: 1}
	app, out, _ := SetupAppTest(t, cfg, staticLoader{manifest: config.NewManifest()}, lengthModule{}, strictModule{})

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "length part 2: 2\n", out.String())
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	dir := writeInputs(t, map[string]string{"strict.txt": "!"})
	cfg := &Config{ManifestPath: "p", InputsPath: dir}
	app, out, _ := SetupAppTest(t, cfg, staticLoader{manifest: config.NewManifest()}, strictModule{}, lengthModule{})

	require.Error(t, app.Run(context.Background()))
	assert.Empty(t, out.String(), "length must not run after strict failed")
}

func TestRun_CancelledContext(t *testing.T) {
	dir := writeInputs(t, map[string]string{"strict.txt": "ok"})
	cfg := &Config{ManifestPath: "p", InputsPath: dir}
	app, _, _ := SetupAppTest(t, cfg, staticLoader{manifest: config.NewManifest()}, strictModule{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, app.Run(ctx), context.Canceled)
}

func TestNewApp_Errors(t *testing.T) {
	cfg, err := NewConfig(Config{ManifestPath: "p", InputsPath: "in"})
	require.NoError(t, err)

	t.Run("loader failure", func(t *testing.T) {
		_, err := NewApp(&SafeBuffer{}, &SafeBuffer{}, cfg, staticLoader{err: errors.New("boom")}, lengthModule{})
		assert.EqualError(t, err, "failed to load manifest: boom")
	})

	t.Run("manifest puzzle without solver", func(t *testing.T) {
		manifest := &config.Manifest{Puzzles: []*config.PuzzleDefinition{{Name: "ghost", Source: "x.hcl"}}}
		_, err := NewApp(&SafeBuffer{}, &SafeBuffer{}, cfg, staticLoader{manifest: manifest}, lengthModule{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "puzzle 'ghost' (x.hcl)")
	})
}

func TestNewApp_DefaultsToCoreModules(t *testing.T) {
	cfg, err := NewConfig(Config{InputsPath: "in"})
	require.NoError(t, err)

	app, err := NewApp(&SafeBuffer{}, &SafeBuffer{}, cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"dial", "lists", "reports", "mulscan", "wordsearch", "pageorder", "guard", "calibration", "antennas", "diskmap"}, app.Registry().Names())
}
