package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/puzzlegrid/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMap = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func mustParse(t *testing.T, input string) (*Grid, Guard) {
	t.Helper()
	g, start, err := Parse(input)
	require.NoError(t, err)
	return g, start
}

func TestSample(t *testing.T) {
	ctx := context.Background()

	got, err := SolveCoverage(ctx, sampleMap)
	require.NoError(t, err)
	assert.Equal(t, 41, got)

	got, err = SolveObstructions(ctx, sampleMap)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestParse(t *testing.T) {
	// --- Act ---
	g, start := mustParse(t, sampleMap)

	// --- Assert ---
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 10, g.Height())
	assert.Equal(t, Guard{Pos: Position{4, 6}, Heading: North}, start)
	assert.Equal(t, Obstacle, g.At(Position{4, 0}))
	assert.Equal(t, Open, g.At(Position{4, 6}), "the guard stands on open floor")
}

func TestParse_Markers(t *testing.T) {
	testCases := map[string]Heading{
		"^": North,
		">": East,
		"v": South,
		"<": West,
	}
	for marker, want := range testCases {
		t.Run(marker, func(t *testing.T) {
			_, start := mustParse(t, "..\n."+marker+"\n")
			assert.Equal(t, Guard{Pos: Position{1, 1}, Heading: want}, start)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "empty", input: "", wantLine: 0},
		{name: "no guard", input: "..#\n...\n", wantLine: 0},
		{name: "two guards", input: "^..\n..>\n", wantLine: 2},
		{name: "ragged rows", input: "...\n.^\n", wantLine: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.input)

			var perr *puzzle.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.wantLine, perr.Line)
		})
	}
}

func TestStep(t *testing.T) {
	g, start := mustParse(t, "#..\n.^.\n...\n")

	t.Run("moves forward onto open floor", func(t *testing.T) {
		next, ok := Step(g, Guard{Pos: Position{1, 1}, Heading: West})
		require.True(t, ok)
		assert.Equal(t, Guard{Pos: Position{0, 1}, Heading: West}, next)
	})

	t.Run("turns right in front of an obstacle", func(t *testing.T) {
		next, ok := Step(g, Guard{Pos: Position{0, 1}, Heading: North})
		require.True(t, ok)
		assert.Equal(t, Guard{Pos: Position{0, 1}, Heading: East}, next)
	})

	t.Run("leaving the grid ends the patrol", func(t *testing.T) {
		next, ok := Step(g, Guard{Pos: Position{1, 0}, Heading: North})
		assert.False(t, ok)
		assert.Equal(t, Guard{Pos: Position{1, 0}, Heading: North}, next)
	})

	t.Run("start heading is north", func(t *testing.T) {
		assert.Equal(t, North, start.Heading)
	})
}

func TestStep_FourTurnsRestoreHeading(t *testing.T) {
	// --- Arrange ---
	g, start := mustParse(t, ".#.\n#^#\n.#.\n")

	// --- Act ---
	guard := start
	for i := 0; i < 4; i++ {
		var ok bool
		guard, ok = Step(g, guard)
		require.True(t, ok)
		assert.Equal(t, start.Pos, guard.Pos, "turning must not move the guard")
	}

	// --- Assert ---
	assert.Equal(t, start, guard)
}

func TestCoverage_DegenerateExit(t *testing.T) {
	testCases := map[string]string{
		"single cell":           "^\n",
		"edge facing out":       "^.\n..\n",
		"west edge facing west": "..\n<.\n",
	}
	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			g, start := mustParse(t, input)
			got, err := Coverage(g, start)
			require.NoError(t, err)
			assert.Equal(t, 1, got)
			assert.False(t, IsLoop(g, start))
		})
	}
}

func TestCoverage_TrappedGuard(t *testing.T) {
	g, start := mustParse(t, ".#.\n#^#\n.#.\n")

	got, err := Coverage(g, start)

	require.ErrorIs(t, err, ErrLoop)
	assert.Equal(t, 1, got)
	assert.True(t, IsLoop(g, start))
}

func TestIsLoop_Sample(t *testing.T) {
	g, start := mustParse(t, sampleMap)

	assert.False(t, IsLoop(g, start), "the baseline sample map has no loop")
	// Placing an obstacle next to the guard's starting position creates a loop.
	assert.True(t, IsLoop(g.WithObstacle(Position{3, 6}), start))
}

func TestIdempotence(t *testing.T) {
	g, start := mustParse(t, sampleMap)

	first, err := Coverage(g, start)
	require.NoError(t, err)
	second, err := Coverage(g, start)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, IsLoop(g, start), IsLoop(g, start))
}

func TestWithObstacle_CopyOnWrite(t *testing.T) {
	g, _ := mustParse(t, sampleMap)
	p := Position{0, 0}

	blocked := g.WithObstacle(p)

	assert.Equal(t, Obstacle, blocked.At(p))
	assert.Equal(t, Open, g.At(p), "the original grid must be unchanged")
}

func TestObstacleOffPath_DoesNotChangeOutcome(t *testing.T) {
	// --- Arrange ---
	g, start := mustParse(t, sampleMap)
	onPath := map[Position]bool{}
	for guard, ok := start, true; ok; guard, ok = Step(g, guard) {
		onPath[guard.Pos] = true
	}
	baseline := IsLoop(g, start)

	// --- Act & Assert ---
	checked := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := Position{x, y}
			if onPath[p] || g.At(p) != Open {
				continue
			}
			checked++
			assert.Equal(t, baseline, IsLoop(g.WithObstacle(p), start), "obstacle at %v", p)
		}
	}
	assert.Positive(t, checked)
}

func TestCountObstructions_SkipsStart(t *testing.T) {
	// The guard walks up, turns twice and comes back down through its start
	// cell. Blocking the start would bounce it around the centre forever.
	g, start := mustParse(t, ".#.\n#.#\n.^.\n")
	require.False(t, IsLoop(g, start))
	require.True(t, IsLoop(g.WithObstacle(start.Pos), start))

	assert.Equal(t, 0, CountObstructions(g, start))
}

func TestSolve_PropagatesParseError(t *testing.T) {
	_, err := SolveCoverage(context.Background(), "....\n")
	var perr *puzzle.ParseError
	assert.True(t, errors.As(err, &perr))
}
