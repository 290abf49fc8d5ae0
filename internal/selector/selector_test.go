package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  Selector
	}{
		{
			name:     "puzzle only",
			raw:      "guard",
			expected: Selector{Puzzle: "guard"},
		},
		{
			name:     "puzzle with part",
			raw:      "guard[2]",
			expected: Selector{Puzzle: "guard", Part: 2},
		},
		{
			name:     "name with underscore and digits",
			raw:      "day_06[1]",
			expected: Selector{Puzzle: "day_06", Part: 1},
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - part zero",
			raw:       "guard[0]",
			expectErr: true,
		},
		{
			name:      "error - non numeric part",
			raw:       "guard[x]",
			expectErr: true,
		},
		{
			name:      "error - dotted path",
			raw:       "guard.part1",
			expectErr: true,
		},
		{
			name:      "error - just hyphen",
			raw:       "-",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, sel)
			assert.Equal(t, tc.raw, sel.String(), "String() must round-trip")
		})
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll([]string{"dial", "guard[2]"})
	require.NoError(t, err)
	assert.Equal(t, []Selector{{Puzzle: "dial"}, {Puzzle: "guard", Part: 2}}, got)

	_, err = ParseAll([]string{"dial", "bad name"})
	assert.Error(t, err)
}
