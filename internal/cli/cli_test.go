package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/puzzlegrid/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "defaults",
			args: nil,
			want: &app.Config{ManifestPath: "puzzles", InputsPath: "inputs", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "long flags and puzzle names",
			args: []string{"-manifest", "m.hcl", "-inputs", "data", "-part", "2", "-log-level", "DEBUG", "-log-format", "json", "guard[1]", "dial"},
			want: &app.Config{
				ManifestPath: "m.hcl",
				InputsPath:   "data",
				Puzzles:      []string{"guard[1]", "dial"},
				Part:         2,
				LogFormat:    "json",
				LogLevel:     "debug",
			},
		},
		{
			name: "shorthands win",
			args: []string{"-manifest", "long", "-m", "short", "-i", "in", "-samples-only"},
			want: &app.Config{ManifestPath: "short", InputsPath: "in", SamplesOnly: true, LogFormat: "text", LogLevel: "info"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Act ---
			got, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			// --- Assert ---
			require.NoError(t, err)
			assert.False(t, shouldExit)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-samples-only")
}

func TestParse_UsageErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-nope"}, wantMsg: "flag provided but not defined: -nope"},
		{name: "bad level", args: []string{"-log-level", "loud"}, wantMsg: `invalid log level "loud"`},
		{name: "bad format", args: []string{"-log-format", "xml"}, wantMsg: `invalid log format "xml"`},
		{name: "negative part", args: []string{"-part", "-1"}, wantMsg: "part must be 0"},
		{name: "bad selection", args: []string{"guard[x]"}, wantMsg: `invalid puzzle selection "guard[x]"`},
		{name: "sample flags conflict", args: []string{"-samples-only", "-skip-samples"}, wantMsg: "cannot be combined"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
