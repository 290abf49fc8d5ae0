package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/puzzlegrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("puzzlegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
PuzzleGrid - A runner for small daily puzzle solvers.

Usage:
  puzzlegrid [options] [PUZZLE[PART]...]

Arguments:
  PUZZLE[PART]
    Name of a puzzle to solve, optionally with one part (e.g. guard or
    guard[2]). All puzzles run when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "puzzles", "Path to a manifest file or a directory of .hcl/.yaml manifests.")
	mFlag := flagSet.String("m", "", "Path to the manifest file or directory (shorthand).")
	inputsFlag := flagSet.String("inputs", "inputs", "Directory holding the puzzle input files.")
	iFlag := flagSet.String("i", "", "Directory holding the puzzle input files (shorthand).")
	partFlag := flagSet.Int("part", 0, "Run only this part. 0 runs every part.")
	samplesOnlyFlag := flagSet.Bool("samples-only", false, "Solve the manifest samples only, without reading real inputs.")
	skipSamplesFlag := flagSet.Bool("skip-samples", false, "Do not check the manifest samples before solving.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	manifestPath := *manifestFlag
	if *mFlag != "" {
		manifestPath = *mFlag
	}
	inputsPath := *inputsFlag
	if *iFlag != "" {
		inputsPath = *iFlag
	}

	var puzzles []string
	if flagSet.NArg() > 0 {
		puzzles = flagSet.Args()
	}
	slog.Debug("Puzzle selection determined.", "puzzles", puzzles)

	config, err := app.NewConfig(app.Config{
		ManifestPath: manifestPath,
		InputsPath:   inputsPath,
		Puzzles:      puzzles,
		Part:         *partFlag,
		SamplesOnly:  *samplesOnlyFlag,
		SkipSamples:  *skipSamplesFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
