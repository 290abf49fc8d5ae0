package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/puzzlegrid/internal/app"
	"github.com/specialistvlad/puzzlegrid/internal/cli"
	"github.com/specialistvlad/puzzlegrid/internal/config"
	"github.com/specialistvlad/puzzlegrid/internal/hcl_adapter"
	"github.com/specialistvlad/puzzlegrid/internal/yaml_adapter"
)

// main is the entrypoint for the puzzlegrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Answers go to outW; logs and usage text go to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Manifests may be written in HCL, YAML, or both.
	loader := config.Chain(hcl_adapter.NewLoader(), yaml_adapter.NewLoader())
	puzzleApp, err := app.NewApp(outW, errW, appConfig, loader)
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return puzzleApp.Run(ctx)
}
