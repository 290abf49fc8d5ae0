package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/puzzlegrid/internal/config"
	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/input"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	manifest *config.Manifest
	inputs   *input.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Answers are written to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all manifests into the format-agnostic model first.
	manifest := config.NewManifest()
	if loader != nil && cfg.ManifestPath != "" {
		var err error
		manifest, err = loader.Load(ctx, cfg.ManifestPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifest: %w", err)
		}
	}
	logger.Debug("Manifest loaded.", "puzzles", len(manifest.Puzzles))

	// Create and populate the registry with Go solvers.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	reg.PopulateDefinitionsFromModel(manifest)

	// A manifest that names puzzles or parts the code does not provide is a
	// configuration error, reported before anything runs.
	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		manifest: manifest,
		inputs:   input.NewLoader(cfg.InputsPath),
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
