package config

import (
	"context"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads every manifest file of the loader's format found under the
	// given paths and translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Manifest, error)
}
