package config

import (
	"context"
	"fmt"
)

// chain fans a Load call out to several format-specific loaders.
type chain []Loader

// Chain combines loaders so that a single manifest path may hold files of
// several formats. Manifests are merged in loader order; a puzzle declared
// by two files is an error.
func Chain(loaders ...Loader) Loader {
	return chain(loaders)
}

// Load implements the Loader interface.
func (c chain) Load(ctx context.Context, paths ...string) (*Manifest, error) {
	merged := NewManifest()
	for _, l := range c {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(m); err != nil {
			return nil, fmt.Errorf("failed to merge manifests: %w", err)
		}
	}
	return merged, nil
}
