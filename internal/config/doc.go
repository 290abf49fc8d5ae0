// Package config defines the format-agnostic puzzle manifest model for the
// application, along with the Loader interface for reading manifests from
// various sources.
//
// The `config.Manifest` is the single source of truth for the `registry` and
// `app` packages. Concrete implementations of the Loader interface, such as
// for HCL or YAML, are provided in separate packages.
package config
