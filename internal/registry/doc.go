// Package registry provides the central "glue" for the puzzle module system.
//
// The Registry is responsible for storing mappings between the puzzle names
// used in manifests (e.g., "guard") and the compiled Go solvers that
// implement each part. It also holds the parsed, format-agnostic puzzle
// definitions from the manifests themselves.
//
// During application startup, the registry is populated and then validated to
// ensure that the Go code and the manifests are in sync, so that a typo in a
// manifest is reported before any puzzle runs.
package registry
