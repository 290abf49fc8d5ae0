// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI.
//
// A run loads the puzzle manifests, registers the compiled puzzle modules,
// checks that both agree, and then solves the selected puzzles in order:
// samples first, then the real input.
package app
