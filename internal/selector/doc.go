/*
Package selector provides a structured representation for the puzzle
selections given on the command line.

The format is a puzzle name with an optional part index, e.g. `guard` or
`guard[2]`. A selection without an index runs every part of the puzzle.

This package centralizes all formatting and parsing of selections so that
the CLI and the application agree on them.
*/
package selector
