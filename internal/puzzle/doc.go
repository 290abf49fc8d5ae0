// Package puzzle defines the contract between the runner and the individual
// puzzle modules: the Solver signature every part implements and the
// ParseError type returned when an input cannot be understood.
//
// Modules depend on this package, the registry they register with and the
// context logger. They never import each other.
package puzzle
