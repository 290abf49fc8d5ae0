// Package dag holds a small directed graph with cycle detection and a stable
// topological order. Solvers use it to model ordering constraints.
package dag
