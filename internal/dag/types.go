package dag

// Graph is a collection of nodes and their dependencies. It is not safe for
// concurrent use.
type Graph[K comparable] struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[K]*node[K]
	// order is the insertion order of the nodes; it breaks ties in Sorted.
	order []K
}

type node[K comparable] struct {
	id K
	// deps holds the nodes this node depends on (predecessors).
	deps map[K]*node[K]
	// dependents holds the nodes that depend on this node (successors).
	dependents map[K]*node[K]
}
