package dag

import (
	"errors"
	"fmt"
)

// ErrCycle is wrapped by every error reporting a cycle.
var ErrCycle = errors.New("cycle detected")

// New creates and returns an initialized, empty Graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{
		nodes: make(map[K]*node[K]),
	}
}

// AddNode adds a node with the given ID. Adding an existing ID does nothing.
func (g *Graph[K]) AddNode(id K) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node[K]{
		id:         id,
		deps:       make(map[K]*node[K]),
		dependents: make(map[K]*node[K]),
	}
	g.order = append(g.order, id)
}

// Has reports whether the graph contains id.
func (g *Graph[K]) Has(id K) bool {
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int {
	return len(g.nodes)
}

// AddEdge creates a directed edge from fromID to toID, meaning toID depends
// on fromID. Both nodes must exist and self-edges are rejected.
func (g *Graph[K]) AddEdge(fromID, toID K) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %v -> %v", fromID, fromID)
	}

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %v", fromID)
	}
	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %v", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode
	return nil
}

// Dependents returns the IDs that depend on id, in insertion order.
func (g *Graph[K]) Dependents(id K) ([]K, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %v", id)
	}
	return g.inOrder(n.dependents), nil
}

// Dependencies returns the IDs that id depends on, in insertion order.
func (g *Graph[K]) Dependencies(id K) ([]K, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %v", id)
	}
	return g.inOrder(n.deps), nil
}

func (g *Graph[K]) inOrder(set map[K]*node[K]) []K {
	ids := make([]K, 0, len(set))
	for _, id := range g.order {
		if _, ok := set[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// DetectCycles returns an error wrapping ErrCycle if the graph has a cycle,
// naming the first node found on it.
func (g *Graph[K]) DetectCycles() error {
	// permanent: fully visited and not on a cycle.
	// temporary: on the current DFS path.
	permanent := make(map[K]bool, len(g.nodes))
	temporary := make(map[K]bool)

	var visit func(n *node[K]) error
	visit = func(n *node[K]) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			return fmt.Errorf("%w involving node '%v'", ErrCycle, n.id)
		}

		temporary[n.id] = true
		for _, id := range g.inOrder(n.dependents) {
			if err := visit(g.nodes[id]); err != nil {
				return err
			}
		}
		delete(temporary, n.id)
		permanent[n.id] = true
		return nil
	}

	for _, id := range g.order {
		if err := visit(g.nodes[id]); err != nil {
			return err
		}
	}
	return nil
}

// Sorted returns every node in dependency order. Among nodes that are ready
// at the same time, the one added first comes first. A cyclic graph returns
// the DetectCycles error.
func (g *Graph[K]) Sorted() ([]K, error) {
	if err := g.DetectCycles(); err != nil {
		return nil, err
	}

	indegree := make(map[K]int, len(g.nodes))
	for id, n := range g.nodes {
		indegree[id] = len(n.deps)
	}

	sorted := make([]K, 0, len(g.nodes))
	placed := make(map[K]bool, len(g.nodes))
	for len(sorted) < len(g.order) {
		for _, id := range g.order {
			if placed[id] || indegree[id] > 0 {
				continue
			}
			placed[id] = true
			sorted = append(sorted, id)
			for dep := range g.nodes[id].dependents {
				indegree[dep]--
			}
			// Restart the scan so earlier-added nodes that just became ready win.
			break
		}
	}
	return sorted, nil
}
