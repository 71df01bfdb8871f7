// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/Resolve/Lookup/Nodes/NodeCount/Owns,
//       plus Freeze/Frozen/Strict policy getters.
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - Lookups return the first node registered under a key.

package core

import (
	"fmt"
	"log/slog"
)

// AddNode creates a node with the given key, appends it to the node
// collection and returns it.
//
// Defaults: Walkable=true, Position=(0,0,0), no outgoing edges.
// Duplicate keys are permitted and create a second entry; Resolve and
// AddEdge keep returning the first node registered under the key.
//
// Errors:
//   - ErrGraphFrozen if Freeze was called.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddNode(key K, opts ...NodeOption) (*Node[K], error) {
	if g.frozen {
		g.logger.Debug("add node rejected on frozen graph", slog.Any("key", key))

		return nil, fmt.Errorf("%w: add node %v", ErrGraphFrozen, key)
	}

	cfg := nodeConfig{walkable: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := &Node[K]{
		Key:      key,
		Walkable: cfg.walkable,
		Position: cfg.position,
		owner:    g,
	}
	g.nodes = append(g.nodes, n)
	// first writer wins: duplicates stay reachable only through Nodes()
	if _, ok := g.index[key]; !ok {
		g.index[key] = n
	}

	return n, nil
}

// Lookup returns the first node registered under key.
// Complexity: O(1).
func (g *Graph[K]) Lookup(key K) (*Node[K], bool) {
	n, ok := g.index[key]

	return n, ok
}

// Resolve is the single identity-resolution point at the graph boundary.
// Algorithms accept resolved nodes; callers holding keys go through here.
//
// Errors:
//   - ErrNodeNotFound (wrapped with the key) if key was never added.
func (g *Graph[K]) Resolve(key K) (*Node[K], error) {
	n, ok := g.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, key)
	}

	return n, nil
}

// Nodes returns a copy of the node collection in insertion order.
// Complexity: O(V).
func (g *Graph[K]) Nodes() []*Node[K] {
	res := make([]*Node[K], len(g.nodes))
	copy(res, g.nodes)

	return res
}

// NodeCount returns the number of registered nodes, duplicates included.
func (g *Graph[K]) NodeCount() int { return len(g.nodes) }

// Owns reports whether n was created by this graph.
func (g *Graph[K]) Owns(n *Node[K]) bool {
	return n != nil && n.owner == g
}

// Freeze pins the graph: later AddNode/AddEdge/AddLink/Connect calls fail
// with ErrGraphFrozen. Freezing is irreversible.
func (g *Graph[K]) Freeze() { g.frozen = true }

// Frozen reports whether Freeze was called.
func (g *Graph[K]) Frozen() bool { return g.frozen }

// Strict reports whether dangling edge identities are reported as errors.
func (g *Graph[K]) Strict() bool { return g.strict }

// CheckNodes validates search inputs: the graph must be non-nil and every
// node must be non-nil and owned by g. Search packages call it once at
// their entry point.
//
// Errors: ErrNilGraph, ErrNilNode, ErrForeignNode.
func (g *Graph[K]) CheckNodes(nodes ...*Node[K]) error {
	if g == nil {
		return ErrNilGraph
	}
	for i, n := range nodes {
		if n == nil {
			return fmt.Errorf("%w: argument %d", ErrNilNode, i)
		}
		if n.owner != g {
			return fmt.Errorf("%w: %v", ErrForeignNode, n.Key)
		}
	}

	return nil
}
