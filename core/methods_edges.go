// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddLink/Connect/Edges/EdgeCount/HasEdge.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - A node's Out() list preserves the order its edges were added.
// AI-HINT (file):
//   - Lenient graphs return (nil, nil) from AddEdge on a dangling identity.
//   - Strict graphs (WithStrictEdges) return ErrNodeNotFound instead.

package core

import (
	"fmt"
	"log/slog"
)

// AddEdge resolves both identities and appends a directed edge from→to to the
// edge collection and to the origin node's outgoing list.
//
// Behavior highlights:
//   - No de-duplication: calling twice yields a parallel edge.
//   - Self-loops are accepted.
//   - Dangling identity, lenient graph: returns (nil, nil) and changes nothing.
//   - Dangling identity, strict graph: returns an error wrapping ErrNodeNotFound.
//
// Errors:
//   - ErrGraphFrozen if Freeze was called.
//   - ErrNodeNotFound in strict mode only.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K) (*Edge[K], error) {
	if g.frozen {
		return nil, fmt.Errorf("%w: add edge %v→%v", ErrGraphFrozen, from, to)
	}

	src, okFrom := g.index[from]
	dst, okTo := g.index[to]
	if !okFrom || !okTo {
		if g.strict {
			missing := from
			if okFrom {
				missing = to
			}

			return nil, fmt.Errorf("%w: edge %v→%v references %v", ErrNodeNotFound, from, to, missing)
		}
		g.logger.Debug("edge skipped: dangling identity",
			slog.Any("from", from),
			slog.Any("to", to),
			slog.Bool("from_found", okFrom),
			slog.Bool("to_found", okTo),
		)

		return nil, nil
	}

	return g.link(src, dst), nil
}

// AddLink adds from→to and, for Bi, to→from. A lenient graph skips each
// direction independently when an identity is missing.
func (g *Graph[K]) AddLink(from, to K, dir Direction) error {
	if _, err := g.AddEdge(from, to); err != nil {
		return err
	}
	if dir != Bi {
		return nil
	}
	_, err := g.AddEdge(to, from)

	return err
}

// Connect adds from→to between nodes the caller already holds, skipping the
// identity lookup. Builders that create nodes and wire them in one pass use it.
//
// Errors:
//   - ErrNilNode if either node is nil.
//   - ErrForeignNode if either node is owned by another graph.
//   - ErrGraphFrozen if Freeze was called.
func (g *Graph[K]) Connect(from, to *Node[K]) (*Edge[K], error) {
	if from == nil || to == nil {
		return nil, ErrNilNode
	}
	if !g.Owns(from) || !g.Owns(to) {
		return nil, fmt.Errorf("%w: %v→%v", ErrForeignNode, from, to)
	}
	if g.frozen {
		return nil, fmt.Errorf("%w: connect %v→%v", ErrGraphFrozen, from, to)
	}

	return g.link(from, to), nil
}

// link appends the edge to both the global catalog and the origin's list.
func (g *Graph[K]) link(from, to *Node[K]) *Edge[K] {
	e := &Edge[K]{From: from, To: to}
	g.edges = append(g.edges, e)
	from.out = append(from.out, e)

	return e
}

// Edges returns a copy of the edge collection in insertion order.
// Complexity: O(E).
func (g *Graph[K]) Edges() []*Edge[K] {
	res := make([]*Edge[K], len(g.edges))
	copy(res, g.edges)

	return res
}

// EdgeCount returns the number of directed edges, parallel edges included.
func (g *Graph[K]) EdgeCount() int { return len(g.edges) }

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(deg(from)).
func (g *Graph[K]) HasEdge(from, to *Node[K]) bool {
	if from == nil || to == nil || !g.Owns(from) {
		return false
	}
	for _, e := range from.out {
		if e.To == to {
			return true
		}
	}

	return false
}
