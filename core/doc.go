// Package core provides the node graph shared by every waypath search:
// nodes with value-typed identities, directed edges owned by the graph,
// and the Path type the algorithms return.
//
// The Graph G = (V,E) is intentionally small:
//
//   - Node identity is any comparable key K (grid coordinates, waypoint names,
//     integer handles). Identity equality, never pointer identity of the key,
//     governs lookups.
//   - Nodes are kept in insertion order. Duplicate keys are permitted; lookups
//     return the first node registered under a key.
//   - Edges are directed and carry no weight. Cost is derived from node
//     positions at query time through a Metric.
//   - A bidirectional link is two directed edges (AddLink with Bi).
//   - Parallel edges are permitted: calling AddEdge twice yields two edges.
//
// Construction Contract:
//
//	By default AddEdge with an identity that was never added via AddNode is a
//	silent no-op: it returns (nil, nil), touches neither the edge collection
//	nor any adjacency list, and writes a debug log record. This lenient policy
//	is deliberate. Callers that want validation construct the graph with
//	WithStrictEdges(), in which case the same call returns an error wrapping
//	ErrNodeNotFound.
//
// Lifecycle:
//
//  1. Create with NewGraph[K](opts...)
//  2. Register nodes with AddNode, then edges with AddEdge/AddLink/Connect
//  3. Optionally Freeze() to pin adjacency; later mutations fail with ErrGraphFrozen
//  4. Resolve identities once at the boundary and hand nodes to an algorithm
//
// Concurrency:
//
//	Graph performs no locking. It is built by a single writer and may be read
//	by many goroutines once construction is finished. Searches in this module
//	keep their scratch state (depth, g/h/f, predecessor) in per-call maps, so
//	independent searches never observe each other's bookkeeping.
//
// Errors:
//
//	ErrNilGraph      - graph pointer is nil.
//	ErrNilNode       - node pointer is nil.
//	ErrNodeNotFound  - identity not registered (Resolve, strict AddEdge).
//	ErrForeignNode   - node belongs to another graph.
//	ErrGraphFrozen   - mutation after Freeze.
package core
