// Package core defines Node, Edge and Graph, the functional options used to
// configure them, and the sentinel errors returned by graph construction.
package core

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNilNode indicates a nil *Node was supplied.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNodeNotFound indicates an identity that was never registered with AddNode.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrForeignNode indicates a node that is owned by a different graph.
	ErrForeignNode = errors.New("core: node belongs to another graph")

	// ErrGraphFrozen indicates a mutation attempted after Freeze.
	ErrGraphFrozen = errors.New("core: graph is frozen")
)

// Node is a graph vertex.
//
// Key is the node identity. Walkable marks permanent obstacles when false;
// search algorithms never step onto a non-walkable node. Position is used
// only as input to cost and heuristic metrics.
type Node[K comparable] struct {
	// Key identifies the node within its graph.
	Key K

	// Walkable reports whether searches may traverse this node.
	Walkable bool

	// Position is the node's world-space coordinate.
	Position Vec3

	out   []*Edge[K] // outgoing edges in insertion order
	owner *Graph[K]
}

// Out returns the node's outgoing edges in insertion order.
// The returned slice is shared with the node and must not be modified.
func (n *Node[K]) Out() []*Edge[K] { return n.out }

// Degree returns the number of outgoing edges, parallel edges included.
func (n *Node[K]) Degree() int { return len(n.out) }

// Neighbors returns the targets of the outgoing edges in adjacency order.
// Parallel edges produce repeated entries.
func (n *Node[K]) Neighbors() []*Node[K] {
	res := make([]*Node[K], len(n.out))
	for i, e := range n.out {
		res[i] = e.To
	}

	return res
}

// Pos returns the node position. It lets nodes act as cursor waypoints.
func (n *Node[K]) Pos() Vec3 { return n.Position }

// String formats the node by its key.
func (n *Node[K]) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprint(n.Key)
}

// Edge is a directed connection From→To. Edges carry no weight.
type Edge[K comparable] struct {
	From *Node[K]
	To   *Node[K]
}

// String formats the edge as "from→to".
func (e *Edge[K]) String() string {
	return fmt.Sprintf("%v→%v", e.From, e.To)
}

// Direction selects whether a link produces one or two directed edges.
type Direction int

const (
	// Uni adds a single edge from→to.
	Uni Direction = iota
	// Bi adds from→to and to→from.
	Bi
)

// String returns "uni" or "bi".
func (d Direction) String() string {
	if d == Bi {
		return "bi"
	}

	return "uni"
}

// ParseDirection maps "uni"/"bi" (case-sensitive, as written in scene files) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "uni", "":
		return Uni, nil
	case "bi":
		return Bi, nil
	default:
		return Uni, fmt.Errorf("core: unknown link direction %q", s)
	}
}

// graphConfig collects GraphOption values before a Graph is allocated.
type graphConfig struct {
	strict   bool
	logger   *slog.Logger
	capacity int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

// WithStrictEdges makes AddEdge report dangling identities as errors
// instead of silently skipping them.
func WithStrictEdges() GraphOption {
	return func(c *graphConfig) { c.strict = true }
}

// WithLogger routes construction diagnostics (skipped edges, frozen writes)
// to logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) GraphOption {
	return func(c *graphConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCapacity pre-sizes the node storage for n nodes.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// nodeConfig collects NodeOption values for AddNode.
type nodeConfig struct {
	walkable bool
	position Vec3
}

// NodeOption configures a node created by AddNode.
type NodeOption func(*nodeConfig)

// WithWalkable overrides the default walkable=true.
func WithWalkable(walkable bool) NodeOption {
	return func(c *nodeConfig) { c.walkable = walkable }
}

// WithPosition sets the node's world position.
func WithPosition(p Vec3) NodeOption {
	return func(c *nodeConfig) { c.position = p }
}

// Graph owns a set of nodes and the directed edges between them.
//
// nodes and edges preserve insertion order; index maps each key to the
// first node registered under it.
type Graph[K comparable] struct {
	strict bool
	frozen bool
	logger *slog.Logger

	nodes []*Node[K]
	edges []*Edge[K]
	index map[K]*Node[K]
}

// NewGraph creates an empty, lenient, unfrozen graph.
// Complexity: O(capacity).
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	cfg := graphConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		strict: cfg.strict,
		logger: cfg.logger,
		nodes:  make([]*Node[K], 0, cfg.capacity),
		index:  make(map[K]*Node[K], cfg.capacity),
	}
}
