// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// Sentinel errors for BFS execution. Input errors alias the core sentinels
// so errors.Is matches either name.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = core.ErrNilGraph

	// ErrNilNode is returned when start or goal is nil.
	ErrNilNode = core.ErrNilNode

	// ErrForeignNode is returned when start or goal belongs to another graph.
	ErrForeignNode = core.ErrForeignNode

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K comparable] struct {
	// OnVisit is called when a node is finalized. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n *core.Node[K]) error

	// MaxDepth, if > 0, stops discovering nodes deeper than this.
	// A value of 0 disables any depth limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a no-op OnVisit and no depth limit.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		OnVisit: func(*core.Node[K]) error { return nil },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K comparable](fn func(n *core.Node[K]) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovery at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS run:
//   - Path:    start→goal, empty when the goal was not reached.
//   - Order:   keys of finalized nodes, in visit sequence.
//   - Depth:   hop distance from start of every discovered node.
//   - Visited: number of finalized nodes.
type Result[K comparable] struct {
	Path    core.Path[K]
	Order   []K
	Depth   map[K]int
	Visited int
}

// DepthOf returns the recorded depth of key, or -1 if it was never discovered.
func (r *Result[K]) DepthOf(key K) int {
	if d, ok := r.Depth[key]; ok {
		return d
	}

	return -1
}

// Found reports whether a path was reconstructed.
func (r *Result[K]) Found() bool { return len(r.Path) > 0 }
