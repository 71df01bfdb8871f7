// Package dfs defines types and options for depth-first path search,
// including the visit hook and the recursion depth bound.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// DefaultMaxDepth bounds DFSRecursive and Recurse: a path may hold at most
// this many nodes before the search aborts with ErrDepthExceeded.
const DefaultMaxDepth = 4096

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = core.ErrNilGraph

	// ErrNilNode is returned when start or goal is nil.
	ErrNilNode = core.ErrNilNode

	// ErrForeignNode is returned when start or goal belongs to another graph.
	ErrForeignNode = core.ErrForeignNode

	// ErrDepthExceeded indicates that the recursive search would grow its
	// path beyond MaxDepth nodes.
	ErrDepthExceeded = errors.New("dfs: recursion depth exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied, or
	// when Recurse gets a nil visited map or path.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS and DFSRecursive.
type Option[K comparable] func(*Options[K])

// Options holds configurable parameters for a depth-first search.
type Options[K comparable] struct {
	// OnVisit, if non-nil, is invoked when a node is finalized (iterative)
	// or entered (recursive). Returning an error aborts the search.
	OnVisit func(n *core.Node[K]) error

	// MaxDepth limits the recursive variant's path length in nodes.
	// The iterative variant keeps its own stack and ignores it.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no hook and MaxDepth = DefaultMaxDepth.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{MaxDepth: DefaultMaxDepth}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit[K comparable](fn func(n *core.Node[K]) error) Option[K] {
	return func(o *Options[K]) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that bounds the recursive path length.
// limit must be positive.
func WithMaxDepth[K comparable](limit int) Option[K] {
	return func(o *Options[K]) {
		if limit <= 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

func buildOptions[K comparable](opts []Option[K]) (Options[K], error) {
	o := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}

// Result captures the outcome of an iterative depth-first search.
type Result[K comparable] struct {
	// Path runs start→goal; empty when the goal was not reached.
	Path core.Path[K]

	// Order records keys in the sequence they were finalized.
	Order []K

	// Parent maps each discovered key to the key of the node that first
	// discovered it. The start key is absent.
	Parent map[K]K

	// Visited counts finalized nodes.
	Visited int
}

// Found reports whether a path was reconstructed.
func (r *Result[K]) Found() bool { return len(r.Path) > 0 }
