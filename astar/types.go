// Package astar defines types and configuration options for A* path search
// over a core.Graph whose step costs are derived from node positions.
package astar

import (
	"github.com/katalvlaran/waypath/core"
)

// Sentinel errors returned by AStar. They alias the core sentinels.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = core.ErrNilGraph

	// ErrNilNode indicates that start or goal is nil.
	ErrNilNode = core.ErrNilNode

	// ErrForeignNode indicates that start or goal belongs to another graph.
	ErrForeignNode = core.ErrForeignNode
)

// Options configures the cost model of A*.
//
// Metric    – step cost between the positions of adjacent nodes.
// Heuristic – estimated remaining cost from a node's position to the goal's.
//
// Both default to core.SquaredEuclidean. Squared distance is not a metric
// and is not admissible in general, so the returned path is not guaranteed
// to be cost-optimal on arbitrary graphs.
type Options struct {
	Metric    core.Metric
	Heuristic core.Metric
}

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// DefaultOptions returns Options with squared Euclidean cost and heuristic.
func DefaultOptions() Options {
	return Options{
		Metric:    core.SquaredEuclidean,
		Heuristic: core.SquaredEuclidean,
	}
}

// WithMetric sets the step-cost function. A nil metric is ignored.
func WithMetric(m core.Metric) Option {
	return func(o *Options) {
		if m != nil {
			o.Metric = m
		}
	}
}

// WithHeuristic sets the remaining-cost estimate. A nil heuristic is ignored.
func WithHeuristic(h core.Metric) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Score is the per-node scratch record of one A* run.
type Score[K comparable] struct {
	G, H, F float64

	// Predecessor is meaningful only when HasPredecessor is true.
	Predecessor    K
	HasPredecessor bool
}

// Result captures the outcome of one A* run.
type Result[K comparable] struct {
	// Found reports whether goal was reached.
	Found bool

	// Path runs start→goal when Found; otherwise it is nil.
	Path core.Path[K]

	// Scratch holds the final score of every node that entered the open set.
	Scratch map[K]Score[K]

	// Expanded counts nodes moved to the closed set.
	Expanded int
}
