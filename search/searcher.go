package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/waypath/astar"
	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dfs"
)

// Option configures a Searcher.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	maxDepth int
	cost     core.Metric
	tracers  trace.TracerProvider
	meters   metric.MeterProvider
}

// WithLogger sets the logger for search records. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxDepth bounds DFSRecursive. Non-positive values are ignored.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithMetric sets the A* step cost and heuristic and the metric used for
// Outcome.Cost. Nil is ignored.
func WithMetric(m core.Metric) Option {
	return func(c *config) {
		if m != nil {
			c.cost = m
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.tracers = tp
		}
	}
}

// WithMeterProvider overrides the global OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		if mp != nil {
			c.meters = mp
		}
	}
}

// Outcome describes one search run.
type Outcome[K comparable] struct {
	// ID identifies the run in logs and spans.
	ID uuid.UUID

	Algorithm Algorithm

	// Path runs start→goal; empty when Found is false.
	Path  core.Path[K]
	Found bool

	// Hops is len(Path)-1, zero when not found.
	Hops int

	// Cost sums the configured metric over consecutive path positions.
	Cost float64

	// Visited counts nodes the algorithm finalized (expanded for A*).
	// Zero for TestPath and DFSRecursive.
	Visited int

	Duration time.Duration
}

// Report gathers one Outcome per algorithm for the same start and goal.
type Report[K comparable] struct {
	Start, Goal K
	Outcomes    []Outcome[K]
}

// Shortest returns the found outcome with the fewest hops, preferring the
// earlier algorithm on ties. ok is false when no search found a path.
func (r Report[K]) Shortest() (best Outcome[K], ok bool) {
	for _, o := range r.Outcomes {
		if !o.Found || o.Algorithm == TestPath {
			continue
		}
		if !ok || o.Hops < best.Hops {
			best, ok = o, true
		}
	}

	return best, ok
}

// Searcher runs the search algorithms over one graph and reports every run
// through slog and OpenTelemetry. It holds no per-search state, but the
// graph itself is not synchronized: callers serialize mutations.
type Searcher[K comparable] struct {
	g        *core.Graph[K]
	logger   *slog.Logger
	maxDepth int
	cost     core.Metric
	tel      *telemetry
}

// New binds a Searcher to g.
func New[K comparable](g *core.Graph[K], opts ...Option) (*Searcher[K], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	c := config{
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: dfs.DefaultMaxDepth,
		cost:     core.SquaredEuclidean,
		tracers:  otel.GetTracerProvider(),
		meters:   otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return &Searcher[K]{
		g:        g,
		logger:   c.logger,
		maxDepth: c.maxDepth,
		cost:     c.cost,
		tel:      newTelemetry(c.tracers, c.meters),
	}, nil
}

// Graph returns the searched graph.
func (s *Searcher[K]) Graph() *core.Graph[K] { return s.g }

// Run executes alg from start to goal. An unreachable goal is a normal
// outcome (Found=false, nil error). ctx carries telemetry only; searches
// run to completion.
func (s *Searcher[K]) Run(ctx context.Context, alg Algorithm, start, goal *core.Node[K]) (Outcome[K], error) {
	out := Outcome[K]{ID: uuid.New(), Algorithm: alg}
	if !alg.Valid() {
		return out, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if err := s.g.CheckNodes(start, goal); err != nil {
		return out, err
	}

	ctx, span := s.tel.startSpan(ctx, alg, out.ID.String(), start.Key, goal.Key)
	defer span.End()

	logger := s.logger.With(
		slog.String("search_id", out.ID.String()),
		slog.String("algorithm", alg.String()),
	)
	logger.Debug("search started",
		slog.Any("start", start.Key),
		slog.Any("goal", goal.Key),
	)

	t0 := time.Now()
	path, visited, err := s.dispatch(alg, start, goal)
	out.Duration = time.Since(t0)
	if err != nil {
		setSpanError(span, err)
		logger.Error("search failed", slog.String("error", err.Error()))
		return out, fmt.Errorf("search: %s: %w", alg, err)
	}

	out.Path = path
	out.Found = len(path) > 0
	out.Hops = path.Hops()
	out.Cost = path.Cost(s.cost)
	out.Visited = visited

	s.tel.record(ctx, alg, out.Duration, out.Hops, out.Found)
	setSpanResult(span, out.Found, out.Hops, out.Visited, out.Cost)
	logger.Info("search finished",
		slog.Bool("found", out.Found),
		slog.Int("hops", out.Hops),
		slog.Int("visited", out.Visited),
		slog.Float64("cost", out.Cost),
		slog.Duration("duration", out.Duration),
	)

	return out, nil
}

// dispatch runs the selected algorithm and returns its path and visit count.
func (s *Searcher[K]) dispatch(alg Algorithm, start, goal *core.Node[K]) (core.Path[K], int, error) {
	switch alg {
	case BFS:
		res, err := bfs.BFS(s.g, start, goal)
		if err != nil {
			return nil, 0, err
		}
		return res.Path, res.Visited, nil

	case DFS:
		res, err := dfs.DFS(s.g, start, goal)
		if err != nil {
			return nil, 0, err
		}
		return res.Path, res.Visited, nil

	case DFSRecursive:
		path, _, err := dfs.DFSRecursive(s.g, start, goal, dfs.WithMaxDepth[K](s.maxDepth))
		return path, 0, err

	case AStar:
		res, err := astar.AStar(s.g, start, goal, astar.WithMetric(s.cost), astar.WithHeuristic(s.cost))
		if err != nil {
			return nil, 0, err
		}
		return res.Path, res.Expanded, nil

	case TestPath:
		return StubPath(start, goal), 0, nil
	}

	return nil, 0, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
}

// FindPath resolves both identities and runs alg. A missing identity
// returns an error wrapping core.ErrNodeNotFound.
func (s *Searcher[K]) FindPath(ctx context.Context, alg Algorithm, startKey, goalKey K) (Outcome[K], error) {
	start, goal, err := s.resolve(startKey, goalKey)
	if err != nil {
		return Outcome[K]{Algorithm: alg}, err
	}

	return s.Run(ctx, alg, start, goal)
}

// Compare runs every algorithm in Algorithms() order between the same two
// identities. It stops at the first algorithm error.
func (s *Searcher[K]) Compare(ctx context.Context, startKey, goalKey K) (Report[K], error) {
	rep := Report[K]{Start: startKey, Goal: goalKey}
	start, goal, err := s.resolve(startKey, goalKey)
	if err != nil {
		return rep, err
	}
	for _, alg := range Algorithms() {
		out, err := s.Run(ctx, alg, start, goal)
		if err != nil {
			return rep, err
		}
		rep.Outcomes = append(rep.Outcomes, out)
	}

	return rep, nil
}

func (s *Searcher[K]) resolve(startKey, goalKey K) (*core.Node[K], *core.Node[K], error) {
	start, err := s.g.Resolve(startKey)
	if err != nil {
		return nil, nil, fmt.Errorf("search: start: %w", err)
	}
	goal, err := s.g.Resolve(goalKey)
	if err != nil {
		return nil, nil, fmt.Errorf("search: goal: %w", err)
	}

	return start, goal, nil
}

func toString(v any) string { return fmt.Sprint(v) }
