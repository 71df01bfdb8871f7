package scene

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/cursor"
	"github.com/katalvlaran/waypath/search"
)

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	logger *slog.Logger
	search []search.Option
}

// WithLogger sets the logger for the scene and its searcher. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(b *buildConfig) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithSearchOptions appends options for the underlying search.Searcher,
// e.g. tracer or meter providers.
func WithSearchOptions(opts ...search.Option) Option {
	return func(b *buildConfig) {
		b.search = append(b.search, opts...)
	}
}

// Plan is one search result with keys rendered as strings.
type Plan struct {
	Algorithm search.Algorithm `json:"algorithm"`
	Found     bool             `json:"found"`
	Keys      []string         `json:"keys"`
	Positions []core.Vec3      `json:"positions"`
	Hops      int              `json:"hops"`
	Cost      float64          `json:"cost"`
	Visited   int              `json:"visited"`
	Duration  time.Duration    `json:"duration_ns"`

	// Walls lists, for an unreachable grid goal, the fewest wall cells
	// whose removal would connect start and goal.
	Walls []string `json:"walls,omitempty"`
}

// Snap is the walkable node nearest to a queried position.
type Snap struct {
	Key      string    `json:"key"`
	Position core.Vec3 `json:"position"`
	Distance float64   `json:"distance"`
}

// world is the key-typed half of a scene.
type world interface {
	plan(ctx context.Context, alg search.Algorithm) (Plan, error)
	compare(ctx context.Context) ([]Plan, error)
	nearest(pos core.Vec3) (Snap, bool)
	size() (nodes, edges int)
}

// Scene is a built, ready-to-search scene.
type Scene struct {
	name      string
	kind      string
	algorithm search.Algorithm
	policy    cursor.Policy
	accuracy  float64
	w         world
}

// Name returns the scene name.
func (s *Scene) Name() string { return s.name }

// Kind returns KindGrid or KindGraph.
func (s *Scene) Kind() string { return s.kind }

// Algorithm returns the scene's default algorithm.
func (s *Scene) Algorithm() search.Algorithm { return s.algorithm }

// Policy returns the cursor policy for followers.
func (s *Scene) Policy() cursor.Policy { return s.policy }

// Accuracy returns the arrival threshold for followers.
func (s *Scene) Accuracy() float64 { return s.accuracy }

// Size returns the node and edge counts of the scene graph.
func (s *Scene) Size() (nodes, edges int) { return s.w.size() }

// Plan searches from the scene start to the scene goal with alg.
func (s *Scene) Plan(ctx context.Context, alg search.Algorithm) (Plan, error) {
	return s.w.plan(ctx, alg)
}

// Compare plans with every algorithm, in search.Algorithms order.
func (s *Scene) Compare(ctx context.Context) ([]Plan, error) {
	return s.w.compare(ctx)
}

// Nearest snaps pos to the closest walkable node. ok is false when the
// scene has none.
func (s *Scene) Nearest(pos core.Vec3) (Snap, bool) {
	return s.w.nearest(pos)
}

// Cursor returns a cursor over plan's positions with the scene policy.
func (s *Scene) Cursor(plan Plan) *cursor.Cursor[core.Vec3] {
	return cursor.FromPositions(plan.Positions, s.policy)
}

// Build turns c into a Scene. Empty fields get the Parse defaults and the
// result is validated first, so a hand-built Config fails with
// ErrInvalidScene instead of reaching the world builders.
func (c *Config) Build(opts ...Option) (*Scene, error) {
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b := buildConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&b)
	}

	alg, err := search.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	policy, err := cursor.ParsePolicy(c.Policy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	metric, err := parseMetric(c.Metric)
	if err != nil {
		return nil, err
	}

	logger := b.logger.With(slog.String("scene", c.Name))
	sopts := []search.Option{
		search.WithLogger(logger),
		search.WithMetric(metric),
		search.WithMaxDepth(c.MaxDepth),
	}
	sopts = append(sopts, b.search...)

	s := &Scene{
		name:      c.Name,
		kind:      c.Kind,
		algorithm: alg,
		policy:    policy,
		accuracy:  c.Accuracy,
	}
	switch c.Kind {
	case KindGrid:
		s.w, err = buildGrid(c.Grid, logger, sopts)
	case KindGraph:
		s.w, err = buildGraph(c.Graph, logger, sopts)
	default:
		err = fmt.Errorf("%w: kind %q", ErrInvalidScene, c.Kind)
	}
	if err != nil {
		return nil, err
	}

	nodes, edges := s.w.size()
	logger.Info("scene built",
		slog.String("kind", c.Kind),
		slog.Int("nodes", nodes),
		slog.Int("edges", edges),
	)

	return s, nil
}

func parseMetric(name string) (core.Metric, error) {
	switch name {
	case "squared", "":
		return core.SquaredEuclidean, nil
	case "euclidean":
		return core.Euclidean, nil
	case "manhattan":
		return core.Manhattan, nil
	}

	return nil, fmt.Errorf("%w: metric %q", ErrInvalidScene, name)
}
