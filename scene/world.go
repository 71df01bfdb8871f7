package scene

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/gridgraph"
	"github.com/katalvlaran/waypath/search"
	"github.com/katalvlaran/waypath/spatial"
)

// keyed implements world for one key type.
type keyed[K comparable] struct {
	graph    *core.Graph[K]
	searcher *search.Searcher[K]
	index    *spatial.Index[K]
	start    K
	goal     K
	logger   *slog.Logger

	// breach explains an unreachable goal; nil when the scene kind has no
	// such diagnostic.
	breach func(start, goal K) []string
}

func newKeyed[K comparable](g *core.Graph[K], start, goal K, logger *slog.Logger, sopts []search.Option) (*keyed[K], error) {
	searcher, err := search.New(g, sopts...)
	if err != nil {
		return nil, err
	}
	index, err := spatial.New(g)
	if err != nil {
		return nil, err
	}

	return &keyed[K]{
		graph:    g,
		searcher: searcher,
		index:    index,
		start:    start,
		goal:     goal,
		logger:   logger,
	}, nil
}

func (k *keyed[K]) plan(ctx context.Context, alg search.Algorithm) (Plan, error) {
	out, err := k.searcher.FindPath(ctx, alg, k.start, k.goal)
	if err != nil {
		return Plan{Algorithm: alg}, err
	}
	p := toPlan(out)
	if !p.Found {
		p.Walls = k.explain()
	}

	return p, nil
}

func (k *keyed[K]) compare(ctx context.Context) ([]Plan, error) {
	rep, err := k.searcher.Compare(ctx, k.start, k.goal)
	if err != nil {
		return nil, err
	}

	var walls []string
	explained := false
	plans := make([]Plan, 0, len(rep.Outcomes))
	for _, out := range rep.Outcomes {
		p := toPlan(out)
		if !p.Found {
			if !explained {
				walls, explained = k.explain(), true
			}
			p.Walls = walls
		}
		plans = append(plans, p)
	}

	return plans, nil
}

// explain runs the breach diagnostic, if any, and logs its result.
func (k *keyed[K]) explain() []string {
	if k.breach == nil {
		return nil
	}
	walls := k.breach(k.start, k.goal)
	k.logger.Info("goal unreachable",
		slog.Any("start", k.start),
		slog.Any("goal", k.goal),
		slog.Int("walls_to_open", len(walls)),
	)

	return walls
}

func (k *keyed[K]) nearest(pos core.Vec3) (Snap, bool) {
	n, ok := k.index.NearestWalkable(pos)
	if !ok {
		return Snap{}, false
	}

	return Snap{
		Key:      keyString(n.Key),
		Position: n.Position,
		Distance: core.Euclidean(pos, n.Position),
	}, true
}

func (k *keyed[K]) size() (int, int) { return k.graph.NodeCount(), k.graph.EdgeCount() }

func toPlan[K comparable](out search.Outcome[K]) Plan {
	keys := out.Path.Keys()
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = keyString(key)
	}

	return Plan{
		Algorithm: out.Algorithm,
		Found:     out.Found,
		Keys:      names,
		Positions: out.Path.Positions(),
		Hops:      out.Hops,
		Cost:      out.Cost,
		Visited:   out.Visited,
		Duration:  out.Duration,
	}
}

func keyString(key any) string { return fmt.Sprint(key) }

// buildGrid builds a labyrinth world. Start and goal are forced walkable.
func buildGrid(gc *GridConfig, logger *slog.Logger, sopts []search.Option) (world, error) {
	pattern, err := gridgraph.ParsePattern(gc.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	start := gridgraph.Cell{Row: gc.Start[0], Col: gc.Start[1]}
	goal := gridgraph.Cell{Row: gc.Goal[0], Col: gc.Goal[1]}

	grid, err := gridgraph.NewGrid(pattern, gridgraph.GridOptions{
		Spacing: gc.Spacing,
		Height:  gc.Height,
		Forced:  []gridgraph.Cell{start, goal},
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	w, err := newKeyed(grid.Graph(), start, goal, logger, sopts)
	if err != nil {
		return nil, err
	}
	w.breach = func(from, to gridgraph.Cell) []string {
		_, walls, err := grid.Breach(from, to)
		if err != nil {
			return nil
		}
		out := make([]string, len(walls))
		for i, c := range walls {
			out[i] = c.String()
		}
		return out
	}

	return w, nil
}

// buildGraph builds a waypoint world and freezes it.
func buildGraph(gc *GraphConfig, logger *slog.Logger, sopts []search.Option) (world, error) {
	gopts := []core.GraphOption{core.WithLogger(logger), core.WithCapacity(len(gc.Waypoints))}
	if gc.Strict {
		gopts = append(gopts, core.WithStrictEdges())
	}
	g := core.NewGraph[string](gopts...)

	for _, wp := range gc.Waypoints {
		walkable := wp.Walkable == nil || *wp.Walkable
		pos := core.V(wp.Position[0], wp.Position[1], wp.Position[2])
		if _, err := g.AddNode(wp.ID, core.WithWalkable(walkable), core.WithPosition(pos)); err != nil {
			return nil, err
		}
	}
	for _, l := range gc.Links {
		dir, err := core.ParseDirection(l.Dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
		if err := g.AddLink(l.From, l.To, dir); err != nil {
			return nil, fmt.Errorf("%w: link %s->%s: %w", ErrInvalidScene, l.From, l.To, err)
		}
	}
	g.Freeze()

	if _, err := g.Resolve(gc.Start); err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrInvalidScene, err)
	}
	if _, err := g.Resolve(gc.Goal); err != nil {
		return nil, fmt.Errorf("%w: goal: %w", ErrInvalidScene, err)
	}

	w, err := newKeyed(g, gc.Start, gc.Goal, logger, sopts)
	if err != nil {
		return nil, err
	}

	return w, nil
}
