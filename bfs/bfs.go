// Package bfs provides breadth-first search over a core.Graph, returning the
// fewest-hop path between two resolved nodes together with the depth layering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// walker encapsulates mutable BFS state. All scratch lives here, so two
// searches over the same graph never observe each other.
type walker[K comparable] struct {
	opts      Options[K]
	queue     []*core.Node[K]
	depth     map[*core.Node[K]]int
	finalized map[*core.Node[K]]bool
	parent    map[*core.Node[K]]*core.Node[K]
	res       *Result[K]
}

// BFS runs breadth-first search on g from start until goal is finalized or
// the frontier is exhausted.
//
// The returned Result always carries the depth layering; Result.Path is
// empty when goal is unreachable and equals [start] when start == goal.
// Only walkable neighbours are entered; start itself is not checked.
//
// Returns ErrNilGraph, ErrNilNode or ErrForeignNode for invalid input,
// ErrOptionViolation for bad options, or a wrapped OnVisit error.
func BFS[K comparable](g *core.Graph[K], start, goal *core.Node[K], opts ...Option[K]) (*Result[K], error) {
	if err := g.CheckNodes(start, goal); err != nil {
		return nil, err
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.NodeCount()
	w := &walker[K]{
		opts:      o,
		queue:     make([]*core.Node[K], 0, n),
		depth:     make(map[*core.Node[K]]int, n),
		finalized: make(map[*core.Node[K]]bool, n),
		parent:    make(map[*core.Node[K]]*core.Node[K], n),
		res: &Result[K]{
			Order: make([]K, 0, n),
			Depth: make(map[K]int, n),
		},
	}

	w.discover(start, 0, nil)

	return w.res, w.loop(goal)
}

// discover records depth and parent of a node seen for the first time and
// appends it to the frontier.
func (w *walker[K]) discover(n *core.Node[K], d int, from *core.Node[K]) {
	w.depth[n] = d
	if _, ok := w.res.Depth[n.Key]; !ok {
		w.res.Depth[n.Key] = d
	}
	if from != nil {
		w.parent[n] = from
	}
	w.queue = append(w.queue, n)
}

// loop processes the frontier until the goal is finalized or it empties.
func (w *walker[K]) loop(goal *core.Node[K]) error {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		if w.finalized[cur] {
			continue
		}
		w.finalized[cur] = true
		w.res.Order = append(w.res.Order, cur.Key)
		w.res.Visited++
		if err := w.opts.OnVisit(cur); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", cur.Key, err)
		}

		if cur == goal {
			w.res.Path = w.walkBack(cur)
			return nil
		}

		next := w.depth[cur] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range cur.Neighbors() {
			if !nbr.Walkable || w.finalized[nbr] {
				continue
			}
			if _, seen := w.depth[nbr]; seen {
				continue
			}
			w.discover(nbr, next, cur)
		}
	}

	return nil
}

// walkBack rebuilds start→goal by descending the depth layering: from the
// current node, step to the first neighbour in adjacency order whose depth
// is exactly one less and which links back to the current node. Directed
// graphs may offer no such neighbour; the recorded BFS parent is used then.
func (w *walker[K]) walkBack(goal *core.Node[K]) core.Path[K] {
	path := core.Path[K]{goal}
	for cur := goal; w.depth[cur] > 0; {
		prev := w.parent[cur]
		want := w.depth[cur] - 1
		for _, nbr := range cur.Neighbors() {
			if d, ok := w.depth[nbr]; ok && d == want && w.finalized[nbr] && links(nbr, cur) {
				prev = nbr
				break
			}
		}
		path = append(path, prev)
		cur = prev
	}
	path.Reverse()

	return path
}

// links reports whether from has an outgoing edge to to.
func links[K comparable](from, to *core.Node[K]) bool {
	for _, e := range from.Out() {
		if e.To == to {
			return true
		}
	}

	return false
}
