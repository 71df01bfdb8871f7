// Package astar implements A* search with an open set kept in a binary heap
// and a closed set that is never re-opened.
//
// Tie-breaking on equal f is deterministic: lower h first, then the node
// that entered the open set earlier.
//
// Complexity:
//
//   - Time:  O((V + E) log V); decrease-key is heap.Fix on the existing entry.
//   - Space: O(V) for the open heap, the per-node scores and the closed set.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/waypath/core"
)

// AStar searches from start to goal.
//
// Steps:
//  1. Validate input and apply options.
//  2. Open start with g=0, h=heuristic(start, goal), f=g+h.
//  3. Pop the open node with minimum f. If it is goal, reconstruct via
//     predecessors and stop.
//  4. Otherwise close it and relax every walkable, non-closed edge target:
//     a new target is opened; an open target whose tentative g improves
//     gets new g/f and predecessor.
//  5. An empty open set means goal is unreachable: Found=false, nil error.
//
// All scores live in maps owned by this call.
func AStar[K comparable](g *core.Graph[K], start, goal *core.Node[K], opts ...Option) (*Result[K], error) {
	// 1) Validate
	if err := g.CheckNodes(start, goal); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Initialize runner
	n := g.NodeCount()
	r := &runner[K]{
		cfg:    cfg,
		goal:   goal,
		items:  make(map[*core.Node[K]]*item[K], n),
		closed: make(map[*core.Node[K]]bool, n),
		open:   make(openSet[K], 0, n),
	}
	r.push(start, 0, nil)

	// 3) Main loop
	res := &Result[K]{}
	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(*item[K])
		if cur.node == goal {
			res.Found = true
			res.Path = r.reconstruct(cur)
			break
		}
		r.closed[cur.node] = true
		res.Expanded++
		r.relax(cur)
	}

	// 4) Export scratch
	res.Scratch = r.scores()

	return res, nil
}

// FindPath resolves both identities and runs AStar, reporting the outcome as
// a path and a boolean. It returns false when g is nil, when either identity
// is not registered, or when the goal is unreachable.
func FindPath[K comparable](g *core.Graph[K], startKey, goalKey K, opts ...Option) (core.Path[K], bool) {
	if g == nil {
		return nil, false
	}
	start, ok := g.Lookup(startKey)
	if !ok {
		return nil, false
	}
	goal, ok := g.Lookup(goalKey)
	if !ok {
		return nil, false
	}
	res, err := AStar(g, start, goal, opts...)
	if err != nil || !res.Found {
		return nil, false
	}

	return res.Path, true
}

// runner holds the mutable state for a single A* execution.
type runner[K comparable] struct {
	cfg    Options
	goal   *core.Node[K]
	items  map[*core.Node[K]]*item[K] // every node ever opened
	closed map[*core.Node[K]]bool
	open   openSet[K]
	seq    int
}

// push opens n with accumulated cost gCost, reached from pred.
func (r *runner[K]) push(n *core.Node[K], gCost float64, pred *item[K]) {
	h := r.cfg.Heuristic(n.Position, r.goal.Position)
	it := &item[K]{
		node: n,
		g:    gCost,
		h:    h,
		f:    gCost + h,
		pred: pred,
		seq:  r.seq,
	}
	r.seq++
	r.items[n] = it
	heap.Push(&r.open, it)
}

// relax examines each outgoing edge of cur.
func (r *runner[K]) relax(cur *item[K]) {
	for _, e := range cur.node.Out() {
		v := e.To
		if !v.Walkable || r.closed[v] {
			continue
		}
		tentative := cur.g + r.cfg.Metric(cur.node.Position, v.Position)

		it, seen := r.items[v]
		if !seen {
			r.push(v, tentative, cur)
			continue
		}
		if tentative < it.g {
			it.g = tentative
			it.f = tentative + it.h
			it.pred = cur
			heap.Fix(&r.open, it.index)
		}
	}
}

// reconstruct follows predecessor links from the goal item.
func (r *runner[K]) reconstruct(goal *item[K]) core.Path[K] {
	var path core.Path[K]
	for it := goal; it != nil; it = it.pred {
		path = append(path, it.node)
	}
	path.Reverse()

	return path
}

// scores converts the per-node items into the exported scratch map.
// Nodes sharing a key report the first-opened one.
func (r *runner[K]) scores() map[K]Score[K] {
	out := make(map[K]Score[K], len(r.items))
	byKey := make(map[K]int, len(r.items))
	for _, it := range r.items {
		if prev, dup := byKey[it.node.Key]; dup && prev < it.seq {
			continue
		}
		byKey[it.node.Key] = it.seq
		s := Score[K]{G: it.g, H: it.h, F: it.f}
		if it.pred != nil {
			s.Predecessor = it.pred.node.Key
			s.HasPredecessor = true
		}
		out[it.node.Key] = s
	}

	return out
}

// item is one open-set entry and, once opened, the node's score record.
type item[K comparable] struct {
	node  *core.Node[K]
	g     float64
	h     float64
	f     float64
	pred  *item[K]
	seq   int // opening order, for tie-breaks
	index int // heap index, maintained by openSet
}

// openSet is a min-heap of *item ordered by f, then h, then seq.
type openSet[K comparable] []*item[K]

// Len returns the number of items in the heap.
func (s openSet[K]) Len() int { return len(s) }

// Less orders by f, breaking ties on lower h and then earlier opening.
func (s openSet[K]) Less(i, j int) bool {
	a, b := s[i], s[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// Swap swaps two elements and keeps their heap indices current.
func (s openSet[K]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

// Push adds a new element x onto the heap.
func (s *openSet[K]) Push(x any) {
	it := x.(*item[K])
	it.index = len(*s)
	*s = append(*s, it)
}

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (s *openSet[K]) Pop() any {
	old := *s
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*s = old[:n-1]

	return it
}
