package dfs

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// recursor carries the state of one recursive search.
type recursor[K comparable] struct {
	goal     *core.Node[K]
	visited  map[*core.Node[K]]bool
	path     *core.Path[K]
	maxDepth int
	onVisit  func(*core.Node[K]) error
}

// DFSRecursive searches from start to goal by recursive descent with
// explicit backtracking, returning the path and whether goal was reached.
//
// Behavior:
//   - Each entered node is marked visited and appended to the path.
//   - Walkable, unvisited neighbours are tried in adjacency order; the first
//     success returns immediately without exploring the remaining ones.
//   - A node whose neighbours all fail is removed from the path tail.
//
// The returned path replays step by step over existing edges but is not
// necessarily shortest. Growing the path past MaxDepth nodes (default
// DefaultMaxDepth) aborts with ErrDepthExceeded.
func DFSRecursive[K comparable](g *core.Graph[K], start, goal *core.Node[K], opts ...Option[K]) (core.Path[K], bool, error) {
	if err := g.CheckNodes(start, goal); err != nil {
		return nil, false, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, false, err
	}

	path := make(core.Path[K], 0, 16)
	r := &recursor[K]{
		goal:     goal,
		visited:  make(map[*core.Node[K]]bool, g.NodeCount()),
		path:     &path,
		maxDepth: o.MaxDepth,
		onVisit:  o.OnVisit,
	}
	found, err := r.descend(start)
	if err != nil || !found {
		return nil, false, err
	}

	return path, true, nil
}

// Recurse is the in/out form of DFSRecursive for callers that own the
// visited set and the path: it marks cur visited, appends it to *path and
// reports whether goal was reached. Whenever it returns false, with or
// without an error, *path is left as it was on entry; visited keeps every
// node that was entered. The depth bound is DefaultMaxDepth, counted over
// the whole *path.
//
// Recurse performs no ownership checks; cur and goal must be nodes of the
// same graph. A nil cur or goal yields ErrNilNode, a nil visited or path
// yields ErrOptionViolation.
func Recurse[K comparable](cur, goal *core.Node[K], visited map[*core.Node[K]]bool, path *core.Path[K]) (bool, error) {
	switch {
	case cur == nil:
		return false, fmt.Errorf("%w: cur is nil", ErrNilNode)
	case goal == nil:
		return false, fmt.Errorf("%w: goal is nil", ErrNilNode)
	case visited == nil:
		return false, fmt.Errorf("%w: visited map is nil", ErrOptionViolation)
	case path == nil:
		return false, fmt.Errorf("%w: path is nil", ErrOptionViolation)
	}
	r := &recursor[K]{
		goal:     goal,
		visited:  visited,
		path:     path,
		maxDepth: DefaultMaxDepth,
	}

	return r.descend(cur)
}

// descend enters cur and explores its neighbours.
func (r *recursor[K]) descend(cur *core.Node[K]) (bool, error) {
	if len(*r.path) >= r.maxDepth {
		return false, fmt.Errorf("%w: path reached %d nodes at %v", ErrDepthExceeded, len(*r.path), cur.Key)
	}

	entry := len(*r.path)
	r.visited[cur] = true
	*r.path = append(*r.path, cur)
	if r.onVisit != nil {
		if err := r.onVisit(cur); err != nil {
			*r.path = (*r.path)[:entry]
			return false, fmt.Errorf("dfs: OnVisit hook for %v: %w", cur.Key, err)
		}
	}
	if cur == r.goal {
		return true, nil
	}

	for _, nbr := range cur.Neighbors() {
		if !nbr.Walkable || r.visited[nbr] {
			continue
		}
		found, err := r.descend(nbr)
		if err != nil {
			*r.path = (*r.path)[:entry]
			return false, err
		}
		if found {
			return true, nil
		}
	}

	// dead end: backtrack
	*r.path = (*r.path)[:entry]

	return false, nil
}
