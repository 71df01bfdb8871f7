// Package dfs implements depth-first path search on core.Graph: an iterative
// stack-based variant that reconstructs through predecessor links, and a
// recursive variant that backtracks dead ends out of its path.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// DFS runs an iterative depth-first search from start and returns the first
// path to goal found in last-in-first-out order. The path is valid but not
// necessarily shortest.
//
// Steps:
//  1. Seed the stack with start; start has no predecessor.
//  2. Pop; skip if finalized; mark finalized.
//  3. If the node is goal, follow predecessors back to start and reverse.
//  4. Otherwise push every walkable, non-finalized neighbour in adjacency
//     order. The first node to discover a neighbour becomes its predecessor.
//
// An exhausted stack yields an empty Path and a nil error.
func DFS[K comparable](g *core.Graph[K], start, goal *core.Node[K], opts ...Option[K]) (*Result[K], error) {
	// 1. Validate input
	if err := g.CheckNodes(start, goal); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2. Per-search scratch
	n := g.NodeCount()
	stack := make([]*core.Node[K], 0, n)
	finalized := make(map[*core.Node[K]]bool, n)
	pred := make(map[*core.Node[K]]*core.Node[K], n)
	res := &Result[K]{
		Order:  make([]K, 0, n),
		Parent: make(map[K]K, n),
	}

	stack = append(stack, start)
	pred[start] = nil

	// 3. Main loop
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if finalized[cur] {
			continue
		}
		finalized[cur] = true
		res.Order = append(res.Order, cur.Key)
		res.Visited++
		if o.OnVisit != nil {
			if err := o.OnVisit(cur); err != nil {
				return res, fmt.Errorf("dfs: OnVisit hook for %v: %w", cur.Key, err)
			}
		}

		if cur == goal {
			res.Path = reconstruct(pred, goal)
			return res, nil
		}

		for _, nbr := range cur.Neighbors() {
			if !nbr.Walkable || finalized[nbr] {
				continue
			}
			if _, seen := pred[nbr]; !seen {
				pred[nbr] = cur
				if _, dup := res.Parent[nbr.Key]; !dup {
					res.Parent[nbr.Key] = cur.Key
				}
			}
			stack = append(stack, nbr)
		}
	}

	return res, nil
}

// reconstruct follows predecessor links from goal until the start's nil
// predecessor, then reverses the walk.
func reconstruct[K comparable](pred map[*core.Node[K]]*core.Node[K], goal *core.Node[K]) core.Path[K] {
	var path core.Path[K]
	for cur := goal; cur != nil; cur = pred[cur] {
		path = append(path, cur)
	}
	path.Reverse()

	return path
}
