// Package bfs provides breadth-first search over a core.Graph, returning the
// fewest-hop path between two resolved nodes.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from start, entering only
//     walkable neighbours, in each node's adjacency order.
//   - Stop as soon as goal is finalized and rebuild the path by walking the
//     depth layering backwards: from the goal, step to the first neighbour
//     whose depth is one less, until depth 0.
//   - Returns a Result containing:
//   - Path:  start→goal, [start] when start == goal, empty when unreachable
//   - Order: visit sequence
//   - Depth: key → hop distance (DepthOf reports -1 for undiscovered keys)
//
// Scratch state
//
//	Depth, finalized set and parents live in maps owned by a single call.
//	Nothing is written to the nodes, so repeated or interleaved searches on
//	the same graph cannot see stale depths.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	start, _ := g.Resolve("heli")
//	goal, _ := g.Resolve("ruin")
//	res, err := bfs.BFS(g, start, goal, bfs.WithMaxDepth[string](8))
//	if err != nil {
//		// ErrNilGraph, ErrNilNode, ErrForeignNode, ErrOptionViolation or an OnVisit error
//	}
//	if res.Found() {
//		fmt.Println(res.Path.Keys())
//	}
//
// Errors
//
//   - ErrNilGraph         if the graph pointer is nil.
//   - ErrNilNode          if start or goal is nil.
//   - ErrForeignNode      if start or goal belongs to another graph.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
