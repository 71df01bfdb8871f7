// Package astar finds a start→goal path with the A* open/closed-set loop.
//
// Cost model:
//
//	g is the accumulated step cost from start, h the heuristic estimate from
//	a node to the goal, f = g + h. Step cost and heuristic are both
//	core.SquaredEuclidean unless overridden with WithMetric / WithHeuristic.
//	Squared distance avoids a square root but is not admissible on arbitrary
//	graphs; paths are cost-optimal only where it happens to be consistent,
//	such as small uniform grids.
//
// Open and closed sets:
//
//   - The open set is a binary heap ordered by f, then h, then opening
//     order. Improving an open node's g updates it in place (heap.Fix).
//   - Closed nodes are never re-opened.
//   - Non-walkable targets are never opened.
//
// Every call owns its scores; Result.Scratch exposes them for inspection.
// FindPath is the identity-level boolean form: false on unknown identities
// or when the open set is exhausted.
package astar
