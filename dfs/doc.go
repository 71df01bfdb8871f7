// Package dfs implements depth-first path search on core.Graph.
//
// Two variants are provided; neither guarantees a shortest path:
//
//   - DFS: iterative, last-in-first-out stack. Predecessors are recorded the
//     first time a node is discovered and never overwritten; the path is
//     rebuilt from them once goal is popped.
//   - DFSRecursive: recursive descent in adjacency order with explicit
//     backtracking. The first successful branch short-circuits the rest,
//     and dead-end nodes are removed from the path tail on the way out.
//     Recurse exposes the same walk with caller-owned visited set and path.
//
// Both enter only walkable neighbours and keep their scratch state in maps
// owned by the call.
//
// Depth bound:
//
//	Recursion depth equals path length. DFSRecursive and Recurse abort with
//	ErrDepthExceeded once the path would exceed MaxDepth nodes
//	(DefaultMaxDepth = 4096), so large graphs cannot exhaust the stack.
//
// Complexity:
//
//   - Time:   O(V + E) for both variants.
//   - Memory: O(V) for scratch maps; O(depth) call stack for DFSRecursive.
//
// Errors:
//
//   - ErrNilGraph, ErrNilNode, ErrForeignNode for invalid input.
//   - ErrOptionViolation for a non-positive WithMaxDepth.
//   - ErrDepthExceeded from the recursive variant.
//   - any error returned by OnVisit, wrapped.
package dfs
