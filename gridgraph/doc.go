// Package gridgraph turns a rectangular walkable/wall pattern into a
// core.Graph keyed by grid Cell, the labyrinth variant of the waypoint graph.
//
// What:
//
//   - Every cell becomes a node with world position (row*Spacing, Height, col*Spacing).
//   - Adjacency is computed once, after all nodes exist: each walkable cell
//     gets edges to its walkable in-bounds orthogonal neighbours, in the
//     fixed order up (row-1), down (row+1), left (col-1), right (col+1).
//     Walls get no outgoing edges. Diagonals are never connected.
//   - The resulting graph is frozen; adjacency never changes afterwards.
//   - Connected components of walkable cells, and the minimum set of walls
//     to open to join two cells (Breach), support labyrinth diagnostics.
//
// Complexity:
//
//   - NewGrid:    O(R×C), Memory O(R×C).
//   - Components: O(R×C).
//   - Breach:     O(R×C) (0-1 BFS).
//
// Errors:
//
//   - ErrEmptyGrid:       pattern has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrCellOutOfBounds: a referenced cell lies outside the grid.
//   - ErrBadSpacing:      Spacing is not positive.
//   - ErrBadPattern:      a pattern row contains a rune other than '.' or '#'.
package gridgraph
