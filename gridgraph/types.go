// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/waypath.
package gridgraph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/waypath/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input pattern has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: pattern must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellOutOfBounds indicates a cell outside the grid.
	ErrCellOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBadSpacing indicates a non-positive node spacing.
	ErrBadSpacing = errors.New("gridgraph: spacing must be positive")
	// ErrBadPattern indicates an unknown rune in a textual pattern.
	ErrBadPattern = errors.New("gridgraph: pattern rows may only contain '.' and '#'")
)

// Cell is a grid coordinate and the node identity of the grid variant.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Manhattan returns |Δrow| + |Δcol|.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// IsAdjacentTo reports whether o is an orthogonal neighbour (Manhattan distance exactly 1).
func (c Cell) IsAdjacentTo(o Cell) bool { return c.Manhattan(o) == 1 }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Spacing is the world distance between neighbouring cells.
	Spacing float64
	// Height is the Y coordinate given to every node.
	Height float64
	// Forced cells are made walkable before adjacency is computed,
	// typically the labyrinth's start and goal.
	Forced []Cell
	// Logger receives the build summary. Nil discards.
	Logger *slog.Logger
}

// DefaultGridOptions returns GridOptions with Spacing=5, Height=0 and no forced cells.
func DefaultGridOptions() GridOptions {
	return GridOptions{Spacing: 5}
}

// offsets is the fixed neighbour order: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable labyrinth graph. cells[r][c] is the node at (r,c).
type Grid struct {
	rows, cols int
	spacing    float64
	graph      *core.Graph[Cell]
	cells      [][]*core.Node[Cell]
}
