// File: gridgraph.go
// Role: Grid construction from a walkable pattern, plus cell/node accessors.
// Determinism:
//   - Nodes are added row-major; adjacency per walkable cell is up, down, left, right.
// AI-HINT (file):
//   - Forced cells are applied before adjacency, so a wall under the start or
//     goal never leaves them isolated.

package gridgraph

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/waypath/core"
)

// Rune values accepted by ParsePattern.
const (
	Open = '.'
	Wall = '#'
)

// NewGrid builds a frozen labyrinth graph from pattern, where pattern[r][c]
// is true for a walkable cell.
//
// Steps:
//  1. Validate shape, spacing and forced cells.
//  2. Add every cell as a node, row-major, applying Forced walkability.
//  3. For each walkable cell, connect its walkable orthogonal neighbours
//     in the order up, down, left, right.
//  4. Freeze the graph.
//
// Complexity: O(R×C).
func NewGrid(pattern [][]bool, opts GridOptions) (*Grid, error) {
	rows := len(pattern)
	if rows == 0 || len(pattern[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(pattern[0])
	for r := 1; r < rows; r++ {
		if len(pattern[r]) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(pattern[r]), cols)
		}
	}
	if !(opts.Spacing > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadSpacing, opts.Spacing)
	}

	forced := make(map[Cell]struct{}, len(opts.Forced))
	for _, c := range opts.Forced {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("%w: forced %v in %dx%d grid", ErrCellOutOfBounds, c, rows, cols)
		}
		forced[c] = struct{}{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	gr := &Grid{
		rows:    rows,
		cols:    cols,
		spacing: opts.Spacing,
		graph:   core.NewGraph[Cell](core.WithCapacity(rows*cols), core.WithLogger(logger)),
		cells:   make([][]*core.Node[Cell], rows),
	}

	walkable := 0
	for r := 0; r < rows; r++ {
		gr.cells[r] = make([]*core.Node[Cell], cols)
		for c := 0; c < cols; c++ {
			cell := Cell{Row: r, Col: c}
			_, force := forced[cell]
			open := pattern[r][c] || force
			n, err := gr.graph.AddNode(cell,
				core.WithWalkable(open),
				core.WithPosition(core.V(float64(r)*opts.Spacing, opts.Height, float64(c)*opts.Spacing)),
			)
			if err != nil {
				return nil, err
			}
			gr.cells[r][c] = n
			if open {
				walkable++
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			from := gr.cells[r][c]
			if !from.Walkable {
				continue
			}
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if !gr.InBounds(nr, nc) {
					continue
				}
				to := gr.cells[nr][nc]
				if !to.Walkable {
					continue
				}
				if _, err := gr.graph.Connect(from, to); err != nil {
					return nil, err
				}
			}
		}
	}
	gr.graph.Freeze()

	logger.Debug("grid built",
		slog.Int("rows", rows),
		slog.Int("cols", cols),
		slog.Int("walkable", walkable),
		slog.Int("edges", gr.graph.EdgeCount()),
	)

	return gr, nil
}

// ParsePattern converts text rows into a walkability pattern:
// '.' is walkable, '#' is a wall.
func ParsePattern(lines []string) ([][]bool, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	out := make([][]bool, len(lines))
	for r, line := range lines {
		row := make([]bool, 0, len(line))
		for c, ch := range line {
			switch ch {
			case Open:
				row = append(row, true)
			case Wall:
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: row %d col %d has %q", ErrBadPattern, r, c, ch)
			}
		}
		out[r] = row
	}

	return out, nil
}

// LabyrinthPattern returns the stock 7×6 labyrinth. Start (0,0) and goal
// (6,5) are both open and connected.
func LabyrinthPattern() [][]bool {
	const T, F = true, false

	return [][]bool{
		{T, T, F, T, T, T},
		{T, F, T, T, T, T},
		{T, F, T, T, T, T},
		{T, T, T, F, T, T},
		{T, T, T, T, F, T},
		{T, T, F, T, F, T},
		{T, F, F, T, T, T},
	}
}

// Rows returns the number of rows.
func (gr *Grid) Rows() int { return gr.rows }

// Cols returns the number of columns.
func (gr *Grid) Cols() int { return gr.cols }

// Spacing returns the world distance between neighbouring cells.
func (gr *Grid) Spacing() float64 { return gr.spacing }

// InBounds reports whether (r,c) lies inside the grid.
func (gr *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < gr.rows && c >= 0 && c < gr.cols
}

// Node returns the node at cell, or ErrCellOutOfBounds.
func (gr *Grid) Node(cell Cell) (*core.Node[Cell], error) {
	if !gr.InBounds(cell.Row, cell.Col) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrCellOutOfBounds, cell, gr.rows, gr.cols)
	}

	return gr.cells[cell.Row][cell.Col], nil
}

// Walkable reports whether cell is in bounds and walkable.
func (gr *Grid) Walkable(cell Cell) bool {
	return gr.InBounds(cell.Row, cell.Col) && gr.cells[cell.Row][cell.Col].Walkable
}

// Graph returns the underlying frozen graph.
func (gr *Grid) Graph() *core.Graph[Cell] { return gr.graph }

// String renders the grid with '.' and '#', one row per line.
func (gr *Grid) String() string {
	buf := make([]byte, 0, gr.rows*(gr.cols+1))
	for r := 0; r < gr.rows; r++ {
		for c := 0; c < gr.cols; c++ {
			if gr.cells[r][c].Walkable {
				buf = append(buf, Open)
			} else {
				buf = append(buf, Wall)
			}
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}
