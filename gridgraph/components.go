package gridgraph

// Components finds all contiguous regions of walkable cells under the
// grid's 4-connectivity. Components are ordered by their first cell in
// row-major order; cells within a component are in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (gr *Grid) Components() [][]Cell {
	seen := make([]bool, gr.rows*gr.cols)
	var comps [][]Cell

	for r := 0; r < gr.rows; r++ {
		for c := 0; c < gr.cols; c++ {
			if !gr.cells[r][c].Walkable || seen[gr.index(r, c)] {
				continue
			}
			comps = append(comps, gr.flood(Cell{Row: r, Col: c}, seen))
		}
	}

	return comps
}

// Connected reports whether a and b are both walkable and lie in the same
// component, that is, whether any search can join them.
func (gr *Grid) Connected(a, b Cell) bool {
	if !gr.Walkable(a) || !gr.Walkable(b) {
		return false
	}
	seen := make([]bool, gr.rows*gr.cols)
	for _, cell := range gr.flood(a, seen) {
		if cell == b {
			return true
		}
	}

	return false
}

// flood collects the component containing start, marking seen as it goes.
func (gr *Grid) flood(start Cell, seen []bool) []Cell {
	queue := []Cell{start}
	seen[gr.index(start.Row, start.Col)] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			vr, vc := u.Row+d[0], u.Col+d[1]
			if !gr.InBounds(vr, vc) || !gr.cells[vr][vc].Walkable {
				continue
			}
			vi := gr.index(vr, vc)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, Cell{Row: vr, Col: vc})
			}
		}
	}

	return queue
}

func (gr *Grid) index(r, c int) int { return r*gr.cols + c }

func (gr *Grid) cellAt(i int) Cell { return Cell{Row: i / gr.cols, Col: i % gr.cols} }
