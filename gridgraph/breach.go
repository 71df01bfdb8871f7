package gridgraph

import (
	"container/list"
	"fmt"
)

// Breach finds the fewest walls that must be opened to join from and to.
// It returns the joining route (from and to included) and the wall cells
// on it in route order. Walkable cells cost 0 to enter, walls cost 1; a
// wall under from itself counts too. When the cells are already connected
// the returned wall list is empty.
//
// Behavior:
//  1. Validate both cells.
//  2. 0-1 BFS from `from`:
//     • entering a walkable cell → cost 0, pushed to the front
//     • entering a wall          → cost 1, pushed to the back
//  3. Stop when `to` is dequeued.
//  4. Reconstruct the route via predecessors.
//
// Complexity: O(R·C). Memory: O(R·C).
func (gr *Grid) Breach(from, to Cell) (route []Cell, walls []Cell, err error) {
	for _, c := range [2]Cell{from, to} {
		if !gr.InBounds(c.Row, c.Col) {
			return nil, nil, fmt.Errorf("%w: %v in %dx%d grid", ErrCellOutOfBounds, c, gr.rows, gr.cols)
		}
	}

	n := gr.rows * gr.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := gr.index(from.Row, from.Col), gr.index(to.Row, to.Col)
	dist[src] = gr.wallCost(src)
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		uc := gr.cellAt(u)
		for _, d := range offsets {
			vr, vc := uc.Row+d[0], uc.Col+d[1]
			if !gr.InBounds(vr, vc) {
				continue
			}
			v := gr.index(vr, vc)
			step := gr.wallCost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		route = append(route, gr.cellAt(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	for _, c := range route {
		if !gr.cells[c.Row][c.Col].Walkable {
			walls = append(walls, c)
		}
	}

	return route, walls, nil
}

func (gr *Grid) wallCost(i int) int {
	c := gr.cellAt(i)
	if gr.cells[c.Row][c.Col].Walkable {
		return 0
	}

	return 1
}
