package core

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Path is an ordered node sequence from start to goal, both inclusive.
// An empty Path means "no path" or "not yet searched".
type Path[K comparable] []*Node[K]

// Empty reports whether the path holds no nodes.
func (p Path[K]) Empty() bool { return len(p) == 0 }

// Len returns the number of nodes.
func (p Path[K]) Len() int { return len(p) }

// Hops returns the number of edges traversed (Len-1, or 0 when empty).
func (p Path[K]) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Start returns the first node, or nil for an empty path.
func (p Path[K]) Start() *Node[K] {
	if len(p) == 0 {
		return nil
	}

	return p[0]
}

// Goal returns the last node, or nil for an empty path.
func (p Path[K]) Goal() *Node[K] {
	if len(p) == 0 {
		return nil
	}

	return p[len(p)-1]
}

// Keys returns the node identities in path order.
func (p Path[K]) Keys() []K {
	keys := make([]K, len(p))
	for i, n := range p {
		keys[i] = n.Key
	}

	return keys
}

// Positions returns the node positions in path order.
func (p Path[K]) Positions() []Vec3 {
	pos := make([]Vec3, len(p))
	for i, n := range p {
		pos[i] = n.Position
	}

	return pos
}

// Cost sums m over every consecutive pair.
func (p Path[K]) Cost(m Metric) float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += m(p[i-1].Position, p[i].Position)
	}

	return total
}

// PlanarLength is the ground-plane (X/Z) length of the path polyline.
func (p Path[K]) PlanarLength() float64 {
	if len(p) < 2 {
		return 0
	}
	ls := make(orb.LineString, len(p))
	for i, n := range p {
		ls[i] = n.Position.Planar()
	}

	return planar.Length(ls)
}

// Valid reports whether every node belongs to g and every consecutive pair
// is joined by an edge of g. An empty path is trivially valid.
func (p Path[K]) Valid(g *Graph[K]) bool {
	if g == nil {
		return false
	}
	for i, n := range p {
		if !g.Owns(n) {
			return false
		}
		if i > 0 && !g.HasEdge(p[i-1], n) {
			return false
		}
	}

	return true
}

// Reverse reverses p in place.
func (p Path[K]) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Clone returns an independent copy of p (node pointers are shared).
func (p Path[K]) Clone() Path[K] {
	if p == nil {
		return nil
	}
	c := make(Path[K], len(p))
	copy(c, p)

	return c
}
