// Package spatial indexes graph nodes by world position in an R-tree, so a
// follower can snap its current position onto the graph before searching.
package spatial

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/waypath/core"
)

var (
	// ErrNilGraph indicates a nil graph was passed to New.
	ErrNilGraph = core.ErrNilGraph

	// ErrBadRadius indicates a negative or NaN radius.
	ErrBadRadius = errors.New("spatial: radius must be non-negative")
)

const (
	dims       = 3
	minEntries = 25
	maxEntries = 50

	// tol is the half-extent of the box stored for each point.
	tol = 1e-9
)

// entry wraps a node for R-tree storage.
type entry[K comparable] struct {
	node *core.Node[K]
	seq  int // insertion order, for tie-breaks
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry[K]) Bounds() rtreego.Rect { return e.box }

// Hit is one query result.
type Hit[K comparable] struct {
	Node *core.Node[K]

	// Distance is the 3D Euclidean distance from the query position.
	Distance float64
}

// Index answers nearest-node and radius queries over a snapshot of a
// graph's nodes. Nodes added to the graph later are not indexed.
type Index[K comparable] struct {
	all      *rtreego.Rtree
	walkable *rtreego.Rtree
	n        int
}

// New indexes every node of g. Walkable nodes are also kept in a second
// tree so NearestWalkable never has to skip obstacles.
func New[K comparable](g *core.Graph[K]) (*Index[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	idx := &Index[K]{
		all:      rtreego.NewTree(dims, minEntries, maxEntries),
		walkable: rtreego.NewTree(dims, minEntries, maxEntries),
	}
	for i, n := range g.Nodes() {
		e := &entry[K]{node: n, seq: i, box: point(n.Position).ToRect(tol)}
		idx.all.Insert(e)
		if n.Walkable {
			idx.walkable.Insert(e)
		}
		idx.n++
	}

	return idx, nil
}

// Len returns the number of indexed nodes.
func (idx *Index[K]) Len() int { return idx.n }

// Nearest returns the node closest to pos. Equidistant nodes resolve to
// the one added to the graph first. ok is false for an empty index.
func (idx *Index[K]) Nearest(pos core.Vec3) (*core.Node[K], bool) {
	return nearest[K](idx.all, pos)
}

// NearestWalkable is Nearest restricted to walkable nodes.
func (idx *Index[K]) NearestWalkable(pos core.Vec3) (*core.Node[K], bool) {
	return nearest[K](idx.walkable, pos)
}

// Within returns every node at most radius away from pos, ordered by
// distance and then by graph insertion order.
func (idx *Index[K]) Within(pos core.Vec3, radius float64) ([]Hit[K], error) {
	if !(radius >= 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadRadius, radius)
	}

	return within[K](idx.all, pos, radius)
}

func nearest[K comparable](tree *rtreego.Rtree, pos core.Vec3) (*core.Node[K], bool) {
	nn := tree.NearestNeighbor(point(pos))
	if nn == nil {
		return nil, false
	}
	// the tree returns any one of several equidistant nodes; re-query the
	// ball through it to apply the insertion-order tie-break
	d := core.Euclidean(pos, nn.(*entry[K]).node.Position)
	hits, err := within[K](tree, pos, d)
	if err != nil || len(hits) == 0 {
		return nn.(*entry[K]).node, true
	}

	return hits[0].Node, true
}

func within[K comparable](tree *rtreego.Rtree, pos core.Vec3, radius float64) ([]Hit[K], error) {
	r := radius + tol
	box, err := rtreego.NewRect(
		rtreego.Point{pos.X - r, pos.Y - r, pos.Z - r},
		[]float64{2 * r, 2 * r, 2 * r},
	)
	if err != nil {
		return nil, fmt.Errorf("spatial: query box: %w", err)
	}

	found := tree.SearchIntersect(box)
	type ranked struct {
		hit Hit[K]
		seq int
	}
	out := make([]ranked, 0, len(found))
	for _, s := range found {
		e := s.(*entry[K])
		d := core.Euclidean(pos, e.node.Position)
		if d > radius+tol {
			continue
		}
		out = append(out, ranked{hit: Hit[K]{Node: e.node, Distance: d}, seq: e.seq})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].hit.Distance != out[j].hit.Distance {
			return out[i].hit.Distance < out[j].hit.Distance
		}
		return out[i].seq < out[j].seq
	})

	hits := make([]Hit[K], len(out))
	for i, r := range out {
		hits[i] = r.hit
	}

	return hits, nil
}

func point(v core.Vec3) rtreego.Point { return rtreego.Point{v.X, v.Y, v.Z} }
