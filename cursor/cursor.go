package cursor

import (
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/waypath/core"
)

// Waypoint is anything with a world position. Both *core.Node and
// core.Vec3 satisfy it.
type Waypoint interface {
	Pos() core.Vec3
}

// Cursor tracks progress along an ordered list of waypoints.
type Cursor[W Waypoint] struct {
	points []W
	policy Policy
	idx    int
	done   bool
}

// New returns a cursor positioned on the first of waypoints. The slice is
// copied.
func New[W Waypoint](waypoints []W, policy Policy) *Cursor[W] {
	c := &Cursor[W]{policy: policy}
	c.Reset(waypoints)

	return c
}

// FromPath returns a cursor over the nodes of path.
func FromPath[K comparable](path core.Path[K], policy Policy) *Cursor[*core.Node[K]] {
	return New([]*core.Node[K](path), policy)
}

// FromPositions returns a cursor over bare positions.
func FromPositions(positions []core.Vec3, policy Policy) *Cursor[core.Vec3] {
	return New(positions, policy)
}

// Reset replaces the waypoints and rewinds to the first one.
func (c *Cursor[W]) Reset(waypoints []W) {
	c.points = append(c.points[:0:0], waypoints...)
	c.idx = 0
	c.done = false
}

// Policy returns the end policy.
func (c *Cursor[W]) Policy() Policy { return c.policy }

// HasPath reports whether there is at least one waypoint.
func (c *Cursor[W]) HasPath() bool { return len(c.points) > 0 }

// Len returns the number of waypoints.
func (c *Cursor[W]) Len() int { return len(c.points) }

// Index returns the index of the current target.
func (c *Cursor[W]) Index() int { return c.idx }

// Target returns the current waypoint. ok is false for an empty cursor.
func (c *Cursor[W]) Target() (w W, ok bool) {
	if len(c.points) == 0 {
		return w, false
	}

	return c.points[c.idx], true
}

// Done reports whether a ClampAtEnd cursor has reached its last waypoint.
// A Cyclic cursor is never done.
func (c *Cursor[W]) Done() bool { return c.done }

// Remaining returns how many waypoints are still to be reached, the
// current target included.
func (c *Cursor[W]) Remaining() int {
	if c.done {
		return 0
	}

	return len(c.points) - c.idx
}

// Advance moves to the next waypoint and reports whether the index moved.
// On the last waypoint, ClampAtEnd marks the cursor done and stays put
// while Cyclic wraps to 0.
func (c *Cursor[W]) Advance() bool {
	n := len(c.points)
	if n == 0 || c.done {
		return false
	}
	if c.idx < n-1 {
		c.idx++
		return true
	}
	if c.policy == Cyclic {
		c.idx = 0
		return n > 1
	}
	c.done = true

	return false
}

// Tick makes one advance decision for a follower at position: when the
// ground-plane distance to the current target is within accuracy, the
// cursor advances. It reports whether the index moved.
func (c *Cursor[W]) Tick(position core.Vec3, accuracy float64) bool {
	target, ok := c.Target()
	if !ok || c.done {
		return false
	}
	if planar.Distance(target.Pos().Planar(), position.Planar()) > accuracy {
		return false
	}

	return c.Advance()
}

// Distance returns the ground-plane distance from position to the current
// target. ok is false for an empty cursor.
func (c *Cursor[W]) Distance(position core.Vec3) (float64, bool) {
	target, ok := c.Target()
	if !ok {
		return 0, false
	}

	return planar.Distance(target.Pos().Planar(), position.Planar()), true
}
