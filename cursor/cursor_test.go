package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/cursor"
)

func line() []core.Vec3 {
	return []core.Vec3{core.V(0, 0, 0), core.V(10, 0, 0), core.V(10, 0, 10)}
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]cursor.Policy{
		"clamp":        cursor.ClampAtEnd,
		"Clamp-At-End": cursor.ClampAtEnd,
		" cyclic ":     cursor.Cyclic,
		"loop":         cursor.Cyclic,
	}
	for in, want := range cases {
		got, err := cursor.ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := cursor.ParsePolicy("bounce")
	assert.ErrorIs(t, err, cursor.ErrUnknownPolicy)

	assert.Equal(t, "clamp", cursor.ClampAtEnd.String())
	assert.Equal(t, "cyclic", cursor.Cyclic.String())
	assert.Equal(t, "Policy(7)", cursor.Policy(7).String())
}

func TestCursor_Empty(t *testing.T) {
	c := cursor.FromPositions(nil, cursor.ClampAtEnd)
	assert.False(t, c.HasPath())
	_, ok := c.Target()
	assert.False(t, ok)
	assert.False(t, c.Tick(core.V(0, 0, 0), 100))
	assert.False(t, c.Advance())
	assert.False(t, c.Done())
	assert.Equal(t, 0, c.Remaining())
	_, ok = c.Distance(core.V(0, 0, 0))
	assert.False(t, ok)
}

// TestCursor_ClampAtEnd walks a follower over three waypoints and checks
// that the cursor holds the last one.
func TestCursor_ClampAtEnd(t *testing.T) {
	c := cursor.FromPositions(line(), cursor.ClampAtEnd)
	require.True(t, c.HasPath())
	assert.Equal(t, 3, c.Remaining())

	// far from the first target: no advance
	assert.False(t, c.Tick(core.V(3, 0, 0), 0.5))
	assert.Equal(t, 0, c.Index())

	// height is ignored
	assert.True(t, c.Tick(core.V(0.3, 42, 0), 0.5))
	assert.Equal(t, 1, c.Index())

	assert.True(t, c.Tick(core.V(10, 0, 0.5), 0.5))
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 1, c.Remaining())

	// reaching the last waypoint finishes without moving
	assert.False(t, c.Tick(core.V(10, 0, 10), 0.5))
	assert.True(t, c.Done())
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 0, c.Remaining())

	tgt, ok := c.Target()
	require.True(t, ok)
	assert.Equal(t, core.V(10, 0, 10), tgt)

	// further ticks change nothing
	assert.False(t, c.Tick(core.V(10, 0, 10), 0.5))
	assert.Equal(t, 2, c.Index())
}

func TestCursor_Cyclic(t *testing.T) {
	c := cursor.FromPositions(line(), cursor.Cyclic)
	for want := 1; want <= 6; want++ {
		require.True(t, c.Advance())
		assert.Equal(t, want%3, c.Index())
		assert.False(t, c.Done())
	}

	tgt, _ := c.Target()
	assert.True(t, c.Tick(tgt, 0))
	assert.Equal(t, 1, c.Index())
}

func TestCursor_CyclicSingle(t *testing.T) {
	c := cursor.FromPositions([]core.Vec3{core.V(1, 0, 1)}, cursor.Cyclic)
	assert.False(t, c.Advance())
	assert.Equal(t, 0, c.Index())
	assert.False(t, c.Done())
}

func TestCursor_Reset(t *testing.T) {
	pts := line()
	c := cursor.New(pts, cursor.ClampAtEnd)
	c.Advance()
	c.Advance()
	c.Advance()
	require.True(t, c.Done())

	// the cursor keeps its own copy
	pts[0] = core.V(99, 0, 99)
	c.Reset(line()[:2])
	assert.False(t, c.Done())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 2, c.Len())
	tgt, _ := c.Target()
	assert.Equal(t, core.V(0, 0, 0), tgt)
}

func TestCursor_FromPath(t *testing.T) {
	g := core.NewGraph[string]()
	a, err := g.AddNode("a", core.WithPosition(core.V(0, 0, 0)))
	require.NoError(t, err)
	b, err := g.AddNode("b", core.WithPosition(core.V(0, 0, 5)))
	require.NoError(t, err)

	c := cursor.FromPath(core.Path[string]{a, b}, cursor.ClampAtEnd)
	n, ok := c.Target()
	require.True(t, ok)
	assert.Equal(t, "a", n.Key)

	d, ok := c.Distance(core.V(3, 0, 4))
	require.True(t, ok)
	assert.InDelta(t, 5, d, 1e-12)

	assert.True(t, c.Tick(core.V(0, 0, 0.4), 0.5))
	n, _ = c.Target()
	assert.Equal(t, "b", n.Key)
	assert.Equal(t, cursor.ClampAtEnd, c.Policy())
}
