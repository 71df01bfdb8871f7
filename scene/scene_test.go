package scene_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/cursor"
	"github.com/katalvlaran/waypath/gridgraph"
	"github.com/katalvlaran/waypath/scene"
	"github.com/katalvlaran/waypath/search"
)

func build(t *testing.T, path string, opts ...scene.Option) *scene.Scene {
	t.Helper()
	cfg, err := scene.Load(path)
	require.NoError(t, err)
	sc, err := cfg.Build(opts...)
	require.NoError(t, err)

	return sc
}

func buildYAML(t *testing.T, doc string, opts ...scene.Option) *scene.Scene {
	t.Helper()
	cfg, err := scene.Parse([]byte(doc))
	require.NoError(t, err)
	sc, err := cfg.Build(opts...)
	require.NoError(t, err)

	return sc
}

//----------------------------------------------------------------------------//
// Parse / Validate
//----------------------------------------------------------------------------//

func TestParse_Defaults(t *testing.T) {
	cfg, err := scene.Parse([]byte(`
name: tiny
kind: grid
grid:
  pattern: ["..", ".."]
  start: [0, 0]
  goal: [1, 1]
`))
	require.NoError(t, err)
	assert.Equal(t, scene.DefaultAlgorithm, cfg.Algorithm)
	assert.Equal(t, scene.DefaultPolicy, cfg.Policy)
	assert.Equal(t, scene.DefaultAccuracy, cfg.Accuracy)
	assert.Equal(t, scene.DefaultMetric, cfg.Metric)
	assert.Equal(t, scene.DefaultSpacing, cfg.Grid.Spacing)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"Empty", ``},
		{"NoName", "kind: grid\ngrid: {pattern: [\".\"], start: [0, 0], goal: [0, 0]}\n"},
		{"BadKind", "name: x\nkind: hex\n"},
		{"GridMissing", "name: x\nkind: grid\n"},
		{"GraphMissing", "name: x\nkind: graph\n"},
		{"UnknownKey", "name: x\ncolour: red\nkind: grid\ngrid: {pattern: [\".\"], start: [0, 0], goal: [0, 0]}\n"},
		{"BadAlgorithm", "name: x\nkind: grid\nalgorithm: dijkstra\ngrid: {pattern: [\".\"], start: [0, 0], goal: [0, 0]}\n"},
		{"BadPolicy", "name: x\nkind: grid\npolicy: bounce\ngrid: {pattern: [\".\"], start: [0, 0], goal: [0, 0]}\n"},
		{"BadMetric", "name: x\nkind: grid\nmetric: chebyshev\ngrid: {pattern: [\".\"], start: [0, 0], goal: [0, 0]}\n"},
		{"NegativeAccuracy", "name: x\nkind: grid\naccuracy: -1\ngrid: {pattern: [\".\"], start: [0, 0], goal: [0, 0]}\n"},
		{"ShortStart", "name: x\nkind: grid\ngrid: {pattern: [\".\"], start: [0], goal: [0, 0]}\n"},
		{"NegativeGoal", "name: x\nkind: grid\ngrid: {pattern: [\".\"], start: [0, 0], goal: [0, -1]}\n"},
		{"NoWaypoints", "name: x\nkind: graph\ngraph: {start: a, goal: a}\n"},
		{"ShortPosition", "name: x\nkind: graph\ngraph: {waypoints: [{id: a, position: [0, 0]}], start: a, goal: a}\n"},
		{"BadDir", "name: x\nkind: graph\ngraph: {waypoints: [{id: a, position: [0, 0, 0]}], links: [{from: a, to: a, dir: both}], start: a, goal: a}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, scene.ErrInvalidScene)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := scene.Load("testdata/missing.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"BadRune", "name: x\nkind: grid\ngrid: {pattern: [\".x\"], start: [0, 0], goal: [0, 0]}\n", gridgraph.ErrBadPattern},
		{"Ragged", "name: x\nkind: grid\ngrid: {pattern: [\"..\", \".\"], start: [0, 0], goal: [0, 0]}\n", gridgraph.ErrNonRectangular},
		{"StartOutside", "name: x\nkind: grid\ngrid: {pattern: [\"..\"], start: [9, 9], goal: [0, 0]}\n", gridgraph.ErrCellOutOfBounds},
		{"UnknownStart", "name: x\nkind: graph\ngraph: {waypoints: [{id: a, position: [0, 0, 0]}], start: z, goal: a}\n", core.ErrNodeNotFound},
		{"UnknownGoal", "name: x\nkind: graph\ngraph: {waypoints: [{id: a, position: [0, 0, 0]}], start: a, goal: z}\n", core.ErrNodeNotFound},
		{"StrictDangling", "name: x\nkind: graph\ngraph: {strict: true, waypoints: [{id: a, position: [0, 0, 0]}], links: [{from: a, to: z}], start: a, goal: a}\n", core.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := scene.Parse([]byte(tc.doc))
			require.NoError(t, err)
			_, err = cfg.Build()
			assert.ErrorIs(t, err, scene.ErrInvalidScene)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestBuild_Unvalidated feeds Build configs that never went through Parse.
func TestBuild_Unvalidated(t *testing.T) {
	cases := []struct {
		name string
		cfg  scene.Config
	}{
		{"NoBlock", scene.Config{Name: "x", Kind: scene.KindGrid}},
		{"NoStart", scene.Config{Name: "x", Kind: scene.KindGrid, Grid: &scene.GridConfig{
			Pattern: []string{".."},
			Goal:    []int{0, 1},
		}}},
		{"ShortStart", scene.Config{Name: "x", Kind: scene.KindGrid, Grid: &scene.GridConfig{
			Pattern: []string{".."},
			Start:   []int{0},
			Goal:    []int{0, 1},
		}}},
		{"NoPosition", scene.Config{Name: "x", Kind: scene.KindGraph, Graph: &scene.GraphConfig{
			Waypoints: []scene.WaypointConfig{{ID: "a"}},
			Start:     "a",
			Goal:      "a",
		}}},
		{"BadKind", scene.Config{Name: "x", Kind: "hex"}},
		{"BadAlgorithm", scene.Config{Name: "x", Kind: scene.KindGraph, Algorithm: "dijkstra", Graph: &scene.GraphConfig{
			Waypoints: []scene.WaypointConfig{{ID: "a", Position: []float64{0, 0, 0}}},
			Start:     "a",
			Goal:      "a",
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			var sc *scene.Scene
			var err error
			require.NotPanics(t, func() { sc, err = cfg.Build() })
			assert.ErrorIs(t, err, scene.ErrInvalidScene)
			assert.Nil(t, sc)
		})
	}
}

func TestBuild_LiteralDefaults(t *testing.T) {
	cfg := scene.Config{Name: "x", Kind: scene.KindGrid, Grid: &scene.GridConfig{
		Pattern: []string{"..."},
		Start:   []int{0, 0},
		Goal:    []int{0, 2},
	}}
	sc, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, search.AStar, sc.Algorithm())
	assert.Equal(t, scene.DefaultSpacing, cfg.Grid.Spacing)

	plan, err := sc.Plan(context.Background(), sc.Algorithm())
	require.NoError(t, err)
	assert.True(t, plan.Found)
	assert.Equal(t, 2, plan.Hops)
}

// TestBuild_LenientDangling checks that a link to an unknown waypoint is
// skipped unless the graph is strict.
func TestBuild_LenientDangling(t *testing.T) {
	sc := buildYAML(t, "name: x\nkind: graph\ngraph: {waypoints: [{id: a, position: [0, 0, 0]}], links: [{from: a, to: z, dir: bi}], start: a, goal: a}\n")
	nodes, edges := sc.Size()
	assert.Equal(t, 1, nodes)
	assert.Equal(t, 0, edges)
}

//----------------------------------------------------------------------------//
// Grid scenes
//----------------------------------------------------------------------------//

func TestLabyrinth_Plan(t *testing.T) {
	sc := build(t, "testdata/labyrinth.yaml")
	assert.Equal(t, "labyrinth", sc.Name())
	assert.Equal(t, scene.KindGrid, sc.Kind())
	assert.Equal(t, search.AStar, sc.Algorithm())
	assert.Equal(t, cursor.ClampAtEnd, sc.Policy())
	assert.Equal(t, 0.5, sc.Accuracy())

	nodes, edges := sc.Size()
	assert.Equal(t, 42, nodes)
	assert.Equal(t, 84, edges)

	plan, err := sc.Plan(context.Background(), sc.Algorithm())
	require.NoError(t, err)
	require.True(t, plan.Found)
	assert.Equal(t, []string{
		"(0,0)", "(1,0)", "(2,0)", "(3,0)", "(3,1)", "(3,2)",
		"(4,2)", "(4,3)", "(5,3)", "(6,3)", "(6,4)", "(6,5)",
	}, plan.Keys)
	assert.Equal(t, 11, plan.Hops)
	assert.InDelta(t, 275.0, plan.Cost, 1e-9)
	assert.Equal(t, core.V(30, 0, 25), plan.Positions[len(plan.Positions)-1])
	assert.Empty(t, plan.Walls)
}

func TestLabyrinth_Compare(t *testing.T) {
	sc := build(t, "testdata/labyrinth.yaml")
	plans, err := sc.Compare(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, len(search.Algorithms()))

	hops := map[search.Algorithm]int{}
	for _, p := range plans {
		assert.True(t, p.Found, p.Algorithm.String())
		assert.Equal(t, "(0,0)", p.Keys[0])
		assert.Equal(t, "(6,5)", p.Keys[len(p.Keys)-1])
		hops[p.Algorithm] = p.Hops
	}
	assert.Equal(t, map[search.Algorithm]int{
		search.BFS:          11,
		search.DFS:          11,
		search.DFSRecursive: 21,
		search.AStar:        11,
		search.TestPath:     1,
	}, hops)
}

func TestLabyrinth_Nearest(t *testing.T) {
	sc := build(t, "testdata/labyrinth.yaml")

	// (1,1) is a wall; three open cells are 5 away and the first added wins
	snap, ok := sc.Nearest(core.V(5, 0, 5))
	require.True(t, ok)
	assert.Equal(t, "(0,1)", snap.Key)
	assert.Equal(t, core.V(0, 0, 5), snap.Position)
	assert.InDelta(t, 5.0, snap.Distance, 1e-9)
}

func TestLabyrinth_Cursor(t *testing.T) {
	sc := build(t, "testdata/labyrinth.yaml")
	plan, err := sc.Plan(context.Background(), search.BFS)
	require.NoError(t, err)

	cur := sc.Cursor(plan)
	require.Equal(t, len(plan.Positions), cur.Len())
	ticks := 0
	for !cur.Done() {
		tgt, ok := cur.Target()
		require.True(t, ok)
		cur.Tick(tgt, sc.Accuracy())
		ticks++
	}
	assert.Equal(t, len(plan.Positions), ticks)
	tgt, _ := cur.Target()
	assert.Equal(t, core.V(30, 0, 25), tgt)
}

// TestGrid_Unreachable checks the wall diagnostic attached to failed plans.
func TestGrid_Unreachable(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sc := buildYAML(t, "name: split\nkind: grid\ngrid: {pattern: [\".#.\"], start: [0, 0], goal: [0, 2]}\n",
		scene.WithLogger(logger))

	plan, err := sc.Plan(context.Background(), search.AStar)
	require.NoError(t, err)
	assert.False(t, plan.Found)
	assert.Empty(t, plan.Keys)
	assert.Equal(t, []string{"(0,1)"}, plan.Walls)
	assert.Contains(t, buf.String(), `"msg":"goal unreachable"`)
	assert.Contains(t, buf.String(), `"msg":"scene built"`)
	assert.Contains(t, buf.String(), `"scene":"split"`)

	plans, err := sc.Compare(context.Background())
	require.NoError(t, err)
	for _, p := range plans {
		if p.Algorithm == search.TestPath {
			assert.True(t, p.Found)
			assert.Nil(t, p.Walls)
			continue
		}
		assert.False(t, p.Found, p.Algorithm.String())
		assert.Equal(t, []string{"(0,1)"}, p.Walls)
	}
}

// TestGrid_ForcedEndpoints checks that walls under start and goal are opened.
func TestGrid_ForcedEndpoints(t *testing.T) {
	sc := buildYAML(t, "name: forced\nkind: grid\ngrid: {pattern: [\"#.#\"], start: [0, 0], goal: [0, 2]}\n")
	plan, err := sc.Plan(context.Background(), search.BFS)
	require.NoError(t, err)
	assert.True(t, plan.Found)
	assert.Equal(t, []string{"(0,0)", "(0,1)", "(0,2)"}, plan.Keys)
}

//----------------------------------------------------------------------------//
// Graph scenes
//----------------------------------------------------------------------------//

func TestOutpost_Plan(t *testing.T) {
	sc := build(t, "testdata/outpost.yaml")
	assert.Equal(t, scene.KindGraph, sc.Kind())
	assert.Equal(t, search.BFS, sc.Algorithm())
	assert.Equal(t, cursor.Cyclic, sc.Policy())

	nodes, edges := sc.Size()
	assert.Equal(t, 5, nodes)
	assert.Equal(t, 11, edges)

	for _, alg := range []search.Algorithm{search.BFS, search.AStar} {
		plan, err := sc.Plan(context.Background(), alg)
		require.NoError(t, err)
		require.True(t, plan.Found, alg.String())
		assert.Equal(t, []string{"a", "b", "c"}, plan.Keys, alg.String())
		assert.InDelta(t, 200.0, plan.Cost, 1e-9)
	}

	plans, err := sc.Compare(context.Background())
	require.NoError(t, err)
	for _, p := range plans {
		assert.True(t, p.Found, p.Algorithm.String())
		assert.NotContains(t, p.Keys, "rock", p.Algorithm.String())
	}
}

// TestOutpost_Nearest checks that snapping skips the blocked rock.
func TestOutpost_Nearest(t *testing.T) {
	sc := build(t, "testdata/outpost.yaml")
	snap, ok := sc.Nearest(core.V(5, 0, 5))
	require.True(t, ok)
	assert.NotEqual(t, "rock", snap.Key)
	assert.Equal(t, "a", snap.Key)
}

func TestGraph_OneWay(t *testing.T) {
	sc := buildYAML(t, `
name: oneway
kind: graph
graph:
  waypoints:
    - {id: a, position: [0, 0, 0]}
    - {id: b, position: [10, 0, 0]}
  links:
    - {from: a, to: b}
  start: b
  goal: a
`)
	plan, err := sc.Plan(context.Background(), search.BFS)
	require.NoError(t, err)
	assert.False(t, plan.Found)
	assert.Nil(t, plan.Walls)
}

func TestScene_MaxDepth(t *testing.T) {
	sc := buildYAML(t, "name: deep\nkind: grid\nmax_depth: 2\ngrid: {pattern: [\"....\"], start: [0, 0], goal: [0, 3]}\n")
	_, err := sc.Plan(context.Background(), search.DFSRecursive)
	assert.Error(t, err)

	plan, err := sc.Plan(context.Background(), search.BFS)
	require.NoError(t, err)
	assert.Equal(t, 3, plan.Hops)
}
