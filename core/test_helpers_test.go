// Package core_test contains shared fixtures for core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
)

// Common node keys used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
	NodeY = "Y"
)

// mustNode adds key to g and fails the test on error.
func mustNode(t *testing.T, g *core.Graph[string], key string, opts ...core.NodeOption) *core.Node[string] {
	t.Helper()
	n, err := g.AddNode(key, opts...)
	require.NoError(t, err)

	return n
}

// square builds A(0,0,0) → B(1,0,0) → C(1,0,1) → D(0,0,1) → A as a directed ring.
func square(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	mustNode(t, g, NodeA, core.WithPosition(core.V(0, 0, 0)))
	mustNode(t, g, NodeB, core.WithPosition(core.V(1, 0, 0)))
	mustNode(t, g, NodeC, core.WithPosition(core.V(1, 0, 1)))
	mustNode(t, g, NodeD, core.WithPosition(core.V(0, 0, 1)))
	for _, pair := range [][2]string{{NodeA, NodeB}, {NodeB, NodeC}, {NodeC, NodeD}, {NodeD, NodeA}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}

	return g
}
