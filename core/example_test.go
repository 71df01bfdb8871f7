package core_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// ExampleGraph builds a small waypoint graph from named links, the way a
// scene manager registers its waypoints and UNI/BI connections.
func ExampleGraph() {
	g := core.NewGraph[string]()
	for i, name := range []string{"heli", "rock", "ruin"} {
		_, _ = g.AddNode(name, core.WithPosition(core.V(float64(i)*10, 0, 0)))
	}

	_ = g.AddLink("heli", "rock", core.Bi)
	_ = g.AddLink("rock", "ruin", core.Uni)
	// "tower" was never added: the lenient graph skips this edge.
	_ = g.AddLink("ruin", "tower", core.Uni)

	rock, _ := g.Resolve("rock")
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("rock ->", rock.Neighbors())

	// Output:
	// edges: 3
	// rock -> [heli ruin]
}

// ExampleWithStrictEdges shows the strict construction mode.
func ExampleWithStrictEdges() {
	g := core.NewGraph[string](core.WithStrictEdges())
	_, _ = g.AddNode("a")

	_, err := g.AddEdge("a", "b")
	fmt.Println(err)

	// Output:
	// core: node not found: edge a→b references b
}
