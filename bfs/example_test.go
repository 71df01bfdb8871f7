package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/core"
)

// ExampleBFS finds the fewest-hop route across a small waypoint network.
// Two routes lead from "gate" to "tower": gate→yard→hall→tower (3 hops)
// and gate→wall→tower (2 hops).
func ExampleBFS() {
	g := core.NewGraph[string]()
	for _, k := range []string{"gate", "yard", "hall", "wall", "tower"} {
		_, _ = g.AddNode(k)
	}
	_ = g.AddLink("gate", "yard", core.Bi)
	_ = g.AddLink("yard", "hall", core.Bi)
	_ = g.AddLink("hall", "tower", core.Bi)
	_ = g.AddLink("gate", "wall", core.Bi)
	_ = g.AddLink("wall", "tower", core.Bi)

	start, _ := g.Resolve("gate")
	goal, _ := g.Resolve("tower")
	res, err := bfs.BFS(g, start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path.Keys())
	fmt.Println("depth(hall):", res.DepthOf("hall"))
	// Output:
	// [gate wall tower]
	// depth(hall): 2
}
