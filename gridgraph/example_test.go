// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/gridgraph"
)

// ExampleGrid_Components builds a small labyrinth from text and lists its
// walkable regions, then asks how many walls separate the two corners.
func ExampleGrid_Components() {
	pattern, _ := gridgraph.ParsePattern([]string{
		"..#",
		".##",
		"#..",
	})
	gr, _ := gridgraph.NewGrid(pattern, gridgraph.DefaultGridOptions())

	for i, comp := range gr.Components() {
		fmt.Printf("region %d: %v\n", i, comp)
	}

	_, walls, _ := gr.Breach(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 2, Col: 2})
	fmt.Println("walls to open:", len(walls))

	// Output:
	// region 0: [(0,0) (1,0) (0,1)]
	// region 1: [(2,1) (2,2)]
	// walls to open: 1
}
