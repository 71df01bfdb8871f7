package cursor_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/cursor"
)

// ExampleCursor_Tick drives a follower that teleports onto each target,
// as a movement controller would after enough frames.
func ExampleCursor_Tick() {
	route := []core.Vec3{core.V(0, 0, 0), core.V(5, 0, 0), core.V(5, 0, 5)}
	c := cursor.FromPositions(route, cursor.ClampAtEnd)

	for !c.Done() {
		tgt, _ := c.Target()
		fmt.Printf("at %d heading to %v\n", c.Index(), tgt)
		c.Tick(tgt, 0.5)
	}

	// Output:
	// at 0 heading to (0,0,0)
	// at 1 heading to (5,0,0)
	// at 2 heading to (5,0,5)
}
