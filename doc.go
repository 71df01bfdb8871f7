// Package waypath is a pathfinding toolkit for game-style worlds: grid
// labyrinths and free waypoint networks whose edge costs come from node
// positions rather than stored weights.
//
// What is in the box:
//
//	• Core primitives: generic Graph[K], Node[K], Edge[K] and Path[K]
//	• Grid labyrinths built from a '.'/'#' pattern, with region and
//	  wall-breach analysis
//	• Searches: BFS, iterative DFS, recursive DFS, A* and a TestPath stub
//	• A Searcher that switches between them and reports every run through
//	  slog and OpenTelemetry
//	• An R-tree index that snaps world positions onto the graph
//	• Path cursors that hand waypoints to a movement controller, clamped
//	  at the end or cycling forever
//	• YAML scene files and the waypath CLI
//
// Subpackages:
//
//	core/        Vec3, metrics, Graph/Node/Edge, Path, construction options
//	gridgraph/   labyrinth grids, Components, Breach
//	bfs/         breadth-first search with depth layering
//	dfs/         iterative and recursive depth-first search
//	astar/       A* over a binary heap
//	search/      algorithm selector, Searcher, telemetry
//	spatial/     nearest-node and radius queries
//	cursor/      path consumption policies
//	scene/       YAML scenes: load, validate, build, plan
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square of four waypoints; with A at the origin and unit sides, BFS,
//	DFS and A* all return a two-hop route from A to D.
//
// Searches are synchronous and keep their scratch state outside the
// nodes, so independent searches over one graph never interfere. The graph
// itself is not locked: build it, freeze it, then search.
package waypath
