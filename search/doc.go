// Package search selects and runs the path-search algorithms behind one
// entry point, the way a game scene switches between them at runtime.
//
// The Algorithm selector covers BFS, DFS, DFSRecursive, AStar and TestPath;
// TestPath (StubPath) returns [start, goal] without searching and exists to
// drive path consumers in harnesses.
//
// A Searcher binds a graph and reports each run:
//
//   - slog: a debug record on start and an info record with the result,
//     tagged with the run's UUID and algorithm.
//   - OpenTelemetry: one span "Search.<algorithm>" per run, and the metrics
//     waypath_search_total, waypath_search_duration_seconds and
//     waypath_path_hops. Global providers apply unless overridden.
//
// Searches are synchronous and never cancelled; the context only carries
// the trace. Identity resolution happens once, in FindPath and Compare,
// before any algorithm runs.
package search
