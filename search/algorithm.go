package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/waypath/core"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for selectors
// outside the Algorithm set.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Algorithm selects the search strategy.
type Algorithm int

const (
	// BFS is breadth-first search: fewest hops.
	BFS Algorithm = iota
	// DFS is iterative depth-first search.
	DFS
	// DFSRecursive is recursive depth-first search with backtracking.
	DFSRecursive
	// AStar is A* with the configured metric as cost and heuristic.
	AStar
	// TestPath returns [start, goal] without searching.
	TestPath
)

var algorithmNames = [...]string{
	BFS:          "bfs",
	DFS:          "dfs",
	DFSRecursive: "dfs-recursive",
	AStar:        "astar",
	TestPath:     "testpath",
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Valid reports whether a is one of the defined selectors.
func (a Algorithm) Valid() bool { return a >= 0 && int(a) < len(algorithmNames) }

// Algorithms returns every selector in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, DFSRecursive, AStar, TestPath}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm. Besides the
// canonical names it accepts "a*", "dfsrecursive", "recursive" and "test".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dfs-recursive", "dfsrecursive", "recursive":
		return DFSRecursive, nil
	case "astar", "a*":
		return AStar, nil
	case "testpath", "test":
		return TestPath, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// StubPath is the TestPath algorithm: [start] when start == goal and
// [start, goal] otherwise. It performs no search and ignores adjacency;
// harnesses use it to drive path consumers without a real algorithm.
func StubPath[K comparable](start, goal *core.Node[K]) core.Path[K] {
	if start == goal {
		return core.Path[K]{start}
	}

	return core.Path[K]{start, goal}
}
