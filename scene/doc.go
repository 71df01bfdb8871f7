// Package scene loads a pathfinding scene from YAML and plans routes in it.
//
// A scene is either a grid labyrinth (kind: grid), built with gridgraph from
// a '.'/'#' pattern, or a free waypoint graph (kind: graph) whose links are
// one-way ("uni") or two-way ("bi"). Both kinds name a start and a goal, a
// default algorithm, and the cursor policy and accuracy a follower should
// use on the result.
//
// Typical use:
//
//	cfg, err := scene.Load("labyrinth.yaml")
//	sc, err := cfg.Build(scene.WithLogger(logger))
//	plan, err := sc.Plan(ctx, sc.Algorithm())
//	cur := sc.Cursor(plan)
//
// Keys in a Plan are rendered as strings: "(row,col)" for grid cells and
// the waypoint id for graphs.
package scene
