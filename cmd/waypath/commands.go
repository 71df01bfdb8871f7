package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/scene"
	"github.com/katalvlaran/waypath/search"
)

func (a *app) searchCmd() *cobra.Command {
	var (
		algorithm string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search from the scene start to its goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.load()
			if err != nil {
				return err
			}
			alg := sc.Algorithm()
			if algorithm != "" {
				if alg, err = search.ParseAlgorithm(algorithm); err != nil {
					return err
				}
			}

			plan, err := sc.Plan(cmd.Context(), alg)
			if err != nil {
				return err
			}
			if asJSON {
				return a.writeJSON(plan)
			}
			a.writePlan(sc, plan)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "bfs, dfs, dfs-recursive, astar or testpath (default: the scene's)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")

	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the scene and tabulate the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.load()
			if err != nil {
				return err
			}
			plans, err := sc.Compare(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return a.writeJSON(plans)
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tFOUND\tHOPS\tCOST\tVISITED")
			for _, p := range plans {
				fmt.Fprintf(tw, "%s\t%t\t%d\t%g\t%d\n", p.Algorithm, p.Found, p.Hops, p.Cost, p.Visited)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plans as JSON")

	return cmd
}

func (a *app) nearestCmd() *cobra.Command {
	var x, y, z float64
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Snap a world position to the closest walkable node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.load()
			if err != nil {
				return err
			}
			pos := core.V(x, y, z)
			snap, ok := sc.Nearest(pos)
			if !ok {
				return fmt.Errorf("scene %q has no walkable node", sc.Name())
			}
			fmt.Fprintf(a.stdout, "%s at %v, distance %g\n", snap.Key, snap.Position, snap.Distance)
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "y coordinate (height)")
	cmd.Flags().Float64Var(&z, "z", 0, "z coordinate")

	return cmd
}

func (a *app) writePlan(sc *scene.Scene, plan scene.Plan) {
	if !plan.Found {
		fmt.Fprintf(a.stdout, "%s: %s found no path\n", sc.Name(), plan.Algorithm)
		if len(plan.Walls) > 0 {
			fmt.Fprintf(a.stdout, "opening %s would connect start and goal\n", strings.Join(plan.Walls, " "))
		}
		return
	}
	fmt.Fprintf(a.stdout, "%s: %s found %d hops, cost %g\n", sc.Name(), plan.Algorithm, plan.Hops, plan.Cost)
	fmt.Fprintln(a.stdout, strings.Join(plan.Keys, " "))
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
