package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/scene"
)

// app holds the state shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	scenePath string
	exporter  string
	logger    *slog.Logger
	tel       *telemetry
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// execute runs the command line args and then shuts telemetry down,
// whether or not the command succeeded.
func (a *app) execute(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if a.tel != nil {
		if serr := a.tel.shutdown(ctx); serr != nil {
			err = errors.Join(err, fmt.Errorf("telemetry shutdown: %w", serr))
		}
	}

	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "waypath",
		Short: "Plan routes over grid labyrinths and waypoint graphs",
		Long: `waypath builds the graph described by a scene file and runs
breadth-first, depth-first or A* search between its start and goal.

Examples:
  waypath search --scene labyrinth.yaml
  waypath search --scene labyrinth.yaml --algorithm dfs --json
  waypath compare --scene outpost.yaml
  waypath nearest --scene outpost.yaml --x 4 --z 6`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

			tel, err := setupTelemetry(a.exporter, a.stderr)
			if err != nil {
				return err
			}
			a.tel = tel
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.scenePath, "scene", "", "path to the scene YAML file")
	root.PersistentFlags().StringVar(&a.exporter, "telemetry", "none", "export search spans and metrics: none or stdout (to stderr)")
	_ = root.MarkPersistentFlagRequired("scene")

	root.AddCommand(a.searchCmd(), a.compareCmd(), a.nearestCmd())

	return root
}

// load reads and builds the scene named by --scene.
func (a *app) load() (*scene.Scene, error) {
	cfg, err := scene.Load(a.scenePath)
	if err != nil {
		return nil, err
	}

	return cfg.Build(
		scene.WithLogger(a.logger),
		scene.WithSearchOptions(a.tel.options()...),
	)
}
