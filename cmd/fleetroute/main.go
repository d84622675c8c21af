// Command fleetroute reads a map file, schedules the configured drone
// fleet across it, and prints the resulting per-turn movement lines.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/aerolane/fleetroute/internal/fleet"
	"github.com/aerolane/fleetroute/internal/mapfile"
)

func main() {
	app := &cli.App{
		Name:      "fleetroute",
		Usage:     "compute a conflict-free schedule for a drone fleet",
		ArgsUsage: "<map-file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log at debug level instead of info",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one argument: a map file path")
	}

	log := newLogger(c.Bool("verbose"))
	defer log.Sync() //nolint:errcheck

	m, err := mapfile.ParseFile(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("parsing map file: %w", err)
	}
	log.Info("map parsed", zap.String("run_id", m.RunID.String()), zap.Int("nb_drones", m.NBDrones()))

	report, err := fleet.NewScheduler(log).Run(context.Background(), m)
	if err != nil && report == nil {
		return fmt.Errorf("scheduling: %w", err)
	}

	for _, line := range report.Lines {
		fmt.Println(line)
	}

	printSummary(report)
	for _, id := range report.Failed {
		log.Warn("drone not delivered", zap.Int("drone_id", id))
	}

	if report.Delivered == 0 && report.TotalDrones > 0 {
		return fmt.Errorf("no drone was delivered out of %d", report.TotalDrones)
	}

	return nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return log
}

// printSummary writes a one-row delivery summary to stderr, keeping
// stdout reserved for the movement lines themselves.
func printSummary(r *fleet.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stderr)
	t.AppendHeader(table.Row{"Run ID", "Total", "Delivered", "Failed", "Max Turns"})
	t.AppendRow(table.Row{r.RunID, r.TotalDrones, r.Delivered, len(r.Failed), r.MaxTurns})
	t.Render()
}
