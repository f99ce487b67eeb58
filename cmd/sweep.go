package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/evtrip/app"
	coremon "github.com/kilianp07/evtrip/core/monitoring"
	"github.com/kilianp07/evtrip/infra/logger"
)

var sweepFlags struct {
	preset   string
	distance float64
	minKmh   int
	maxKmh   int
	workers  int
	format   string
	out      string
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate total trip time over the speed range and export it",
	RunE:  runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.StringVar(&sweepFlags.preset, "vehicle", "", "vehicle preset (see 'vehicles ls')")
	f.Float64Var(&sweepFlags.distance, "distance", 0, "trip distance in km")
	f.IntVar(&sweepFlags.minKmh, "min", 0, "lowest speed in km/h")
	f.IntVar(&sweepFlags.maxKmh, "max", 0, "highest speed in km/h")
	f.IntVar(&sweepFlags.workers, "workers", 0, "parallel workers")
	f.StringVarP(&sweepFlags.format, "format", "f", "", "output format: json, csv or html")
	f.StringVarP(&sweepFlags.out, "out", "o", "", "output file, - for stdout")
	rootCmd.AddCommand(sweepCmd)
}

func applySweepFlags(cmd *cobra.Command) error {
	f := cmd.Flags()
	if f.Changed("vehicle") {
		cfg.Vehicle.Preset = sweepFlags.preset
	}
	if f.Changed("distance") {
		cfg.Trip.DistanceKm = sweepFlags.distance
	}
	if f.Changed("min") {
		cfg.Sweep.MinKmh = sweepFlags.minKmh
	}
	if f.Changed("max") {
		cfg.Sweep.MaxKmh = sweepFlags.maxKmh
	}
	if f.Changed("workers") {
		cfg.Sweep.Workers = sweepFlags.workers
	}
	if f.Changed("format") {
		cfg.Output.Format = sweepFlags.format
		if !f.Changed("out") && cfg.Output.Path == "plot.html" {
			cfg.Output.Path = "plot." + sweepFlags.format
		}
	}
	if f.Changed("out") {
		cfg.Output.Path = sweepFlags.out
	}
	return cfg.Validate()
}

func runSweep(cmd *cobra.Command, _ []string) error {
	defer coremon.Recover()
	if err := applySweepFlags(cmd); err != nil {
		return err
	}
	if cfg.Output.Path == "-" && cfg.Logging.File == "" {
		// keep stdout clean for the export
		logger.SetOutput(os.Stderr)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}
