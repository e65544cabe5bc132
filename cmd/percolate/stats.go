package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/estimator"
	"github.com/katalvlaran/percolation/report"
)

type statsOptions struct {
	workers  int
	seed     int64
	strategy string
	json     bool
	samples  bool
	progress bool
}

func newStatsCmd(log *logrus.Logger) *cobra.Command {
	var o statsOptions

	cmd := &cobra.Command{
		Use:   "stats N T",
		Short: "Run T trials on an N×N grid and report the threshold estimate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("grid size %q: %w", args[0], err)
			}
			trials, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("trial count %q: %w", args[1], err)
			}
			return runStats(cmd, log, n, trials, o)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&o.workers, "workers", "w", 0, "concurrent trials (0 = one per CPU)")
	f.Int64VarP(&o.seed, "seed", "s", 0, "base seed (0 = derive from the clock)")
	f.StringVar(&o.strategy, "strategy", estimator.Permutation.String(), "site selection: permutation or rejection")
	f.BoolVar(&o.json, "json", false, "print the report as JSON")
	f.BoolVar(&o.samples, "samples", false, "include per-trial samples in the JSON report")
	f.BoolVarP(&o.progress, "progress", "p", false, "show a progress bar")

	return cmd
}

func runStats(cmd *cobra.Command, log *logrus.Logger, n, trials int, o statsOptions) error {
	strategy, err := estimator.ParseStrategy(o.strategy)
	if err != nil {
		return fmt.Errorf("--strategy %q: %w", o.strategy, err)
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithFields(logrus.Fields{"n": n, "trials": trials, "seed": seed}).Info("running trials")

	opts := []estimator.Option{
		estimator.WithContext(cmd.Context()),
		estimator.WithSeed(seed),
		estimator.WithWorkers(o.workers),
		estimator.WithStrategy(strategy),
		estimator.WithLogger(log),
	}
	var bars *uiprogress.Progress
	if o.progress && trials > 0 {
		// The bar redraws in place; keep it off the report's stream.
		bars = uiprogress.New()
		bars.SetOut(cmd.ErrOrStderr())
		bar := bars.AddBar(trials).AppendCompleted().PrependElapsed()
		bars.Start()
		opts = append(opts, estimator.WithOnTrial(func(int, float64) { bar.Incr() }))
	}

	res, err := estimator.Estimate(n, trials, opts...)
	if bars != nil {
		bars.Stop()
	}
	if err != nil {
		return err
	}

	if o.json {
		doc, err := report.JSON(res, o.samples)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(doc)
		return err
	}
	return report.Text(cmd.OutOrStdout(), res)
}
