// Command percolate estimates site-percolation thresholds and replays
// recorded open sequences.
//
//	percolate stats 200 100              # 100 trials on a 200×200 grid
//	percolate stats 200 100 --json       # machine-readable report
//	percolate replay input20.txt --verify
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const toolVersion = "1.0.0"

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if err := newRootCmd(os.Stdout, log).Execute(); err != nil {
		log.WithError(err).Error("percolate failed")
		os.Exit(1)
	}
}

// newRootCmd wires the subcommands. All normal output goes to out; the
// logger's level is taken from --log-level once flags are parsed.
func newRootCmd(out io.Writer, log *logrus.Logger) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:     "percolate",
		Short:   "Monte Carlo estimation of the site-percolation threshold",
		Version: toolVersion,
		// Errors are logged once by main; usage is noise on a bad argument.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newStatsCmd(log), newReplayCmd(log))

	return root
}
