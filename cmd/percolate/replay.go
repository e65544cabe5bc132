package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/replay"
)

func newReplayCmd(log *logrus.Logger) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Open the sites listed in FILE one by one and print the grid state",
		Long: "FILE holds the grid size on its first line followed by one \"row col\"\n" +
			"pair per line. After each open the site state and the percolation flag\n" +
			"are printed. With --verify every step is cross-checked by flood fill.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			script, err := replay.Parse(f)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"file":  args[0],
				"n":     script.N,
				"opens": len(script.Entries),
			}).Info("replaying")

			out := cmd.OutOrStdout()
			p, err := replay.Run(script, replay.Options{Verify: verify}, func(st replay.Step) error {
				_, err := fmt.Fprintf(out, "open (%d,%d): open=%v full=%v percolates=%v open-sites=%d\n",
					st.Entry.Row, st.Entry.Col, st.Open, st.Full, st.Percolates, st.OpenSites)
				return err
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%d×%d grid, %d open sites, percolates=%v\n",
				p.Size(), p.Size(), p.NumberOfOpenSites(), p.Percolates())
			return err
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check every step against a flood fill")

	return cmd
}
