package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sweeney/nev-ttl/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats <events-file>",
	Short: "Print per-channel pulse statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		source, res, err := loadRecording(cfg, args[0])
		if err != nil {
			return err
		}

		summary := stats.Summarize(res)
		if len(summary) == 0 {
			fmt.Printf("%s: no pulses on any channel\n", source)
			return nil
		}

		fmt.Printf("%s (unit=%s)\n", source, res.Unit)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "channel\tpulses\ttotal high\tmean width\tstddev\tmin\tmax\tduty")
		for _, cs := range summary {
			fmt.Fprintf(w, "%d\t%d\t%g\t%g\t%g\t%g\t%g\t%.2f%%\n",
				cs.Channel, cs.Count, cs.TotalHigh, cs.MeanWidth,
				cs.StdDevWidth, cs.MinWidth, cs.MaxWidth, cs.DutyCycle*100)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
