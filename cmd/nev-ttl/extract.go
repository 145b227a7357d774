package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sweeney/nev-ttl/internal/ttl"
	"github.com/sweeney/nev-ttl/internal/web"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract <events-file>",
	Short: "Extract per-channel pulses from one event export",
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

		if extractJSON {
			os.Stdout.Write(web.FormatResult(web.NewView(source, res)))
			fmt.Println()
			return nil
		}

		printResult(source, res)
		return nil
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "print result as JSON")
	rootCmd.AddCommand(extractCmd)
}

func printResult(source string, res *ttl.Result) {
	fmt.Printf("%s: %d events, unit=%s, span=%g\n", source, len(res.Times), res.Unit, res.Span())

	active := res.ActiveChannels()
	if len(active) == 0 {
		fmt.Println("no pulses on any channel")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "channel\tpulses\tfirst\tlast")
	for _, ch := range active {
		pulses := res.Pulses[ch]
		fmt.Fprintf(w, "%d\t%d\t[%g, %g]\t[%g, %g]\n",
			ch, len(pulses),
			pulses[0].Start, pulses[0].End,
			pulses[len(pulses)-1].Start, pulses[len(pulses)-1].End)
	}
	w.Flush()
}
