package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sweeney/nev-ttl/internal/store"
)

var (
	storeDB   string
	storeList bool
)

var storeCmd = &cobra.Command{
	Use:   "store [events-file]",
	Short: "Save extracted pulses to the pulse database, or list stored recordings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		dbPath := cfg.Store.Path
		if storeDB != "" {
			dbPath = storeDB
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		if storeList {
			recs, err := s.Recordings()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "id\tsource\tevents\tunit\tloaded at")
			for _, r := range recs {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
					r.ID, r.Source, r.Events, r.Unit, r.LoadedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		}

		if len(args) != 1 {
			return fmt.Errorf("an events file is required unless --list is given")
		}
		source, res, err := loadRecording(cfg, args[0])
		if err != nil {
			return err
		}

		id, err := s.SaveRecording(source, res)
		if err != nil {
			return err
		}
		fmt.Printf("saved %s as recording %d\n", source, id)
		return nil
	},
}

func init() {
	storeCmd.Flags().StringVar(&storeDB, "db", "", "pulse database path (overrides config)")
	storeCmd.Flags().BoolVar(&storeList, "list", false, "list stored recordings instead of saving")
	rootCmd.AddCommand(storeCmd)
}
