package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweeney/nev-ttl/internal/report"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <events-file>",
	Short: "Write an HTML pulse report",
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

		f, err := os.Create(reportOut)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()

		if err := report.Render(f, res, source); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", reportOut)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "report.html", "output HTML file")
	rootCmd.AddCommand(reportCmd)
}
