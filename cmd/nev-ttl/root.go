package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweeney/nev-ttl/internal/config"
	"github.com/sweeney/nev-ttl/internal/nev"
	"github.com/sweeney/nev-ttl/internal/ttl"
)

var (
	cfgPath  string
	unitFlag string
	noPulses bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nev-ttl",
	Short: "Derive per-channel TTL pulse timing from Neuralynx event exports",
	Long: `nev-ttl loads the event export materialized by an external .nev ` +
		`decoder, expands the 16-bit TTL bitfield into per-channel states, and ` +
		`extracts the high intervals (pulses) of every channel.`,
	SilenceUsage: true,
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to TOML config file")
	rootCmd.PersistentFlags().StringVar(&unitFlag, "unit", "", `time unit for output timestamps ("seconds" or "microseconds"; overrides config)`)
	rootCmd.PersistentFlags().BoolVar(&noPulses, "no-pulses", false, "skip pulse extraction")
}

// setup loads the config file and applies flag overrides.
func setup() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if unitFlag != "" {
		cfg.Load.TimeUnit = unitFlag
	}
	if noPulses {
		cfg.Load.FindPulses = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadRecording decodes one event export and runs the core on it.
func loadRecording(cfg *config.Config, arg string) (string, *ttl.Result, error) {
	source := cfg.ResolveSource(arg)
	ev, err := nev.NewFileDecoder(source).Decode()
	if err != nil {
		return source, nil, err
	}
	res, err := ttl.Process(ev.Timestamps, ev.Codes, ev.Header, cfg.Options())
	if err != nil {
		return source, nil, fmt.Errorf("process %s: %w", source, err)
	}
	return source, res, nil
}
