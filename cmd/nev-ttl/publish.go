package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sweeney/nev-ttl/internal/mqtt"
	"github.com/sweeney/nev-ttl/internal/ttl"
)

var (
	publishBroker string
	publishTopic  string
)

var publishCmd = &cobra.Command{
	Use:   "publish <events-file>",
	Short: "Publish extracted pulses to an MQTT broker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		broker := cfg.Publish.Broker
		if publishBroker != "" {
			broker = publishBroker
		}
		topic := cfg.Publish.Topic
		if publishTopic != "" {
			topic = publishTopic
		}

		source, res, err := loadRecording(cfg, args[0])
		if err != nil {
			return err
		}

		publisher, err := mqtt.NewRealPublisher(broker, topic)
		if err != nil {
			return err
		}
		defer publisher.Close()

		n, err := publishResult(publisher, source, res)
		if err != nil {
			return err
		}
		log.Printf("published %d pulses from %s to %s", n, source, broker)
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishBroker, "broker", "", "MQTT broker address (overrides config)")
	publishCmd.Flags().StringVar(&publishTopic, "topic", "", "MQTT topic (overrides config)")
	rootCmd.AddCommand(publishCmd)
}

// publishResult sends every pulse of every channel, then the recording
// summary. Returns the number of pulses published.
func publishResult(publisher mqtt.Publisher, source string, res *ttl.Result) (int, error) {
	counts := make(map[int]int)
	n := 0
	for ch, pulses := range res.Pulses {
		for _, p := range pulses {
			event := mqtt.PulseEvent{
				Source:  source,
				Channel: ch,
				Start:   p.Start,
				End:     p.End,
				Unit:    string(res.Unit),
			}
			if err := publisher.PublishPulse(event); err != nil {
				return n, fmt.Errorf("publish pulse (channel %d): %w", ch, err)
			}
			n++
		}
		if len(pulses) > 0 {
			counts[ch] = len(pulses)
		}
	}

	summary := mqtt.Summary{
		Source: source,
		Events: len(res.Times),
		Unit:   string(res.Unit),
		Counts: counts,
	}
	if err := publisher.PublishSummary(summary); err != nil {
		return n, fmt.Errorf("publish summary: %w", err)
	}
	return n, nil
}
