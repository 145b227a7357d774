// Package mqtt publishes extracted pulse timing to an MQTT broker, with
// abstraction for testing. Downstream lab dashboards subscribe to the
// pulse topic to follow recordings as they are processed.
package mqtt

import "encoding/json"

// DefaultTopic is the MQTT topic for per-pulse messages.
const DefaultTopic = "neuro/nev/pulses"

// summarySuffix is appended to the pulse topic for the per-recording
// summary message.
const summarySuffix = "/summary"

// Publisher publishes pulse timing to MQTT.
type Publisher interface {
	// PublishPulse sends one pulse to the broker.
	PublishPulse(event PulseEvent) error

	// PublishSummary sends the per-recording summary after all pulses.
	PublishSummary(summary Summary) error

	// Close disconnects from the broker.
	Close() error
}

// PulseEvent is one high interval on one channel.
type PulseEvent struct {
	Source  string  `json:"source"`
	Channel int     `json:"channel"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Unit    string  `json:"unit"`
}

// Summary describes one fully published recording.
type Summary struct {
	Source string      `json:"source"`
	Events int         `json:"events"`
	Unit   string      `json:"unit"`
	Counts map[int]int `json:"pulse_counts"`
}

// pulsePayload is the JSON envelope for a pulse message.
type pulsePayload struct {
	Pulse PulseEvent `json:"pulse"`
}

// summaryPayload is the JSON envelope for a summary message.
type summaryPayload struct {
	Recording Summary `json:"recording"`
}

// FormatPulsePayload creates the JSON payload for a pulse message.
func FormatPulsePayload(event PulseEvent) ([]byte, error) {
	return json.Marshal(pulsePayload{Pulse: event})
}

// FormatSummaryPayload creates the JSON payload for a summary message.
func FormatSummaryPayload(summary Summary) ([]byte, error) {
	return json.Marshal(summaryPayload{Recording: summary})
}
