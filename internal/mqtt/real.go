package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

// RealPublisher publishes to an actual MQTT broker.
type RealPublisher struct {
	client paho.Client
	topic  string
}

// NewRealPublisher creates a publisher connected to the given broker.
// An empty topic uses DefaultTopic.
func NewRealPublisher(broker, topic string) (*RealPublisher, error) {
	if topic == "" {
		topic = DefaultTopic
	}

	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("nev-ttl").
		SetConnectRetry(false)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return &RealPublisher{
		client: client,
		topic:  topic,
	}, nil
}

// PublishPulse sends one pulse to the broker.
func (p *RealPublisher) PublishPulse(event PulseEvent) error {
	payload, err := FormatPulsePayload(event)
	if err != nil {
		return fmt.Errorf("format pulse payload: %w", err)
	}

	// QoS 0 (at-most-once), not retained
	token := p.client.Publish(p.topic, 0, false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

// PublishSummary sends the per-recording summary to the broker.
func (p *RealPublisher) PublishSummary(summary Summary) error {
	payload, err := FormatSummaryPayload(summary)
	if err != nil {
		return fmt.Errorf("format summary payload: %w", err)
	}

	// QoS 1 (at-least-once), retained so late subscribers see the last
	// processed recording.
	token := p.client.Publish(p.topic+summarySuffix, 1, true, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish summary timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish summary: %w", err)
	}

	return nil
}

// Close disconnects from the broker.
func (p *RealPublisher) Close() error {
	p.client.Disconnect(1000) // 1 second timeout
	return nil
}
