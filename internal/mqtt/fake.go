package mqtt

// FakePublisher is a test double that records published messages.
type FakePublisher struct {
	// Pulses contains all pulse events published so far.
	Pulses []PulseEvent

	// Summaries contains all summaries published so far.
	Summaries []Summary

	// Closed tracks if Close was called.
	Closed bool

	// PublishError, if set, is returned by both publish methods.
	PublishError error
}

// NewFakePublisher creates an empty FakePublisher.
func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

// PublishPulse records the pulse event.
func (f *FakePublisher) PublishPulse(event PulseEvent) error {
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Pulses = append(f.Pulses, event)
	return nil
}

// PublishSummary records the summary.
func (f *FakePublisher) PublishSummary(summary Summary) error {
	if f.PublishError != nil {
		return f.PublishError
	}
	f.Summaries = append(f.Summaries, summary)
	return nil
}

// Close marks the publisher as closed.
func (f *FakePublisher) Close() error {
	f.Closed = true
	return nil
}
