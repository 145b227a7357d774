// Package ttl contains pure logic for deriving per-channel digital pulse
// timing from a Neuralynx TTL event stream. This package has NO external
// dependencies (no file I/O, database, or clock). All inputs arrive as
// plain slices from the decoder adapter.
package ttl

import "errors"

// NumChannels is the number of digital input lines multiplexed into one
// TTL bitfield.
const NumChannels = 16

// TimeUnit selects the unit of all timestamps in a Result.
type TimeUnit string

const (
	UnitSeconds      TimeUnit = "seconds"
	UnitMicroseconds TimeUnit = "microseconds"
)

// ticksPerSecond converts native event timestamps (microsecond ticks)
// to seconds.
const ticksPerSecond = 1e6

// Sentinel errors for input contract violations. All are detected before
// any per-channel work runs; a load either fully succeeds or fails.
var (
	// ErrCodeOutOfRange reports a TTL code outside the unsigned 16-bit
	// range after the -32768 sign-extension correction.
	ErrCodeOutOfRange = errors.New("ttl code outside unsigned 16-bit range")

	// ErrBadTimeUnit reports a requested unit outside {seconds, microseconds}.
	ErrBadTimeUnit = errors.New("unrecognized time unit")

	// ErrLengthMismatch reports timestamp and code arrays of different length.
	ErrLengthMismatch = errors.New("timestamp and ttl code arrays differ in length")
)

// StateVector holds the state of all 16 channels immediately after one
// event. Index 0 is the least significant bit of the TTL code.
type StateVector [NumChannels]bool

// Pulse is one maximal contiguous interval during which a channel was
// continuously high. Start and End are in the Result's time unit.
type Pulse struct {
	Start float64
	End   float64
}

// Options controls a single load operation.
type Options struct {
	// Unit is the time unit applied to all output timestamps.
	Unit TimeUnit

	// FindPulses enables per-channel pulse extraction. When false the
	// Pulses field of the Result stays empty for every channel.
	FindPulses bool
}

// DefaultOptions returns the default load configuration: times in
// seconds, pulse extraction enabled.
func DefaultOptions() Options {
	return Options{Unit: UnitSeconds, FindPulses: true}
}

// Result is the single entity exposed across the core boundary. It is
// created once per load and not mutated afterwards.
type Result struct {
	// Times holds one timestamp per event, scaled to Unit.
	Times []float64

	// States holds one channel state vector per event.
	States []StateVector

	// Pulses holds the ordered high intervals for each channel. A channel
	// that was never high has an empty list.
	Pulses [NumChannels][]Pulse

	// Unit is the time unit of Times and Pulses.
	Unit TimeUnit

	// Header is the raw event file header text, passed through unmodified.
	Header string
}
