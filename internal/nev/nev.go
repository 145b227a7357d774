// Package nev provides access to decoded Neuralynx event streams with an
// abstraction over the decoding collaborator. The real implementation
// reads the materialized export written by the external .nev decoder; the
// fake implementation allows testing without any file on disk. Parsing of
// the raw binary .nev container itself is out of scope.
package nev

// Events holds one decoded event stream: three parallel arrays plus the
// raw file header blob. Timestamps are native microsecond ticks,
// non-decreasing. Codes may arrive sign-extended for the single value
// 32768; the core owns that correction.
type Events struct {
	Timestamps []int64
	Codes      []int32
	Strings    []string // per-event label text, passed through unread
	Header     string   // raw header block, passed through unmodified
}

// Len returns the number of events in the stream.
func (e *Events) Len() int {
	return len(e.Timestamps)
}

// Decoder yields one decoded event stream.
type Decoder interface {
	// Decode returns the full event stream. It is called once per load.
	Decode() (*Events, error)
}
