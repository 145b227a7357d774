package nev

import "errors"

// FakeDecoder is a test double that returns a scripted event stream.
type FakeDecoder struct {
	// Events is the stream returned by Decode.
	Events *Events

	// Err, if set, is returned by Decode instead.
	Err error

	// Calls counts how many times Decode has been called.
	Calls int
}

// NewFakeDecoder creates a FakeDecoder returning the given stream.
func NewFakeDecoder(ev *Events) *FakeDecoder {
	return &FakeDecoder{Events: ev}
}

// Decode returns the scripted stream or error.
func (f *FakeDecoder) Decode() (*Events, error) {
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Events == nil {
		return nil, errors.New("no events configured")
	}
	return f.Events, nil
}
