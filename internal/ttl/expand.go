package ttl

import "fmt"

// signExtended32768 is the value the upstream decoder reports when only
// bit 15 is set: the unsigned 16-bit value 32768 arrives sign-extended
// as a signed 16-bit integer. No other negative code is ever produced by
// that quirk.
const signExtended32768 = -32768

// ExpandStates converts the per-event TTL bitfield codes into a per-event
// channel state matrix. Bit c of code i (least significant bit first)
// becomes state[i][c].
//
// A code equal to -32768 is remapped to +32768 before bit extraction.
// Any other code outside [0, 65535] returns ErrCodeOutOfRange; the whole
// array is validated before any state is produced.
func ExpandStates(codes []int32) ([]StateVector, error) {
	for i, c := range codes {
		if c == signExtended32768 {
			continue
		}
		if c < 0 || c > 0xFFFF {
			return nil, fmt.Errorf("event %d: ttl code %d: %w", i, c, ErrCodeOutOfRange)
		}
	}

	states := make([]StateVector, len(codes))
	for i, c := range codes {
		bits := uint16(c)
		if c == signExtended32768 {
			bits = 0x8000
		}
		for ch := 0; ch < NumChannels; ch++ {
			states[i][ch] = (bits>>ch)&1 != 0
		}
	}
	return states, nil
}
