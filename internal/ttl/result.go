package ttl

import "fmt"

// Process runs one full load: validate, expand the bitfield codes into
// channel states, extract per-channel pulses, and assemble the scaled
// Result. Timestamps are native microsecond ticks, non-decreasing.
//
// An empty stream (m = 0) is a valid degenerate input and produces an
// empty Result without error. All validation happens before the
// per-channel loop; there are no partial results.
func Process(ts []int64, codes []int32, header string, opts Options) (*Result, error) {
	scale, err := unitScale(opts.Unit)
	if err != nil {
		return nil, err
	}
	if len(ts) != len(codes) {
		return nil, fmt.Errorf("%d timestamps, %d codes: %w", len(ts), len(codes), ErrLengthMismatch)
	}

	states, err := ExpandStates(codes)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Times:  make([]float64, len(ts)),
		States: states,
		Unit:   opts.Unit,
		Header: header,
	}
	for i, t := range ts {
		res.Times[i] = float64(t) / scale
	}

	if opts.FindPulses {
		raw := ExtractPulses(states, ts)
		for ch := range raw {
			if len(raw[ch]) == 0 {
				continue
			}
			res.Pulses[ch] = make([]Pulse, len(raw[ch]))
			for j, p := range raw[ch] {
				res.Pulses[ch][j] = Pulse{
					Start: float64(p[0]) / scale,
					End:   float64(p[1]) / scale,
				}
			}
		}
	}

	return res, nil
}

// unitScale returns the divisor applied to native ticks for the requested
// unit. The core always computes intervals in raw ticks; scaling is a
// single presentational pass at assembly time.
func unitScale(u TimeUnit) (float64, error) {
	switch u {
	case UnitSeconds:
		return ticksPerSecond, nil
	case UnitMicroseconds:
		return 1, nil
	default:
		return 0, fmt.Errorf("%q: %w", u, ErrBadTimeUnit)
	}
}

// Span returns the total duration of the recording in the Result's unit,
// or 0 for fewer than two events.
func (r *Result) Span() float64 {
	if len(r.Times) < 2 {
		return 0
	}
	return r.Times[len(r.Times)-1] - r.Times[0]
}

// ActiveChannels lists the channels that have at least one pulse.
func (r *Result) ActiveChannels() []int {
	var active []int
	for ch := range r.Pulses {
		if len(r.Pulses[ch]) > 0 {
			active = append(active, ch)
		}
	}
	return active
}
