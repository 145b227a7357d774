package ttl

// Events mark transitions, not durations: the state recorded at event i
// holds from ts[i] until ts[i+1]. The final event has no successor, so its
// own timestamp is repeated as its end time, giving a zero-length trailing
// segment. segmentEnds builds the per-event end-of-validity array.
func segmentEnds(ts []int64) []int64 {
	if len(ts) == 0 {
		return nil
	}
	ends := make([]int64, len(ts))
	copy(ends, ts[1:])
	ends[len(ts)-1] = ts[len(ts)-1]
	return ends
}

// CollapseRuns merges maximal runs of consecutive integers in the sorted
// index list into (start, end) pairs looked up through two parallel value
// arrays: each run [first..last] yields {starts[first], ends[last]}.
//
// Consecutiveness is purely index-based: indices i and j extend the same
// run only when j == i+1. Two high events separated by an intervening low
// event therefore always start a new run, regardless of time proximity.
func CollapseRuns(indices []int, starts, ends []int64) [][2]int64 {
	if len(indices) == 0 {
		return nil
	}

	var runs [][2]int64
	first := indices[0]
	prev := indices[0]
	for _, idx := range indices[1:] {
		if idx == prev+1 {
			prev = idx
			continue
		}
		runs = append(runs, [2]int64{starts[first], ends[prev]})
		first = idx
		prev = idx
	}
	runs = append(runs, [2]int64{starts[first], ends[prev]})
	return runs
}

// ExtractPulses derives, for each channel, the maximal contiguous high
// intervals from the state matrix and event timestamps. Intervals are in
// native ticks and ordered by time. len(states) must equal len(ts).
func ExtractPulses(states []StateVector, ts []int64) [NumChannels][][2]int64 {
	var pulses [NumChannels][][2]int64
	if len(states) == 0 {
		return pulses
	}

	ends := segmentEnds(ts)

	for ch := 0; ch < NumChannels; ch++ {
		// Most channels in a typical recording are unused; skip the
		// index collection for those.
		active := false
		for i := range states {
			if states[i][ch] {
				active = true
				break
			}
		}
		if !active {
			continue
		}

		var high []int
		for i := range states {
			if states[i][ch] {
				high = append(high, i)
			}
		}
		pulses[ch] = CollapseRuns(high, ts, ends)
	}
	return pulses
}
