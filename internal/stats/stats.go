// Package stats computes per-channel summary statistics over extracted
// pulse lists.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sweeney/nev-ttl/internal/ttl"
)

// ChannelStats summarizes the pulses of one channel. All durations are in
// the Result's time unit.
type ChannelStats struct {
	Channel     int
	Count       int
	TotalHigh   float64
	MeanWidth   float64
	StdDevWidth float64
	MinWidth    float64
	MaxWidth    float64

	// DutyCycle is TotalHigh over the recording span, 0 when the span
	// is zero.
	DutyCycle float64
}

// Summarize computes statistics for every channel that has at least one
// pulse. Channels without pulses are omitted. Results are ordered by
// channel number.
func Summarize(res *ttl.Result) []ChannelStats {
	span := res.Span()

	var out []ChannelStats
	for ch, pulses := range res.Pulses {
		if len(pulses) == 0 {
			continue
		}

		widths := make([]float64, len(pulses))
		for i, p := range pulses {
			widths[i] = p.End - p.Start
		}

		cs := ChannelStats{
			Channel:   ch,
			Count:     len(pulses),
			TotalHigh: floats.Sum(widths),
			MeanWidth: stat.Mean(widths, nil),
			MinWidth:  floats.Min(widths),
			MaxWidth:  floats.Max(widths),
		}
		if len(widths) > 1 {
			cs.StdDevWidth = stat.StdDev(widths, nil)
		}
		if span > 0 {
			cs.DutyCycle = cs.TotalHigh / span
		}
		out = append(out, cs)
	}
	return out
}
