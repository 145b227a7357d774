package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeney/nev-ttl/internal/ttl"
)

func TestSummarize(t *testing.T) {
	res := &ttl.Result{
		Times: []float64{0, 10},
		Unit:  ttl.UnitSeconds,
	}
	res.Pulses[3] = []ttl.Pulse{
		{Start: 0, End: 2},
		{Start: 4, End: 8},
	}
	res.Pulses[9] = []ttl.Pulse{
		{Start: 1, End: 1.5},
	}

	summary := Summarize(res)
	require.Len(t, summary, 2)

	ch3 := summary[0]
	assert.Equal(t, 3, ch3.Channel)
	assert.Equal(t, 2, ch3.Count)
	assert.InDelta(t, 6.0, ch3.TotalHigh, 1e-9)
	assert.InDelta(t, 3.0, ch3.MeanWidth, 1e-9)
	assert.InDelta(t, 2.0, ch3.MinWidth, 1e-9)
	assert.InDelta(t, 4.0, ch3.MaxWidth, 1e-9)
	// Sample standard deviation of {2, 4}.
	assert.InDelta(t, 1.4142, ch3.StdDevWidth, 1e-3)
	assert.InDelta(t, 0.6, ch3.DutyCycle, 1e-9)

	ch9 := summary[1]
	assert.Equal(t, 9, ch9.Channel)
	assert.Equal(t, 1, ch9.Count)
	// A single pulse has no spread.
	assert.Zero(t, ch9.StdDevWidth)
	assert.InDelta(t, 0.05, ch9.DutyCycle, 1e-9)
}

func TestSummarizeEmptyResult(t *testing.T) {
	summary := Summarize(&ttl.Result{Unit: ttl.UnitSeconds})
	assert.Empty(t, summary)
}

func TestSummarizeZeroSpan(t *testing.T) {
	res := &ttl.Result{
		Times: []float64{5},
		Unit:  ttl.UnitMicroseconds,
	}
	res.Pulses[0] = []ttl.Pulse{{Start: 5, End: 5}}

	summary := Summarize(res)
	require.Len(t, summary, 1)
	assert.Zero(t, summary[0].DutyCycle)
	assert.Zero(t, summary[0].TotalHigh)
}
