package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeney/nev-ttl/internal/ttl"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "pulses.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func testResult() *ttl.Result {
	res := &ttl.Result{
		Times: []float64{0, 1, 2.5, 4},
		Unit:  ttl.UnitSeconds,
	}
	res.Pulses[5] = []ttl.Pulse{{Start: 1, End: 2.5}, {Start: 3, End: 4}}
	res.Pulses[15] = []ttl.Pulse{{Start: 0, End: 1}}
	return res
}

func TestSaveAndQuery(t *testing.T) {
	s := openTestStore(t)

	id, err := s.SaveRecording("session1/Events.csv", testResult())
	require.NoError(t, err)
	require.NotZero(t, id)

	recs, err := s.Recordings()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, id, recs[0].ID)
	assert.Equal(t, "session1/Events.csv", recs[0].Source)
	assert.Equal(t, ttl.UnitSeconds, recs[0].Unit)
	assert.Equal(t, 4, recs[0].Events)

	pulses, err := s.Pulses(id, 5)
	require.NoError(t, err)
	require.Len(t, pulses, 2)
	assert.InDelta(t, 1.0, pulses[0].Start, 1e-9)
	assert.InDelta(t, 2.5, pulses[0].End, 1e-9)
	assert.InDelta(t, 3.0, pulses[1].Start, 1e-9)

	empty, err := s.Pulses(id, 7)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPulseCounts(t *testing.T) {
	s := openTestStore(t)

	id, err := s.SaveRecording("Events.csv", testResult())
	require.NoError(t, err)

	counts, err := s.PulseCounts(id)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{5: 2, 15: 1}, counts)
}

func TestMultipleRecordingsNewestFirst(t *testing.T) {
	s := openTestStore(t)

	first, err := s.SaveRecording("a.csv", testResult())
	require.NoError(t, err)
	second, err := s.SaveRecording("b.csv", testResult())
	require.NoError(t, err)

	recs, err := s.Recordings()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, second, recs[0].ID)
	assert.Equal(t, first, recs[1].ID)

	// Pulses stay scoped to their own recording.
	pulses, err := s.Pulses(second, 15)
	require.NoError(t, err)
	assert.Len(t, pulses, 1)
}

func TestSaveEmptyResult(t *testing.T) {
	s := openTestStore(t)

	id, err := s.SaveRecording("empty.csv", &ttl.Result{Unit: ttl.UnitSeconds})
	require.NoError(t, err)

	counts, err := s.PulseCounts(id)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
