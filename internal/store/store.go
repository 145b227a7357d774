// Package store persists extracted pulse timing to SQLite so recordings
// can be queried after the source exports are archived.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sweeney/nev-ttl/internal/ttl"
)

const schema = `
	CREATE TABLE IF NOT EXISTS recordings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT NOT NULL,
		time_unit TEXT NOT NULL,
		events INTEGER NOT NULL,
		loaded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS pulses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recording_id INTEGER NOT NULL,
		channel INTEGER NOT NULL,
		start_time DOUBLE NOT NULL,
		end_time DOUBLE NOT NULL,
		FOREIGN KEY(recording_id) REFERENCES recordings(id)
	);
	CREATE INDEX IF NOT EXISTS idx_pulses_recording_channel
		ON pulses(recording_id, channel);
`

// Store wraps the SQLite database holding recordings and pulses.
type Store struct {
	db *sql.DB
}

// Recording is one persisted load.
type Recording struct {
	ID       int64
	Source   string
	Unit     ttl.TimeUnit
	Events   int
	LoadedAt time.Time
}

// Open opens (creating if needed) the pulse database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open pulse db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRecording persists one load result and all its pulses in a single
// transaction, returning the new recording id.
func (s *Store) SaveRecording(source string, res *ttl.Result) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	r, err := tx.Exec(
		"INSERT INTO recordings (source, time_unit, events) VALUES (?, ?, ?)",
		source, string(res.Unit), len(res.Times),
	)
	if err != nil {
		return 0, fmt.Errorf("insert recording: %w", err)
	}
	id, err := r.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("recording id: %w", err)
	}

	ins, err := tx.Prepare(
		"INSERT INTO pulses (recording_id, channel, start_time, end_time) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare pulse insert: %w", err)
	}
	defer ins.Close()

	for ch, pulses := range res.Pulses {
		for _, p := range pulses {
			if _, err := ins.Exec(id, ch, p.Start, p.End); err != nil {
				return 0, fmt.Errorf("insert pulse (channel %d): %w", ch, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Recordings lists all persisted recordings, newest first.
func (s *Store) Recordings() ([]Recording, error) {
	rows, err := s.db.Query(
		"SELECT id, source, time_unit, events, loaded_at FROM recordings ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	var out []Recording
	for rows.Next() {
		var r Recording
		var unit string
		if err := rows.Scan(&r.ID, &r.Source, &unit, &r.Events, &r.LoadedAt); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		r.Unit = ttl.TimeUnit(unit)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Pulses returns the ordered pulses of one channel in one recording.
func (s *Store) Pulses(recordingID int64, channel int) ([]ttl.Pulse, error) {
	rows, err := s.db.Query(
		"SELECT start_time, end_time FROM pulses WHERE recording_id = ? AND channel = ? ORDER BY start_time",
		recordingID, channel,
	)
	if err != nil {
		return nil, fmt.Errorf("query pulses: %w", err)
	}
	defer rows.Close()

	var out []ttl.Pulse
	for rows.Next() {
		var p ttl.Pulse
		if err := rows.Scan(&p.Start, &p.End); err != nil {
			return nil, fmt.Errorf("scan pulse: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PulseCounts returns the number of stored pulses per channel for one
// recording. Channels without pulses are absent from the map.
func (s *Store) PulseCounts(recordingID int64) (map[int]int, error) {
	rows, err := s.db.Query(
		"SELECT channel, COUNT(*) FROM pulses WHERE recording_id = ? GROUP BY channel",
		recordingID,
	)
	if err != nil {
		return nil, fmt.Errorf("query pulse counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var ch, n int
		if err := rows.Scan(&ch, &n); err != nil {
			return nil, fmt.Errorf("scan pulse count: %w", err)
		}
		counts[ch] = n
	}
	return counts, rows.Err()
}
