// Package sqlite persists accepted track layouts so repeated generation
// runs accumulate a catalogue instead of rediscovering the same shapes.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slotworks/trackgen/internal/layout"
)

// LayoutRecord is one persisted track layout row.
type LayoutRecord struct {
	LayoutID         string  `json:"layout_id"`
	Signature        string  `json:"signature"`
	Sequence         string  `json:"sequence"`
	TurnSections     int     `json:"turn_sections"`
	StraightSections int     `json:"straight_sections"`
	LeftTurns        int     `json:"left_turns"`
	LengthMeters     float64 `json:"length_meters"`
	CreatedAt        int64   `json:"created_at"`
}

// LayoutStore provides persistence for track layouts.
type LayoutStore struct {
	db *sql.DB
}

// NewLayoutStore creates a LayoutStore on an already migrated database.
func NewLayoutStore(db *sql.DB) *LayoutStore {
	return &LayoutStore{db: db}
}

// Open opens (creating if needed) a layout database at path, applies the
// connection pragmas and runs pending migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	if err := MigrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InsertIfNew persists a layout unless its signature is already stored. It
// reports whether a row was written. An empty LayoutID gets a fresh UUID.
func (s *LayoutStore) InsertIfNew(rec *LayoutRecord) (bool, error) {
	if rec.LayoutID == "" {
		rec.LayoutID = uuid.New().String()
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().UnixNano()
	}

	var inserted bool
	err := retryOnBusy(func() error {
		res, err := s.db.Exec(`
			INSERT INTO track_layouts (
				layout_id, signature, sequence,
				turn_sections, straight_sections, left_turns,
				length_meters, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(signature) DO NOTHING`,
			rec.LayoutID, rec.Signature, rec.Sequence,
			rec.TurnSections, rec.StraightSections, rec.LeftTurns,
			rec.LengthMeters, rec.CreatedAt,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		inserted = n > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("inserting layout %s: %w", rec.Signature, err)
	}
	return inserted, nil
}

// SaveTrackSet persists every track in the set and returns how many were new.
func (s *LayoutStore) SaveTrackSet(ts *layout.TrackSet) (int, error) {
	saved := 0
	for _, track := range ts.Tracks() {
		straights, lefts, rights := track.Sequence.Counts()
		rec := &LayoutRecord{
			LayoutID:         track.ID,
			Signature:        track.Signature,
			Sequence:         track.Sequence.String(),
			TurnSections:     lefts + rights,
			StraightSections: straights,
			LeftTurns:        lefts,
			LengthMeters:     track.Length,
		}
		inserted, err := s.InsertIfNew(rec)
		if err != nil {
			return saved, err
		}
		if inserted {
			saved++
		}
	}
	return saved, nil
}

// Get returns a layout by ID, or nil when absent.
func (s *LayoutStore) Get(layoutID string) (*LayoutRecord, error) {
	row := s.db.QueryRow(`
		SELECT layout_id, signature, sequence,
		       turn_sections, straight_sections, left_turns,
		       length_meters, created_at
		FROM track_layouts
		WHERE layout_id = ?`, layoutID)

	var rec LayoutRecord
	err := row.Scan(
		&rec.LayoutID, &rec.Signature, &rec.Sequence,
		&rec.TurnSections, &rec.StraightSections, &rec.LeftTurns,
		&rec.LengthMeters, &rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get layout %s: %w", layoutID, err)
	}
	return &rec, nil
}

// List returns all stored layouts, newest first.
func (s *LayoutStore) List() ([]*LayoutRecord, error) {
	rows, err := s.db.Query(`
		SELECT layout_id, signature, sequence,
		       turn_sections, straight_sections, left_turns,
		       length_meters, created_at
		FROM track_layouts
		ORDER BY created_at DESC, layout_id`)
	if err != nil {
		return nil, fmt.Errorf("query layouts: %w", err)
	}
	defer rows.Close()

	var recs []*LayoutRecord
	for rows.Next() {
		var rec LayoutRecord
		if err := rows.Scan(
			&rec.LayoutID, &rec.Signature, &rec.Sequence,
			&rec.TurnSections, &rec.StraightSections, &rec.LeftTurns,
			&rec.LengthMeters, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan layout: %w", err)
		}
		recs = append(recs, &rec)
	}
	return recs, rows.Err()
}

// Delete removes a layout by ID and reports whether a row was removed.
func (s *LayoutStore) Delete(layoutID string) (bool, error) {
	var deleted bool
	err := retryOnBusy(func() error {
		res, err := s.db.Exec(`DELETE FROM track_layouts WHERE layout_id = ?`, layoutID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete layout %s: %w", layoutID, err)
	}
	return deleted, nil
}

// Count returns the number of stored layouts.
func (s *LayoutStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM track_layouts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count layouts: %w", err)
	}
	return n, nil
}

// retryOnBusy retries a write a few times when SQLite reports a locked
// database. WAL plus busy_timeout handles almost everything; this covers the
// rare lock at the driver boundary.
func retryOnBusy(fn func() error) error {
	const attempts = 5
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !isBusy(err) {
			return err
		}
		time.Sleep(time.Duration(i+1) * 10 * time.Millisecond)
	}
	return err
}

func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
