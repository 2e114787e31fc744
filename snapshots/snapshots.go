// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package snapshots

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/melodymei/agendasheet/models"
)

var (
	// ErrParse marks a stored payload that cannot be decoded into the
	// expected snapshot shape. Restores abort on it and leave the live
	// state untouched.
	ErrParse = errors.New("snapshot payload is malformed")

	// ErrNoSnapshot means nothing has been saved yet. Distinct from
	// ErrParse: there is nothing to restore, not broken data.
	ErrNoSnapshot = errors.New("no saved snapshot")
)

// Store persists whole-sheet snapshots. Every save appends a row; Load
// restores the newest one. All four state pieces travel together; there is
// no partial save or partial restore.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Saved describes one persisted snapshot.
type Saved struct {
	ID      string
	SavedAt time.Time
}

// envelope is the persisted blob: the sheet state with a schema-version
// tag. Blobs written before versioning carry no tag and decode as version
// zero, which is accepted as version 1 data.
type envelope struct {
	SchemaVersion int `json:"schemaVersion,omitempty"`
	models.SheetState
}

// Save serializes the state and appends a snapshot row.
func (s *Store) Save(state models.SheetState) (Saved, error) {
	payload, err := json.Marshal(envelope{
		SchemaVersion: models.SchemaVersion,
		SheetState:    state,
	})
	if err != nil {
		return Saved{}, fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	saved := Saved{
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(`
		INSERT INTO sheet_snapshot (id, schema_version, saved_at, payload)
		VALUES ($1, $2, $3, $4)
	`, saved.ID, models.SchemaVersion, saved.SavedAt, string(payload))
	if err != nil {
		return Saved{}, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return saved, nil
}

// Load decodes the newest snapshot. A malformed payload or a payload from a
// newer schema yields ErrParse; callers must not replace live state unless
// Load succeeds.
func (s *Store) Load() (models.SheetState, Saved, error) {
	var (
		saved   Saved
		version int
		payload string
	)
	err := s.db.QueryRow(`
		SELECT id, schema_version, saved_at, payload
		FROM sheet_snapshot
		ORDER BY saved_at DESC, id
		LIMIT 1
	`).Scan(&saved.ID, &version, &saved.SavedAt, &payload)

	if err == sql.ErrNoRows {
		return models.SheetState{}, Saved{}, ErrNoSnapshot
	}
	if err != nil {
		return models.SheetState{}, Saved{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return models.SheetState{}, Saved{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if env.SchemaVersion > models.SchemaVersion {
		return models.SheetState{}, Saved{}, fmt.Errorf("%w: schema version %d is newer than %d",
			ErrParse, env.SchemaVersion, models.SchemaVersion)
	}

	return env.SheetState, saved, nil
}

// List returns all snapshots, newest first, with humanized ages for display.
func (s *Store) List() ([]models.SnapshotInfo, error) {
	rows, err := s.db.Query(`
		SELECT id, schema_version, saved_at
		FROM sheet_snapshot
		ORDER BY saved_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	infos := []models.SnapshotInfo{}
	for rows.Next() {
		var info models.SnapshotInfo
		if err := rows.Scan(&info.ID, &info.SchemaVersion, &info.SavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		info.SavedAgo = humanize.Time(info.SavedAt)
		infos = append(infos, info)
	}

	return infos, rows.Err()
}
