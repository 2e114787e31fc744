// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package snapshots_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/melodymei/agendasheet/models"
	"github.com/melodymei/agendasheet/snapshots"
	"github.com/melodymei/agendasheet/template"
	"github.com/melodymei/agendasheet/testutil"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := snapshots.NewStore(conn)

	state := template.Default()
	state.Details.Theme = "Resilience"
	state.AgendaItems[0].Name = "Melody"
	state.Officers[0].Name = "Iris"
	state.Date.SelectedDay = "14"

	saved, err := store.Save(state)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected a snapshot ID")
	}

	loaded, loadedFrom, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loadedFrom.ID != saved.ID {
		t.Errorf("expected to load snapshot %s, got %s", saved.ID, loadedFrom.ID)
	}
	if !reflect.DeepEqual(loaded, state) {
		t.Error("loaded state differs from saved state")
	}
}

func TestLoadPicksNewest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := snapshots.NewStore(conn)

	old := template.Default()
	old.Details.Theme = "Old Theme"
	testutil.InsertTestSnapshot(t, conn, old, time.Now().Add(-time.Hour))

	newer := template.Default()
	newer.Details.Theme = "New Theme"
	testutil.InsertTestSnapshot(t, conn, newer, time.Now())

	loaded, _, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Details.Theme != "New Theme" {
		t.Errorf("expected newest snapshot, got theme %q", loaded.Details.Theme)
	}
}

func TestLoadEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := snapshots.NewStore(conn)

	_, _, err := store.Load()
	if !errors.Is(err, snapshots.ErrNoSnapshot) {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestLoadMalformedPayload(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := snapshots.NewStore(conn)

	_, err := conn.Exec(`
		INSERT INTO sheet_snapshot (id, schema_version, saved_at, payload)
		VALUES ($1, $2, $3, $4)
	`, "broken", models.SchemaVersion, time.Now().UTC(), "{not json")
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = store.Load()
	if !errors.Is(err, snapshots.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestLoadVersionlessPayload(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := snapshots.NewStore(conn)

	// Blobs written before versioning carry no schemaVersion tag
	payload := `{"details":{"clubName":"Legacy Club","number":1,"theme":"","quote":"","date":"","time":"19:00","venue":"","address":"","wordOfTheDay":"","wordDefinition":"","etiquette":[]},"agendaItems":[],"officers":[],"date":{"selectedWeekday":"Sunday","selectedMonth":"January","selectedDay":"4"}}`
	_, err := conn.Exec(`
		INSERT INTO sheet_snapshot (id, schema_version, saved_at, payload)
		VALUES ($1, $2, $3, $4)
	`, "legacy", 0, time.Now().UTC(), payload)
	if err != nil {
		t.Fatal(err)
	}

	loaded, _, err := store.Load()
	if err != nil {
		t.Fatalf("expected versionless payload to load, got %v", err)
	}
	if loaded.Details.ClubName != "Legacy Club" {
		t.Errorf("expected Legacy Club, got %q", loaded.Details.ClubName)
	}
}

func TestLoadFutureVersionRejected(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := snapshots.NewStore(conn)

	payload := `{"schemaVersion":99,"details":{},"agendaItems":[],"officers":[],"date":{}}`
	_, err := conn.Exec(`
		INSERT INTO sheet_snapshot (id, schema_version, saved_at, payload)
		VALUES ($1, $2, $3, $4)
	`, "future", 99, time.Now().UTC(), payload)
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = store.Load()
	if !errors.Is(err, snapshots.ErrParse) {
		t.Errorf("expected ErrParse for a newer schema, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := snapshots.NewStore(conn)

	state := template.Default()
	oldID := testutil.InsertTestSnapshot(t, conn, state, time.Now().Add(-48*time.Hour))
	newID := testutil.InsertTestSnapshot(t, conn, state, time.Now())

	infos, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(infos))
	}
	if infos[0].ID != newID || infos[1].ID != oldID {
		t.Errorf("expected newest first, got %s then %s", infos[0].ID, infos[1].ID)
	}
	if infos[0].SavedAgo == "" {
		t.Error("expected a humanized age")
	}
}

func TestListEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := snapshots.NewStore(conn)

	infos, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != 0 {
		t.Errorf("expected empty list, got %d", len(infos))
	}
}
