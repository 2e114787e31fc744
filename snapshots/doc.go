// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package snapshots persists whole-sheet snapshots to the database.

A snapshot is the complete editable state (meeting details, agenda rows,
officers, date selection) serialized as one JSON blob:

	{"schemaVersion": 1, "details": {...}, "agendaItems": [...], "officers": [...], "date": {...}}

# Save and Restore

	store := snapshots.NewStore(conn)
	saved, err := store.Save(state)       // appends a row
	state, saved, err := store.Load()     // newest row wins

Load returns ErrNoSnapshot when nothing was ever saved, and ErrParse when
the stored payload does not decode into the expected shape or claims a
newer schema version. In both cases the caller keeps its current in-memory
state untouched.

# Versioning

Payloads are tagged with schemaVersion 1. Untagged payloads from before
versioning decode as version zero and are accepted; payloads from a future
schema are rejected as ErrParse instead of being half-loaded.
*/
package snapshots
