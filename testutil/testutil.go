// Copyright (c) 2026 Melody Mei.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/melodymei/agendasheet/cliparse"
	"github.com/melodymei/agendasheet/db"
	"github.com/melodymei/agendasheet/models"
	"github.com/melodymei/agendasheet/sheet"
	"github.com/melodymei/agendasheet/template"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// An in-memory sqlite database exists per connection
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8323,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// NewTestStore returns a sheet store seeded with the built-in template
func NewTestStore(t *testing.T) *sheet.Store {
	t.Helper()
	return sheet.NewStore(template.Default())
}

// InsertTestSnapshot writes a snapshot row directly and returns its ID
func InsertTestSnapshot(t *testing.T, conn *sql.DB, state models.SheetState, savedAt time.Time) string {
	t.Helper()

	payload, err := json.Marshal(struct {
		SchemaVersion int `json:"schemaVersion"`
		models.SheetState
	}{models.SchemaVersion, state})
	if err != nil {
		t.Fatalf("Failed to marshal test snapshot: %v", err)
	}

	id := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO sheet_snapshot (id, schema_version, saved_at, payload)
		VALUES ($1, $2, $3, $4)
	`, id, models.SchemaVersion, savedAt.UTC(), string(payload))
	if err != nil {
		t.Fatalf("Failed to insert test snapshot: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
