package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fabriciobonjorno/ParkingControl/internal/repo/sqlite"
)

// NewSQLiteStore opens a migrated SQLite store in a per-test temporary
// directory. Unlike NewPool it never skips: SQLite needs no external service,
// so tests that exercise real transactions can always run.
func NewSQLiteStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "parking.db"))
	if err != nil {
		t.Fatalf("testutil.NewSQLiteStore: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}
