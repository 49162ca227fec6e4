// Package testutil holds the database fixtures shared by the repo, service
// and migration tests. Postgres fixtures read TEST_DATABASE_URL and skip the
// calling test when it is unset; SQLite fixtures always run.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // "pgx" driver for goose

	"github.com/fabriciobonjorno/ParkingControl/internal/repo"
)

// DSNEnv names the variable that points the Postgres fixtures at a database.
const DSNEnv = "TEST_DATABASE_URL"

// NewPool connects to the Postgres test database. The pool is closed on
// cleanup.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, postgresDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewTxStore returns a ParkingStore bound to one open transaction that is
// rolled back on cleanup, so each test sees an empty parkings table. Nested
// WithinTx calls become savepoints of that transaction.
func NewTxStore(t *testing.T) repo.ParkingStore {
	t.Helper()

	tx, err := NewPool(t).Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTxStore: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	return repo.NewParkingStore(tx)
}

// NewPoolStore returns a ParkingStore on the shared pool, for tests that need
// real concurrent transactions. Sessions for the given plates are deleted on
// cleanup.
func NewPoolStore(t *testing.T, plates ...string) repo.ParkingStore {
	t.Helper()

	pool := NewPool(t)
	t.Cleanup(func() {
		for _, plate := range plates {
			_, _ = pool.Exec(context.Background(), `DELETE FROM parkings WHERE plate = $1`, plate)
		}
	})

	return repo.NewParkingStore(pool)
}

// NewSQLDB is the database/sql counterpart of NewPool, for goose.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := openSQL(postgresDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MustOpenSQLDB is NewSQLDB for TestMain, where there is no *testing.T.
// The caller closes the returned handle.
func MustOpenSQLDB(dsn string) *sql.DB {
	db, err := openSQL(dsn)
	if err != nil {
		panic("testutil.MustOpenSQLDB: " + err.Error())
	}
	return db
}

func openSQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

func postgresDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s not set; skipping Postgres test", DSNEnv)
	}
	return dsn
}
