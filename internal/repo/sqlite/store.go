// Package sqlite provides a SQLite-backed implementation of repo.ParkingStore
// for single-node deployments and local development.
//
// SQLite has no row locks. Instead the store keeps a single open connection,
// so a transaction owns the whole database until it ends; that gives Enter the
// per-plate exclusivity repo.ParkingRepo.FindActiveForUpdate promises.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver for database/sql

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
	"github.com/fabriciobonjorno/ParkingControl/internal/repo"
	sqlitemigrations "github.com/fabriciobonjorno/ParkingControl/migrations/sqlite"
)

// querier is the subset of *sql.DB and *sql.Tx the store needs.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store persists parking sessions in SQLite.
type Store struct {
	sqlDB *sql.DB
	q     querier
	inTx  bool
}

var _ repo.ParkingStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) the SQLite database at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite.Open: storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: open: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite.Open: ping: %w", err)
	}
	if err := Migrate(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	// One connection: every transaction is exclusive. Set after migrating so
	// goose is free to use its own connection handling.
	sqlDB.SetMaxOpenConns(1)

	return &Store{sqlDB: sqlDB, q: sqlDB}, nil
}

// Migrate applies all pending SQLite migrations to sqlDB.
func Migrate(ctx context.Context, sqlDB *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, sqlDB, sqlitemigrations.FS)
	if err != nil {
		return fmt.Errorf("sqlite.Migrate: create provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("sqlite.Migrate: up: %w", err)
	}
	return nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

const parkingColumns = `id, plate, started_at, paid_at, left_at, created_at, updated_at`

// Create inserts a new open session.
func (s *Store) Create(ctx context.Context, plate string, startedAt time.Time) (domain.ParkingSession, error) {
	now := toMillis(time.Now())
	row := s.q.QueryRowContext(ctx,
		`INSERT INTO parkings (id, plate, started_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING `+parkingColumns,
		uuid.NewString(), plate, toMillis(startedAt), now, now,
	)
	result, err := scanParking(row)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("sqlite.Store.Create: %w", err)
	}
	return result, nil
}

// FindActive returns the open session for plate.
func (s *Store) FindActive(ctx context.Context, plate string) (domain.ParkingSession, error) {
	result, err := s.findActive(ctx, plate)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("sqlite.Store.FindActive: %w", err)
	}
	return result, nil
}

// FindActiveForUpdate returns the open session for plate. Inside WithinTx the
// transaction already holds the only connection, which is the lock.
func (s *Store) FindActiveForUpdate(ctx context.Context, plate string) (domain.ParkingSession, error) {
	result, err := s.findActive(ctx, plate)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("sqlite.Store.FindActiveForUpdate: %w", err)
	}
	return result, nil
}

func (s *Store) findActive(ctx context.Context, plate string) (domain.ParkingSession, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT `+parkingColumns+`
		 FROM parkings
		 WHERE plate = ? AND left_at IS NULL
		 ORDER BY started_at DESC
		 LIMIT 1`,
		plate,
	)
	return scanParking(row)
}

// ListByPlate returns every session of plate, most recent first.
func (s *Store) ListByPlate(ctx context.Context, plate string) ([]domain.ParkingSession, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+parkingColumns+`
		 FROM parkings
		 WHERE plate = ?
		 ORDER BY started_at DESC, created_at DESC`,
		plate,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Store.ListByPlate: %w", err)
	}
	defer rows.Close()

	var sessions []domain.ParkingSession
	for rows.Next() {
		p, err := scanParking(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite.Store.ListByPlate: scan: %w", err)
		}
		sessions = append(sessions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite.Store.ListByPlate: rows: %w", err)
	}
	return sessions, nil
}

// Update persists paid_at and left_at of an existing session.
func (s *Store) Update(ctx context.Context, session domain.ParkingSession) (domain.ParkingSession, error) {
	row := s.q.QueryRowContext(ctx,
		`UPDATE parkings
		 SET paid_at = ?, left_at = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+parkingColumns,
		nullMillis(session.PaidAt), nullMillis(session.LeftAt), toMillis(time.Now()), session.ID.String(),
	)
	result, err := scanParking(row)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("sqlite.Store.Update: %w", err)
	}
	return result, nil
}

// WithinTx runs fn in a transaction. Calls made on a Store that is already
// bound to a transaction join it rather than nesting.
func (s *Store) WithinTx(ctx context.Context, fn func(tx repo.ParkingRepo) error) (err error) {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite.Store.WithinTx: begin: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(&Store{sqlDB: s.sqlDB, q: tx, inTx: true}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("sqlite.Store.WithinTx: commit: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanParking(s scanner) (domain.ParkingSession, error) {
	var (
		p         domain.ParkingSession
		id        string
		startedAt int64
		paidAt    sql.NullInt64
		leftAt    sql.NullInt64
		createdAt int64
		updatedAt int64
	)
	if err := s.Scan(&id, &p.Plate, &startedAt, &paidAt, &leftAt, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ParkingSession{}, domain.ErrNotFound
		}
		return domain.ParkingSession{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("parse id %q: %w", id, err)
	}
	p.ID = parsed
	p.StartedAt = fromMillis(startedAt)
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	if paidAt.Valid {
		t := fromMillis(paidAt.Int64)
		p.PaidAt = &t
	}
	if leftAt.Valid {
		t := fromMillis(leftAt.Int64)
		p.LeftAt = &t
	}
	return p, nil
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*t), Valid: true}
}
