// Package repo contains all database access logic for the parking control API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin on a pgx.Tx opens a
// savepoint, so WithinTx keeps working inside such a test transaction.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ParkingRepo defines the persistence operations for parking sessions.
// Every lookup is scoped by an already normalized plate.
type ParkingRepo interface {
	// Create inserts a new open session and returns the persisted record
	// (with store-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, plate string, startedAt time.Time) (domain.ParkingSession, error)

	// FindActive returns the session for plate whose left_at is NULL.
	// Returns domain.ErrNotFound if the plate has no open session.
	FindActive(ctx context.Context, plate string) (domain.ParkingSession, error)

	// FindActiveForUpdate is FindActive under an exclusive lock keyed by plate.
	// The lock is held until the enclosing transaction ends, and it is taken
	// even when no open row exists, so two callers can never both observe
	// "no active session" for the same plate. Call it only inside WithinTx.
	FindActiveForUpdate(ctx context.Context, plate string) (domain.ParkingSession, error)

	// ListByPlate returns every session of plate ordered by started_at descending.
	ListByPlate(ctx context.Context, plate string) ([]domain.ParkingSession, error)

	// Update persists paid_at and left_at of an existing session and returns
	// the updated record. Returns domain.ErrNotFound if the id does not exist.
	Update(ctx context.Context, session domain.ParkingSession) (domain.ParkingSession, error)
}

// ParkingStore is a ParkingRepo that can also open a unit of work.
type ParkingStore interface {
	ParkingRepo

	// WithinTx runs fn inside a single transaction. The ParkingRepo handed to
	// fn is bound to that transaction. The transaction commits when fn returns
	// nil and rolls back when fn returns an error or panics.
	WithinTx(ctx context.Context, fn func(tx ParkingRepo) error) error
}

// pgParkingRepo is the Postgres implementation of ParkingStore.
type pgParkingRepo struct {
	db db
}

// NewParkingStore constructs a ParkingStore backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewParkingStore(db db) ParkingStore {
	return &pgParkingRepo{db: db}
}

const parkingColumns = `id, plate, started_at, paid_at, left_at, created_at, updated_at`

// Create inserts a new session row and returns the full persisted record.
func (r *pgParkingRepo) Create(ctx context.Context, plate string, startedAt time.Time) (domain.ParkingSession, error) {
	const q = `
		INSERT INTO parkings (plate, started_at)
		VALUES (@plate, @started_at)
		RETURNING ` + parkingColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"plate":      plate,
		"started_at": startedAt,
	})
	result, err := scanParking(row)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("repo.ParkingRepo.Create: %w", err)
	}
	return result, nil
}

// FindActive returns the open session for plate without locking it.
func (r *pgParkingRepo) FindActive(ctx context.Context, plate string) (domain.ParkingSession, error) {
	const q = `
		SELECT ` + parkingColumns + `
		FROM parkings
		WHERE plate = @plate AND left_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1`

	result, err := scanParking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"plate": plate}))
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("repo.ParkingRepo.FindActive: %w", err)
	}
	return result, nil
}

// FindActiveForUpdate takes a transaction-scoped advisory lock on the plate
// before reading. Row locks alone cannot serialize callers when no row exists
// yet; the advisory lock can.
func (r *pgParkingRepo) FindActiveForUpdate(ctx context.Context, plate string) (domain.ParkingSession, error) {
	const lockQ = `SELECT pg_advisory_xact_lock(hashtextextended(@plate, 0))`
	if _, err := r.db.Exec(ctx, lockQ, pgx.NamedArgs{"plate": plate}); err != nil {
		return domain.ParkingSession{}, fmt.Errorf("repo.ParkingRepo.FindActiveForUpdate: lock: %w", err)
	}

	const q = `
		SELECT ` + parkingColumns + `
		FROM parkings
		WHERE plate = @plate AND left_at IS NULL
		ORDER BY started_at DESC
		LIMIT 1
		FOR UPDATE`

	result, err := scanParking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"plate": plate}))
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("repo.ParkingRepo.FindActiveForUpdate: %w", err)
	}
	return result, nil
}

// ListByPlate returns every session of plate, most recent first.
func (r *pgParkingRepo) ListByPlate(ctx context.Context, plate string) ([]domain.ParkingSession, error) {
	const q = `
		SELECT ` + parkingColumns + `
		FROM parkings
		WHERE plate = @plate
		ORDER BY started_at DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"plate": plate})
	if err != nil {
		return nil, fmt.Errorf("repo.ParkingRepo.ListByPlate: %w", err)
	}
	defer rows.Close()

	var sessions []domain.ParkingSession
	for rows.Next() {
		p, err := scanParking(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParkingRepo.ListByPlate: scan: %w", err)
		}
		sessions = append(sessions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParkingRepo.ListByPlate: rows: %w", err)
	}

	return sessions, nil
}

// Update overwrites paid_at and left_at and bumps updated_at.
func (r *pgParkingRepo) Update(ctx context.Context, session domain.ParkingSession) (domain.ParkingSession, error) {
	const q = `
		UPDATE parkings
		SET paid_at    = @paid_at,
		    left_at    = @left_at,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + parkingColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"id":      session.ID,
		"paid_at": session.PaidAt, // nil becomes NULL
		"left_at": session.LeftAt,
	})
	result, err := scanParking(row)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("repo.ParkingRepo.Update: %w", err)
	}
	return result, nil
}

// WithinTx begins a transaction (a savepoint when r is already bound to one)
// and hands fn a repo bound to it.
func (r *pgParkingRepo) WithinTx(ctx context.Context, fn func(tx ParkingRepo) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.ParkingRepo.WithinTx: begin: %w", err)
	}

	// Rollback must run even when ctx is already cancelled.
	rollbackCtx := context.WithoutCancel(ctx)
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(rollbackCtx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(rollbackCtx)
		}
	}()

	if err = fn(&pgParkingRepo{db: tx}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.ParkingRepo.WithinTx: commit: %w", err)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanParking to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanParking maps a single database row into a domain.ParkingSession.
// It handles the UUID and nullable timestamp conversions.
func scanParking(s scanner) (domain.ParkingSession, error) {
	var (
		p      domain.ParkingSession
		id     pgtype.UUID
		paidAt pgtype.Timestamptz
		leftAt pgtype.Timestamptz
	)

	err := s.Scan(&id, &p.Plate, &p.StartedAt, &paidAt, &leftAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ParkingSession{}, domain.ErrNotFound
		}
		return domain.ParkingSession{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	if paidAt.Valid {
		t := paidAt.Time
		p.PaidAt = &t
	}
	if leftAt.Valid {
		t := leftAt.Time
		p.LeftAt = &t
	}

	return p, nil
}
