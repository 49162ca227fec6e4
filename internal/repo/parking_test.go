package repo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
	"github.com/fabriciobonjorno/ParkingControl/internal/repo"
	"github.com/fabriciobonjorno/ParkingControl/testutil"
)

var startedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestParkingRepo_Create(t *testing.T) {
	r := testutil.NewTxStore(t)
	ctx := context.Background()

	got, err := r.Create(ctx, "ABC-1234", startedAt)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, "ABC-1234", got.Plate)
	assert.True(t, got.StartedAt.Equal(startedAt), "StartedAt mismatch")
	assert.Nil(t, got.PaidAt)
	assert.Nil(t, got.LeftAt)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestParkingRepo_FindActive(t *testing.T) {
	r := testutil.NewTxStore(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "ABC-1234", startedAt)
	require.NoError(t, err)

	got, err := r.FindActive(ctx, "ABC-1234")

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestParkingRepo_FindActive_NotFound(t *testing.T) {
	r := testutil.NewTxStore(t)

	_, err := r.FindActive(context.Background(), "ZZZ-0000")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParkingRepo_FindActive_IgnoresClosedSessions(t *testing.T) {
	r := testutil.NewTxStore(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "ABC-1234", startedAt)
	require.NoError(t, err)
	paid, left := startedAt.Add(time.Hour), startedAt.Add(2*time.Hour)
	created.PaidAt, created.LeftAt = &paid, &left
	_, err = r.Update(ctx, created)
	require.NoError(t, err)

	_, err = r.FindActive(ctx, "ABC-1234")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParkingRepo_FindActiveForUpdate(t *testing.T) {
	r := testutil.NewTxStore(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "ABC-1234", startedAt)
	require.NoError(t, err)

	err = r.WithinTx(ctx, func(tx repo.ParkingRepo) error {
		got, err := tx.FindActiveForUpdate(ctx, "ABC-1234")
		if err != nil {
			return err
		}
		assert.Equal(t, created.ID, got.ID)
		return nil
	})

	require.NoError(t, err)
}

func TestParkingRepo_ListByPlate(t *testing.T) {
	r := testutil.NewTxStore(t)
	ctx := context.Background()

	for _, offset := range []time.Duration{-3 * time.Hour, -time.Hour, -2 * time.Hour} {
		_, err := r.Create(ctx, "ABC-1234", startedAt.Add(offset))
		require.NoError(t, err)
	}
	_, err := r.Create(ctx, "XYZ-5678", startedAt)
	require.NoError(t, err)

	got, err := r.ListByPlate(ctx, "ABC-1234")

	require.NoError(t, err)
	require.Len(t, got, 3)
	// Ordered by started_at DESC, most recent first.
	assert.True(t, got[0].StartedAt.Equal(startedAt.Add(-time.Hour)))
	assert.True(t, got[1].StartedAt.Equal(startedAt.Add(-2*time.Hour)))
	assert.True(t, got[2].StartedAt.Equal(startedAt.Add(-3*time.Hour)))
}

func TestParkingRepo_Update(t *testing.T) {
	r := testutil.NewTxStore(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "ABC-1234", startedAt)
	require.NoError(t, err)
	paid := startedAt.Add(30 * time.Minute)
	created.PaidAt = &paid

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	require.NotNil(t, updated.PaidAt)
	assert.True(t, updated.PaidAt.Equal(paid))
	assert.Nil(t, updated.LeftAt)
}

func TestParkingRepo_Update_NotFound(t *testing.T) {
	r := testutil.NewTxStore(t)

	_, err := r.Update(context.Background(), domain.ParkingSession{ID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParkingRepo_WithinTx_RollsBackOnError(t *testing.T) {
	r := testutil.NewTxStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := r.WithinTx(ctx, func(tx repo.ParkingRepo) error {
		if _, err := tx.Create(ctx, "ABC-1234", startedAt); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	_, err = r.FindActive(ctx, "ABC-1234")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestParkingRepo_FindActiveForUpdate_SerializesPerPlate runs against the pool
// directly, since the advisory lock only matters across real transactions.
func TestParkingRepo_FindActiveForUpdate_SerializesPerPlate(t *testing.T) {
	const plate = "LCK-0001"
	store := testutil.NewPoolStore(t, plate)
	ctx := context.Background()

	const workers = 12
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.WithinTx(ctx, func(tx repo.ParkingRepo) error {
				_, err := tx.FindActiveForUpdate(ctx, plate)
				if errors.Is(err, domain.ErrNotFound) {
					_, err = tx.Create(ctx, plate, startedAt)
				}
				return err
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := store.ListByPlate(ctx, plate)
	require.NoError(t, err)
	assert.Len(t, got, 1, "exactly one session must be opened")
}
