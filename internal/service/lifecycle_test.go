package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
	"github.com/fabriciobonjorno/ParkingControl/internal/service"
	"github.com/fabriciobonjorno/ParkingControl/testutil"
)

// These tests run the service against a real SQLite store so transactions and
// the single-open-session guarantee are exercised end to end.

type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestParkingLifecycle_SQLite(t *testing.T) {
	ctx := context.Background()
	clock := &stepClock{t: now}
	svc := service.NewParkingService(testutil.NewSQLiteStore(t), clock.Now)

	entered, err := svc.Enter(ctx, "ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, domain.EnterCreated, entered.Status)

	again, err := svc.Enter(ctx, "abc-1234")
	require.NoError(t, err)
	assert.Equal(t, domain.EnterAlreadyActive, again.Status)
	assert.Equal(t, entered.Session.ID, again.Session.ID)

	_, err = svc.Leave(ctx, "ABC-1234")
	assert.ErrorIs(t, err, domain.ErrPaymentRequired)

	clock.Advance(90 * time.Minute)
	paid, err := svc.Pay(ctx, "ABC-1234")
	require.NoError(t, err)
	require.NotNil(t, paid.PaidAt)
	assert.True(t, paid.PaidAt.Equal(now.Add(90*time.Minute)))

	_, err = svc.Pay(ctx, "ABC-1234")
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)

	afterPay, err := svc.Enter(ctx, "ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, domain.EnterPaidNotLeft, afterPay.Status)

	clock.Advance(5 * time.Minute)
	left, err := svc.Leave(ctx, "ABC-1234")
	require.NoError(t, err)
	require.NotNil(t, left.LeftAt)
	assert.Equal(t, "1 hora e 35 minutos", domain.FormatDuration(left.StartedAt, left.LeftAt, clock.Now()))

	_, err = svc.Pay(ctx, "ABC-1234")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	_, err = svc.Leave(ctx, "ABC-1234")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)

	clock.Advance(time.Hour)
	second, err := svc.Enter(ctx, "ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, domain.EnterCreated, second.Status)
	assert.NotEqual(t, entered.Session.ID, second.Session.ID)

	history, err := svc.History(ctx, "ABC-1234")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.Session.ID, history[0].ID, "most recent session first")
	assert.False(t, history[0].Paid())
	assert.False(t, history[0].Left())
	assert.Equal(t, entered.Session.ID, history[1].ID)
	assert.True(t, history[1].Paid())
	assert.True(t, history[1].Left())
}

func TestParkingLifecycle_ClockSkew_SQLite(t *testing.T) {
	ctx := context.Background()
	clock := &stepClock{t: now}
	svc := service.NewParkingService(testutil.NewSQLiteStore(t), clock.Now)

	entered, err := svc.Enter(ctx, "ABC-1234")
	require.NoError(t, err)

	clock.Advance(-2 * time.Second)
	paid, err := svc.Pay(ctx, "ABC-1234")
	require.NoError(t, err)
	require.NotNil(t, paid.PaidAt)
	assert.False(t, paid.PaidAt.Before(entered.Session.StartedAt))

	clock.Advance(-2 * time.Second)
	left, err := svc.Leave(ctx, "ABC-1234")
	require.NoError(t, err)
	require.NotNil(t, left.LeftAt)
	assert.False(t, left.LeftAt.Before(*left.PaidAt))
	assert.False(t, left.LeftAt.Before(left.StartedAt))
}

func TestParkingHistory_UnknownPlate_SQLite(t *testing.T) {
	svc := service.NewParkingService(testutil.NewSQLiteStore(t), fixedClock)

	history, err := svc.History(context.Background(), "ZZZ-9999")

	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestParkingEnter_Concurrent_SQLite(t *testing.T) {
	const workers = 12
	svc := service.NewParkingService(testutil.NewSQLiteStore(t), fixedClock)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []domain.EnterResult
		errs    []error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Enter(context.Background(), "CON-0001")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			results = append(results, res)
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, results, workers)

	created := 0
	for _, r := range results {
		if r.Status == domain.EnterCreated {
			created++
		} else {
			assert.Equal(t, domain.EnterAlreadyActive, r.Status)
		}
	}
	assert.Equal(t, 1, created, "exactly one entry may open a session")

	history, err := svc.History(context.Background(), "CON-0001")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
