package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fabriciobonjorno/ParkingControl/internal/cache"
	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
	"github.com/fabriciobonjorno/ParkingControl/internal/service"
)

type mockDurationCache struct {
	get func(ctx context.Context, key string) (string, bool, error)
	set func(ctx context.Context, key, value string) error
}

func (m *mockDurationCache) Get(ctx context.Context, key string) (string, bool, error) {
	return m.get(ctx, key)
}
func (m *mockDurationCache) Set(ctx context.Context, key, value string) error {
	return m.set(ctx, key, value)
}

var _ cache.DurationCache = (*mockDurationCache)(nil)

func closedSession() domain.ParkingSession {
	s := paidSession("ABC-1234")
	left := now
	s.LeftAt = &left
	s.UpdatedAt = now
	return s
}

func TestDurationService_NoCache(t *testing.T) {
	svc := service.NewDurationService(nil, fixedClock)

	got := svc.Elapsed(context.Background(), openSession("ABC-1234"))

	assert.Equal(t, "1 hora", got)
}

func TestDurationService_OpenSessionBypassesCache(t *testing.T) {
	// Unset funcs panic if the service touches the cache.
	svc := service.NewDurationService(&mockDurationCache{}, fixedClock)

	got := svc.Elapsed(context.Background(), openSession("ABC-1234"))

	assert.Equal(t, "1 hora", got)
}

func TestDurationService_MissStoresValue(t *testing.T) {
	session := closedSession()
	var storedKey, storedValue string
	c := &mockDurationCache{
		get: func(_ context.Context, _ string) (string, bool, error) { return "", false, nil },
		set: func(_ context.Context, key, value string) error {
			storedKey, storedValue = key, value
			return nil
		},
	}
	svc := service.NewDurationService(c, fixedClock)

	got := svc.Elapsed(context.Background(), session)

	assert.Equal(t, "1 hora", got)
	assert.Equal(t, got, storedValue)
	assert.True(t, strings.HasPrefix(storedKey, session.ID.String()+":"))
}

func TestDurationService_HitReturnsCached(t *testing.T) {
	c := &mockDurationCache{
		get: func(_ context.Context, _ string) (string, bool, error) { return "cached", true, nil },
	}
	svc := service.NewDurationService(c, fixedClock)

	got := svc.Elapsed(context.Background(), closedSession())

	assert.Equal(t, "cached", got)
}

func TestDurationService_KeyChangesWithVersion(t *testing.T) {
	var keys []string
	c := &mockDurationCache{
		get: func(_ context.Context, key string) (string, bool, error) {
			keys = append(keys, key)
			return "", false, nil
		},
		set: func(_ context.Context, _, _ string) error { return nil },
	}
	svc := service.NewDurationService(c, fixedClock)

	session := closedSession()
	svc.Elapsed(context.Background(), session)
	session.UpdatedAt = session.UpdatedAt.Add(time.Second)
	svc.Elapsed(context.Background(), session)

	other := closedSession()
	other.ID = uuid.New()
	svc.Elapsed(context.Background(), other)

	assert.Len(t, keys, 3)
	assert.NotEqual(t, keys[0], keys[1])
	assert.NotEqual(t, keys[0], keys[2])
}

func TestDurationService_CacheErrorsAreSwallowed(t *testing.T) {
	c := &mockDurationCache{
		get: func(_ context.Context, _ string) (string, bool, error) { return "", false, errors.New("redis down") },
		set: func(_ context.Context, _, _ string) error { return errors.New("redis down") },
	}
	svc := service.NewDurationService(c, fixedClock)

	got := svc.Elapsed(context.Background(), closedSession())

	assert.Equal(t, "1 hora", got)
}
