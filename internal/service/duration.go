package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/fabriciobonjorno/ParkingControl/internal/cache"
	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
)

// DurationService formats how long a session lasted, memoizing closed
// sessions in an optional cache. Open sessions keep growing, so they are
// always computed fresh.
type DurationService struct {
	cache cache.DurationCache
	now   func() time.Time
}

// NewDurationService constructs a DurationService. c may be nil to disable
// memoization; nil now means time.Now.
func NewDurationService(c cache.DurationCache, now func() time.Time) *DurationService {
	if now == nil {
		now = time.Now
	}
	return &DurationService{cache: c, now: now}
}

// Elapsed returns the human-readable duration of p. Cache failures are logged
// and never surface to the caller.
func (s *DurationService) Elapsed(ctx context.Context, p domain.ParkingSession) string {
	if s.cache == nil || p.Active() {
		return domain.FormatDuration(p.StartedAt, p.LeftAt, s.now())
	}

	key := durationKey(p)
	if v, ok, err := s.cache.Get(ctx, key); err != nil {
		slog.WarnContext(ctx, "duration cache get failed", "key", key, "error", err)
	} else if ok {
		return v
	}

	v := domain.FormatDuration(p.StartedAt, p.LeftAt, s.now())
	if err := s.cache.Set(ctx, key, v); err != nil {
		slog.WarnContext(ctx, "duration cache set failed", "key", key, "error", err)
	}
	return v
}

// durationKey identifies a session at a given version. Any write bumps
// updated_at, which retires the old entry.
func durationKey(p domain.ParkingSession) string {
	return p.ID.String() + ":" + strconv.FormatInt(p.UpdatedAt.UnixNano(), 10)
}
