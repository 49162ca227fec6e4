// Package service contains the business logic for the parking control API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
	"github.com/fabriciobonjorno/ParkingControl/internal/repo"
)

var tracer = otel.Tracer("github.com/fabriciobonjorno/ParkingControl/internal/service")

// ParkingService is the session lifecycle engine. It owns the rules for
// entering, paying, leaving, and listing the history of a plate, and the
// invariant that a plate has at most one open session.
//
// Pay and Leave read the open session without a lock and then write. Two
// concurrent Pay calls for one plate may both succeed (last write wins);
// callers needing stricter guarantees serialize externally.
type ParkingService struct {
	store repo.ParkingStore
	now   func() time.Time
}

// NewParkingService constructs a ParkingService. now is the clock used for
// started_at, paid_at, and left_at; nil means time.Now.
func NewParkingService(store repo.ParkingStore, now func() time.Time) *ParkingService {
	if now == nil {
		now = time.Now
	}
	return &ParkingService{store: store, now: now}
}

// Enter registers a vehicle entry. If the plate already has an open session
// nothing is written and the existing session is returned with
// EnterAlreadyActive or EnterPaidNotLeft.
// Returns domain.ErrInvalidPlate before touching the store if the plate is malformed.
func (s *ParkingService) Enter(ctx context.Context, rawPlate string) (result domain.EnterResult, err error) {
	ctx, span := tracer.Start(ctx, "ParkingService.Enter")
	defer func() { endSpan(span, err) }()

	plate, err := domain.ParsePlate(rawPlate)
	if err != nil {
		return domain.EnterResult{}, fmt.Errorf("service.ParkingService.Enter: %w", err)
	}
	span.SetAttributes(attribute.String("parking.plate", plate))

	err = s.store.WithinTx(ctx, func(tx repo.ParkingRepo) error {
		active, err := tx.FindActiveForUpdate(ctx, plate)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			created, err := tx.Create(ctx, plate, s.now())
			if err != nil {
				return err
			}
			result = domain.EnterResult{Session: created, Status: domain.EnterCreated}
		case err != nil:
			return err
		case active.Paid():
			result = domain.EnterResult{Session: active, Status: domain.EnterPaidNotLeft}
		default:
			result = domain.EnterResult{Session: active, Status: domain.EnterAlreadyActive}
		}
		return nil
	})
	if err != nil {
		return domain.EnterResult{}, fmt.Errorf("service.ParkingService.Enter: %w", err)
	}

	span.SetAttributes(attribute.String("parking.enter_status", result.Status.String()))
	slog.DebugContext(ctx, "parking enter", "plate", plate, "status", result.Status.String(), "session_id", result.Session.ID)
	return result, nil
}

// Pay records payment for the plate's open session.
// Returns domain.ErrNoActiveSession if there is none and domain.ErrAlreadyPaid
// if it was paid before.
func (s *ParkingService) Pay(ctx context.Context, rawPlate string) (session domain.ParkingSession, err error) {
	ctx, span := tracer.Start(ctx, "ParkingService.Pay")
	defer func() { endSpan(span, err) }()

	active, err := s.findActive(ctx, span, rawPlate)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("service.ParkingService.Pay: %w", err)
	}
	if active.Paid() {
		return domain.ParkingSession{}, fmt.Errorf("service.ParkingService.Pay: %w", domain.ErrAlreadyPaid)
	}

	paidAt := s.now()
	// started_at <= paid_at must hold even if the clock moved backwards.
	if paidAt.Before(active.StartedAt) {
		paidAt = active.StartedAt
	}
	active.PaidAt = &paidAt
	updated, err := s.store.Update(ctx, active)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("service.ParkingService.Pay: %w", err)
	}

	slog.DebugContext(ctx, "parking paid", "plate", updated.Plate, "session_id", updated.ID)
	return updated, nil
}

// Leave records the departure of the plate's open session.
// Returns domain.ErrNoActiveSession if there is none and
// domain.ErrPaymentRequired if it has not been paid.
func (s *ParkingService) Leave(ctx context.Context, rawPlate string) (session domain.ParkingSession, err error) {
	ctx, span := tracer.Start(ctx, "ParkingService.Leave")
	defer func() { endSpan(span, err) }()

	active, err := s.findActive(ctx, span, rawPlate)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("service.ParkingService.Leave: %w", err)
	}
	if !active.Paid() {
		return domain.ParkingSession{}, fmt.Errorf("service.ParkingService.Leave: %w", domain.ErrPaymentRequired)
	}

	leftAt := s.now()
	// paid_at <= left_at must hold even if the clock moved backwards.
	if leftAt.Before(*active.PaidAt) {
		leftAt = *active.PaidAt
	}
	active.LeftAt = &leftAt
	updated, err := s.store.Update(ctx, active)
	if err != nil {
		return domain.ParkingSession{}, fmt.Errorf("service.ParkingService.Leave: %w", err)
	}

	slog.DebugContext(ctx, "parking left", "plate", updated.Plate, "session_id", updated.ID)
	return updated, nil
}

// History returns every session of the plate, most recent first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ParkingService) History(ctx context.Context, rawPlate string) (sessions []domain.ParkingSession, err error) {
	ctx, span := tracer.Start(ctx, "ParkingService.History")
	defer func() { endSpan(span, err) }()

	plate, err := domain.ParsePlate(rawPlate)
	if err != nil {
		return nil, fmt.Errorf("service.ParkingService.History: %w", err)
	}
	span.SetAttributes(attribute.String("parking.plate", plate))

	sessions, err = s.store.ListByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("service.ParkingService.History: %w", err)
	}
	if sessions == nil {
		return []domain.ParkingSession{}, nil
	}
	return sessions, nil
}

// findActive parses rawPlate and loads its open session, translating a missing
// row into domain.ErrNoActiveSession.
func (s *ParkingService) findActive(ctx context.Context, span trace.Span, rawPlate string) (domain.ParkingSession, error) {
	plate, err := domain.ParsePlate(rawPlate)
	if err != nil {
		return domain.ParkingSession{}, err
	}
	span.SetAttributes(attribute.String("parking.plate", plate))

	active, err := s.store.FindActive(ctx, plate)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ParkingSession{}, domain.ErrNoActiveSession
	}
	if err != nil {
		return domain.ParkingSession{}, err
	}
	// An "active" row with left_at set would be a store bug; treat it as absent.
	if active.Left() {
		return domain.ParkingSession{}, domain.ErrNoActiveSession
	}
	return active, nil
}

// endSpan records err on span unless it is an expected rule violation, then ends it.
func endSpan(span trace.Span, err error) {
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		span.SetAttributes(attribute.String("parking.rule_error", err.Error()))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
