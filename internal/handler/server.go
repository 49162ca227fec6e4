// Package handler implements the HTTP handlers for the Parking Control API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into files by resource (health.go, parking.go) but share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
)

// ParkingServicer defines the lifecycle operations the parking handlers depend on.
// Declared here, in the consumer package, so handler tests can inject a mock
// without touching the database or service layer.
type ParkingServicer interface {
	Enter(ctx context.Context, rawPlate string) (domain.EnterResult, error)
	Pay(ctx context.Context, rawPlate string) (domain.ParkingSession, error)
	Leave(ctx context.Context, rawPlate string) (domain.ParkingSession, error)
	History(ctx context.Context, rawPlate string) ([]domain.ParkingSession, error)
}

// DurationDescriber renders how long a session lasted.
type DurationDescriber interface {
	Elapsed(ctx context.Context, p domain.ParkingSession) string
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions()).
type Server struct {
	parkings  ParkingServicer
	durations DurationDescriber
}

// NewServer constructs the Server with all its dependencies.
func NewServer(parkings ParkingServicer, durations DurationDescriber) *Server {
	return &Server{parkings: parkings, durations: durations}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}
