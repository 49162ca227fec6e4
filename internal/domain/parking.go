// Package domain contains the core data types and pure rules of the parking
// control application. It is imported by every other internal package
// (repo, service, handler) and never touches the database or the network.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParkingSession is one stay of a vehicle in the lot, from entry to exit.
// PaidAt is nil until payment is recorded; LeftAt is nil while the vehicle is
// still inside. Every other state is derived from these three timestamps.
type ParkingSession struct {
	ID        uuid.UUID
	Plate     string
	StartedAt time.Time
	PaidAt    *time.Time
	LeftAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the vehicle has not departed yet.
func (p ParkingSession) Active() bool { return p.LeftAt == nil }

// Paid reports whether payment has been recorded.
func (p ParkingSession) Paid() bool { return p.PaidAt != nil }

// Left reports whether the departure has been recorded.
func (p ParkingSession) Left() bool { return p.LeftAt != nil }

// State returns the lifecycle state derived from the session timestamps.
func (p ParkingSession) State() SessionState {
	switch {
	case p.Left():
		return StateClosed
	case p.Paid():
		return StateActivePaid
	default:
		return StateActiveUnpaid
	}
}

// SessionState is a position in the per-plate lifecycle
// NONE → ACTIVE_UNPAID → ACTIVE_PAID → CLOSED. There are no backward transitions.
type SessionState int

const (
	StateNone SessionState = iota
	StateActiveUnpaid
	StateActivePaid
	StateClosed
)

func (s SessionState) String() string {
	switch s {
	case StateActiveUnpaid:
		return "active_unpaid"
	case StateActivePaid:
		return "active_paid"
	case StateClosed:
		return "closed"
	default:
		return "none"
	}
}

// EnterStatus describes what an entry attempt found for the plate.
type EnterStatus int

const (
	// EnterCreated means no active session existed and a new one was opened.
	EnterCreated EnterStatus = iota + 1
	// EnterAlreadyActive means an unpaid session is still open; nothing changed.
	EnterAlreadyActive
	// EnterPaidNotLeft means the open session is paid but the exit was never recorded.
	EnterPaidNotLeft
)

func (s EnterStatus) String() string {
	switch s {
	case EnterCreated:
		return "created"
	case EnterAlreadyActive:
		return "already_active"
	case EnterPaidNotLeft:
		return "paid_not_left"
	default:
		return "unknown"
	}
}

// EnterResult pairs the session an entry attempt resolved to with the outcome.
type EnterResult struct {
	Session ParkingSession
	Status  EnterStatus
}
