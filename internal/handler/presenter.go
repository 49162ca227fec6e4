package handler

import (
	"context"
	"fmt"

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
	"github.com/fabriciobonjorno/ParkingControl/internal/handler/gen"
)

// entranceTicket maps an Enter outcome to its response body.
func (s *Server) entranceTicket(ctx context.Context, result domain.EnterResult) gen.EntranceTicket {
	p := result.Session
	ticket := gen.EntranceTicket{Id: p.ID, Plate: p.Plate}

	switch result.Status {
	case domain.EnterAlreadyActive:
		elapsed := elapsedPrefix + s.durations.Elapsed(ctx, p)
		ticket.Message = msgAlreadyActive
		ticket.Time = &elapsed
	case domain.EnterPaidNotLeft:
		ticket.Message = fmt.Sprintf(msgPaidNotLeft, paidDate(p))
	default:
		ticket.Message = msgEntered
	}
	return ticket
}

// paidDate renders the payment day in the server's local time zone.
func paidDate(p domain.ParkingSession) string {
	if p.PaidAt == nil {
		return ""
	}
	return p.PaidAt.Local().Format(paidDateFmt)
}
