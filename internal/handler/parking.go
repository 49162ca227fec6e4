package handler

import (
	"context"

	"github.com/fabriciobonjorno/ParkingControl/internal/handler/gen"
)

const (
	msgEntered       = "Entrada registrada com sucesso"
	msgAlreadyActive = "Veículo já cadastrado e com estacionamento em aberto"
	msgPaidNotLeft   = "Pagamento realizado em %s, mas a saída do veículo ainda não foi registrada"
	msgPaid          = "Pagamento realizado com sucesso"
	msgLeft          = "Baixa realizado com sucesso"

	elapsedPrefix = "Duração atual: "
	paidDateFmt   = "02/01/2006"
)

// EnterParking handles POST /api/v1/parking.
// Always 201 on success, including when the plate was already parked; the
// message tells the three outcomes apart.
func (s *Server) EnterParking(ctx context.Context, req gen.EnterParkingRequestObject) (gen.EnterParkingResponseObject, error) {
	var rawPlate string
	if req.Body != nil && req.Body.Plate != nil {
		rawPlate = *req.Body.Plate
	}

	result, err := s.parkings.Enter(ctx, rawPlate)
	if err != nil {
		if body, ok := ruleErrorBody(err); ok {
			return gen.EnterParking422JSONResponse{UnprocessableJSONResponse: body}, nil
		}
		return nil, err
	}

	return gen.EnterParking201JSONResponse(s.entranceTicket(ctx, result)), nil
}

// PayParking handles PUT /api/v1/parking/{plate}/pay.
func (s *Server) PayParking(ctx context.Context, req gen.PayParkingRequestObject) (gen.PayParkingResponseObject, error) {
	if _, err := s.parkings.Pay(ctx, req.Plate); err != nil {
		if body, ok := ruleErrorBody(err); ok {
			return gen.PayParking422JSONResponse{UnprocessableJSONResponse: body}, nil
		}
		return nil, err
	}
	return gen.PayParking200JSONResponse{Message: msgPaid}, nil
}

// LeaveParking handles PUT /api/v1/parking/{plate}/out.
func (s *Server) LeaveParking(ctx context.Context, req gen.LeaveParkingRequestObject) (gen.LeaveParkingResponseObject, error) {
	if _, err := s.parkings.Leave(ctx, req.Plate); err != nil {
		if body, ok := ruleErrorBody(err); ok {
			return gen.LeaveParking422JSONResponse{UnprocessableJSONResponse: body}, nil
		}
		return nil, err
	}
	return gen.LeaveParking200JSONResponse{Message: msgLeft}, nil
}

// GetParkingHistory handles GET /api/v1/parking/{plate}.
func (s *Server) GetParkingHistory(ctx context.Context, req gen.GetParkingHistoryRequestObject) (gen.GetParkingHistoryResponseObject, error) {
	sessions, err := s.parkings.History(ctx, req.Plate)
	if err != nil {
		if body, ok := ruleErrorBody(err); ok {
			return gen.GetParkingHistory422JSONResponse{UnprocessableJSONResponse: body}, nil
		}
		return nil, err
	}

	entries := make(gen.GetParkingHistory200JSONResponse, len(sessions))
	for i, p := range sessions {
		entries[i] = gen.HistoryEntry{
			Id:   p.ID,
			Time: s.durations.Elapsed(ctx, p),
			Paid: p.Paid(),
			Left: p.Left(),
		}
	}
	return entries, nil
}
