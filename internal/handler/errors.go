package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
	"github.com/fabriciobonjorno/ParkingControl/internal/handler/gen"
)

// ruleErrorBody returns the 422 body for a lifecycle rule violation, or false
// if err is not one. Only the rule's own message reaches the client; the
// wrapping context added by lower layers stays in the logs.
func ruleErrorBody(err error) (gen.UnprocessableJSONResponse, bool) {
	var rule *domain.RuleError
	if errors.As(err, &rule) {
		return gen.UnprocessableJSONResponse{Error: rule.Message}, true
	}
	return gen.UnprocessableJSONResponse{}, false
}

// StrictOptions returns the error handlers used by the generated strict server.
// Both write the same {"error": "..."} shape as the 422 responses.
func StrictOptions() gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  requestErrorHandler,
		ResponseErrorHandlerFunc: responseErrorHandler,
	}
}

// requestErrorHandler handles bodies the strict server could not decode.
func requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	slog.WarnContext(r.Context(), "malformed request", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusBadRequest, "invalid JSON body")
}

// responseErrorHandler handles infrastructure failures returned by handlers.
// The cause is logged; the client only sees a generic message.
func responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // headers are already sent; nothing useful to do on failure.
	json.NewEncoder(w).Encode(gen.ErrorResponse{Error: message})
}
