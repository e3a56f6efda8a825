package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avanekar/PdfChatAPI/internal/adapter"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(httpCode, message))
}

// writeDomainError maps service errors to the taxonomy the UI expects:
// validation 400, lookup miss 404, backend detail passed through, store
// failures 500.
func writeDomainError(w http.ResponseWriter, err error) {
	code, message := adapter.ToErrorStatus(err)
	WriteErrorResponse(w, code, message)
}
