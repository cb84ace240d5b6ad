package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"jobboard/internal/apperrors"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// writeDomainError maps a DomainError type onto an HTTP status. Only the
// internal case is logged, with the stack the error was created with.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrTypeNotFound:
		WriteError(w, r, http.StatusNotFound, "not_found", "job not found")
	case apperrors.ErrTypeInvalidInput:
		WriteError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		logger.Error("request failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
			apperrors.StackField(err),
		)
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
