package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type errorResponse struct {
	Errors []string `json:"errors"`
}

// APIError carries a status code from a service method to the handler layer.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	return http.StatusText(e.Status)
}

func NewAPIError(status int, messages ...string) *APIError {
	return &APIError{Status: status, Messages: messages}
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, messages []string) {
	RespondWithJSON(w, status, errorResponse{Errors: messages})
}

// RespondWithServiceError maps a service error to an HTTP response.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		messages := apiErr.Messages
		if len(messages) == 0 {
			messages = []string{http.StatusText(apiErr.Status)}
		}
		RespondWithError(w, apiErr.Status, messages)
		return
	}
	RespondWithError(w, http.StatusInternalServerError, []string{"INTERNAL_SERVER_ERROR"})
}
