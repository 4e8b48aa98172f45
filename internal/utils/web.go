package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/feedboard-dev/feedboard/internal/api"
	"github.com/feedboard-dev/feedboard/internal/domain"
	"github.com/feedboard-dev/feedboard/internal/logger"
)

// WriteError renders err as the canonical {code, message} JSON body with the
// status mapped from the error code. Unclassified errors are masked.
func WriteError(w http.ResponseWriter, err error) {
	status := domain.StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		message = "internal error"
	}
	WriteJSON(w, status, api.ErrorResponse{Code: domain.CodeOf(err), Message: message})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("Failed to encode response", "error", err)
	}
}

// DecodeValidate decodes the request body into "body" (must be a pointer)
// and validates it against its struct tags.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("Failed to decode request body", "error", err)
		return domain.ErrInvalidRequestBody
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("Request body failed validation", "error", err)
		return domain.ErrMissingRequiredFields
	}
	return nil
}
