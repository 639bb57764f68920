package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"explorewithme/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest      = "bad_request"
	ErrCodeUnauthorized    = "unauthorized"
	ErrCodeForbidden       = "forbidden"
	ErrCodeNotFound        = "not_found"
	ErrCodeConflict        = "conflict"
	ErrCodeTooManyRequests = "too_many_requests"
	ErrCodeInternalError   = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code      string   `json:"code"`
	Reason    string   `json:"reason,omitempty"`
	Message   string   `json:"message"`
	Errors    []string `json:"errors,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeError(w, statusCode, &APIError{Code: code, Message: message})
}

func writeError(w http.ResponseWriter, statusCode int, apiErr *APIError) {
	apiErr.Timestamp = domain.FormatDateTime(time.Now())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: nil, Error: apiErr})
}

var kindStatus = []struct {
	kind   error
	status int
	code   string
	reason string
}{
	{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, domain.ReasonNotFound},
	{domain.ErrConflict, http.StatusConflict, ErrCodeConflict, domain.ReasonConflict},
	{domain.ErrValidation, http.StatusBadRequest, ErrCodeBadRequest, domain.ReasonValidation},
	{domain.ErrForbidden, http.StatusForbidden, ErrCodeForbidden, ""},
}

// WriteDomainError maps err onto the envelope. Errors that are not domain errors
// are logged and reported as 500.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, k := range kindStatus {
		if !errors.Is(err, k.kind) {
			continue
		}
		apiErr := &APIError{Code: k.code, Reason: k.reason, Message: err.Error()}
		var derr *domain.Error
		if errors.As(err, &derr) {
			if derr.Reason != "" {
				apiErr.Reason = derr.Reason
			}
			apiErr.Message = derr.Message
			apiErr.Errors = derr.Details
		}
		writeError(w, k.status, apiErr)
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	writeError(w, http.StatusInternalServerError, &APIError{
		Code:    ErrCodeInternalError,
		Reason:  "Internal server error.",
		Message: http.StatusText(http.StatusInternalServerError),
	})
}
