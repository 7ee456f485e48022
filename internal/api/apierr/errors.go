package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boredgamers/tally/internal/model"
	"github.com/boredgamers/tally/internal/services/auth"
	"github.com/boredgamers/tally/internal/services/conversation"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidGameType    = "INVALID_GAME_TYPE"
	CodeMismatchedCount    = "MISMATCHED_COUNT"
	CodeDuplicatePlayer    = "DUPLICATE_PLAYER"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeAdjustmentNotFound = "ADJUSTMENT_NOT_FOUND"
	CodeNoConversation     = "NO_CONVERSATION"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError. Domain errors keep their
// own messages: they carry the offending input or both counts, which is
// exactly what the user needs to retry.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidGameType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGameType, err.Error()}}
	case errors.Is(err, model.ErrMismatchedCount):
		return &httpError{http.StatusBadRequest, APIError{CodeMismatchedCount, err.Error()}}
	case errors.Is(err, model.ErrDuplicatePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicatePlayer, "a player may only appear once per game"}}
	case errors.Is(err, model.ErrInvalidInput):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidInput, err.Error()}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrAdjustmentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAdjustmentNotFound, "Adjustment not found"}}
	case errors.Is(err, conversation.ErrNoConversation):
		return &httpError{http.StatusNotFound, APIError{CodeNoConversation, "No conversation in progress; start one first"}}
	case errors.Is(err, model.ErrStorageUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStorageUnavailable, "Storage unavailable, try again"}}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or missing token"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
