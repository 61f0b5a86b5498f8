// Package apierr maps domain errors onto JSON API error responses.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/linkboard/internal/model"
)

// APIError is the body of an error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodePlayerNotFound = "PLAYER_NOT_FOUND"
	CodeBoardNotFound  = "BOARD_NOT_FOUND"
	CodeZoneNotFound   = "ZONE_NOT_FOUND"
	CodeItemNotInZone  = "ITEM_NOT_IN_ZONE"
	CodeInternalError  = "INTERNAL_ERROR"
)

// mapping ties a sentinel to its response. With detail set, a wrapped
// error's own text is used since it names the offending zone or item.
type mapping struct {
	target  error
	status  int
	code    string
	message string
	detail  bool
}

var mappings = []mapping{
	{model.ErrPlayerNotFound, http.StatusNotFound, CodePlayerNotFound, "Player not found", true},
	{model.ErrBoardNotFound, http.StatusNotFound, CodeBoardNotFound, "Board not found", false},
	{model.ErrZoneNotFound, http.StatusNotFound, CodeZoneNotFound, "Zone not found", true},
	{model.ErrItemNotInZone, http.StatusConflict, CodeItemNotInZone, "Item is not at that position in the source zone", true},
}

var internal = APIError{CodeInternalError, "Internal server error"}

// requestError is an error raised by the API layer itself
type requestError struct {
	status int
	body   APIError
}

func (e *requestError) Error() string {
	return e.body.Message
}

// NewInvalidRequestError creates a 400 error with the given message
func NewInvalidRequestError(message string) error {
	return &requestError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates a 500 error
func NewInternalError() error {
	return &requestError{http.StatusInternalServerError, internal}
}

// Resolve returns the status and body for err
func Resolve(err error) (int, APIError) {
	var re *requestError
	if errors.As(err, &re) {
		return re.status, re.body
	}

	for _, m := range mappings {
		if !errors.Is(err, m.target) {
			continue
		}
		msg := m.message
		if m.detail && err != m.target {
			msg = err.Error()
		}
		return m.status, APIError{Code: m.code, Message: msg}
	}
	return http.StatusInternalServerError, internal
}

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	status, _ := Resolve(err)
	return status
}

// WriteError writes err as a JSON error response
func WriteError(w http.ResponseWriter, err error) {
	status, body := Resolve(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: body})
}
