package response

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/linkboard/internal/api/apierr"
)

// JSON encodes data before writing anything, so an encoding failure still
// produces a well-formed 500 instead of a truncated body
func JSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// Created writes a 201 pointing at the new resource
func Created(w http.ResponseWriter, location string, data any) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusCreated, data)
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
