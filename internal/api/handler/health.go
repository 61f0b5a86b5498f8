package handler

import (
	"net/http"

	"github.com/mcoot/linkboard/internal/api/response"
)

// HealthHandler reports liveness and the running release
type HealthHandler struct {
	releaseID string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(releaseID string) *HealthHandler {
	return &HealthHandler{releaseID: releaseID}
}

// Get handles GET /api/v1/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok", ReleaseID: h.releaseID})
}
