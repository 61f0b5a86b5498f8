package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/linkboard/internal/api/apierr"
	"github.com/mcoot/linkboard/internal/api/response"
	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/services/registry"
)

// PlayerHandler serves the player registry
type PlayerHandler struct {
	registry *registry.Registry
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(reg *registry.Registry) *PlayerHandler {
	return &PlayerHandler{registry: reg}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.PlayersFromModel(h.registry.All()))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.registry.Get(id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
