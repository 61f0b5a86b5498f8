package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/linkboard/internal/api/request"
	"github.com/mcoot/linkboard/internal/api/apierr"
	"github.com/mcoot/linkboard/internal/api/response"
	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/services/board"
	"github.com/mcoot/linkboard/internal/web/sse"
)

// BoardHandler handles board endpoints
type BoardHandler struct {
	controller  *board.Controller
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
	logger      *slog.Logger
}

// NewBoardHandler creates a new board handler. hubManager may be nil.
func NewBoardHandler(controller *board.Controller, hubManager *sse.HubManager, logger *slog.Logger) *BoardHandler {
	var broadcaster *sse.Broadcaster
	if hubManager != nil {
		broadcaster = sse.NewBroadcaster(hubManager, logger)
	}
	return &BoardHandler{
		controller:  controller,
		hubManager:  hubManager,
		broadcaster: broadcaster,
		logger:      logger.With(slog.String("component", "api-board")),
	}
}

func boardID(r *http.Request) model.BoardID {
	return model.BoardID(strings.ToUpper(mux.Vars(r)["id"]))
}

// Create handles POST /api/v1/boards
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, err := h.controller.CreateBoard(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/boards/"+string(b.ID), response.BoardFromModel(b))
}

// Get handles GET /api/v1/boards/{id}
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.controller.GetBoard(r.Context(), boardID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardFromModel(b))
}

// Delete handles DELETE /api/v1/boards/{id}
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := boardID(r)

	if _, err := h.controller.GetBoard(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if err := h.controller.DeleteBoard(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	// Viewers reload and land back on the home page
	if h.broadcaster != nil {
		h.broadcaster.BroadcastRefresh(id)
	}

	response.NoContent(w)
}

// Zone handles GET /api/v1/boards/{id}/zones/{zone}
func (h *BoardHandler) Zone(w http.ResponseWriter, r *http.Request) {
	zone := model.ZoneName(mux.Vars(r)["zone"])

	ids, err := h.controller.ListMembers(r.Context(), boardID(r), zone)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ZoneFromModel(zone, ids))
}

// Move handles POST /api/v1/boards/{id}/moves
func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Item == "" || req.From == "" || req.To == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("item, from and to are required"))
		return
	}
	if req.OldIndex == nil || req.NewIndex == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("old_index and new_index are required"))
		return
	}

	result, err := h.controller.Move(r.Context(), boardID(r), model.Move{
		Item:     model.PlayerID(req.Item),
		From:     model.ZoneName(req.From),
		To:       model.ZoneName(req.To),
		OldIndex: *req.OldIndex,
		NewIndex: *req.NewIndex,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResultFromModel(result))
}
