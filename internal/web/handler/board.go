package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/services/board"
	"github.com/mcoot/linkboard/internal/web/middleware"
	"github.com/mcoot/linkboard/internal/web/sse"
	"github.com/mcoot/linkboard/internal/web/templates/components"
	"github.com/mcoot/linkboard/internal/web/templates/layout"
	"github.com/mcoot/linkboard/internal/web/templates/pages"
)

// BoardHandler handles board pages, drops and the event stream
type BoardHandler struct {
	controller *board.Controller
	hubManager *sse.HubManager
	renderer   *sse.Renderer
	releaseID  string
	logger     *slog.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(controller *board.Controller, hubManager *sse.HubManager, releaseID string, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		controller: controller,
		hubManager: hubManager,
		renderer:   sse.NewRenderer(),
		releaseID:  releaseID,
		logger:     logger.With(slog.String("component", "web-board")),
	}
}

func boardIDFromRequest(r *http.Request) model.BoardID {
	return model.BoardID(strings.ToUpper(mux.Vars(r)["id"]))
}

// Create handles board creation
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, err := h.controller.CreateBoard(r.Context())
	if err != nil {
		h.logger.Error("failed to create board", slog.Any("error", err))
		middleware.SetFlash(w, middleware.FlashError, "Failed to create board")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Board created!")
	http.Redirect(w, r, "/boards/"+string(b.ID), http.StatusSeeOther)
}

// View renders the board page
func (h *BoardHandler) View(w http.ResponseWriter, r *http.Request) {
	id := boardIDFromRequest(r)

	b, err := h.controller.GetBoard(r.Context(), id)
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Board not found")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	names := h.controller.Zones()
	zones := make([]pages.ZoneView, 0, len(names))
	for _, zone := range names {
		players, err := h.controller.Registry().Resolve(b.Members(zone))
		if err != nil {
			h.logger.Error("failed to resolve zone",
				slog.String("board", string(id)),
				slog.String("zone", string(zone)),
				slog.Any("error", err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		zones = append(zones, pages.ZoneView{Name: zone, Players: players})
	}

	data := pages.BoardData{
		PageData: layout.PageData{
			Title:     "Board " + string(id),
			Flash:     middleware.GetFlash(r.Context()),
			ReleaseID: h.releaseID,
		},
		BoardID: id,
		Zones:   zones,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Board(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Zone renders a single zone fragment
func (h *BoardHandler) Zone(w http.ResponseWriter, r *http.Request) {
	id := boardIDFromRequest(r)
	zone := model.ZoneName(mux.Vars(r)["zone"])

	players, err := h.controller.ZonePlayers(r.Context(), id, zone)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrBoardNotFound):
			http.Error(w, "Board not found", http.StatusNotFound)
		case errors.Is(err, model.ErrZoneNotFound):
			http.Error(w, "Zone not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.Zone(id, zone, players).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Move applies a drop. htmx callers get the re-rendered zones back as
// out-of-band swaps; other viewers get them over SSE.
func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := boardIDFromRequest(r)
	boardURL := "/boards/" + string(id)

	mv, err := parseMoveForm(r)
	if err != nil {
		h.moveFailed(w, r, boardURL, http.StatusBadRequest, "Invalid move: "+err.Error())
		return
	}

	result, err := h.controller.Move(r.Context(), id, mv)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrBoardNotFound):
			h.moveFailed(w, r, "/", http.StatusNotFound, "Board not found")
		case errors.Is(err, model.ErrZoneNotFound), errors.Is(err, model.ErrItemNotInZone):
			h.moveFailed(w, r, boardURL, http.StatusConflict, "That move is no longer valid")
		default:
			h.logger.Error("move failed", slog.String("board", string(id)), slog.Any("error", err))
			h.moveFailed(w, r, boardURL, http.StatusInternalServerError, "Move failed")
		}
		return
	}

	if !middleware.IsHTMX(r) {
		http.Redirect(w, r, boardURL, http.StatusSeeOther)
		return
	}

	var body strings.Builder
	for _, render := range result.Renders {
		event, err := h.renderer.RenderZoneEvent(r.Context(), render.Zone, render.Players)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		body.WriteString(event.Data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body.String()))
}

// moveFailed reports a rejected drop. The dragged tile has already moved in
// the browser, so htmx callers are told to reload and resync.
func (h *BoardHandler) moveFailed(w http.ResponseWriter, r *http.Request, redirect string, status int, message string) {
	if middleware.IsHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
		http.Error(w, message, status)
		return
	}
	middleware.SetFlash(w, middleware.FlashError, message)
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

func parseMoveForm(r *http.Request) (model.Move, error) {
	if err := r.ParseForm(); err != nil {
		return model.Move{}, err
	}

	item := strings.TrimSpace(r.FormValue("item"))
	if item == "" {
		return model.Move{}, errors.New("item is required")
	}
	from := r.FormValue("from")
	to := r.FormValue("to")
	if from == "" || to == "" {
		return model.Move{}, errors.New("from and to are required")
	}

	oldIndex, err := strconv.Atoi(r.FormValue("old_index"))
	if err != nil {
		return model.Move{}, errors.New("old_index must be a number")
	}
	newIndex, err := strconv.Atoi(r.FormValue("new_index"))
	if err != nil {
		return model.Move{}, errors.New("new_index must be a number")
	}

	return model.Move{
		Item:     model.PlayerID(item),
		From:     model.ZoneName(from),
		To:       model.ZoneName(to),
		OldIndex: oldIndex,
		NewIndex: newIndex,
	}, nil
}

// Events handles the SSE connection for a board
func (h *BoardHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := boardIDFromRequest(r)

	if _, err := h.controller.GetBoard(r.Context(), id); err != nil {
		http.Error(w, "Board not found", http.StatusNotFound)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub)
}
