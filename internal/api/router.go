package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/linkboard/internal/api/handler"
	"github.com/mcoot/linkboard/internal/api/middleware"
	"github.com/mcoot/linkboard/internal/services/board"
	"github.com/mcoot/linkboard/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	BoardController *board.Controller
	HubManager      *sse.HubManager
	ReleaseID       string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	healthHandler := handler.NewHealthHandler(cfg.ReleaseID)
	playerHandler := handler.NewPlayerHandler(cfg.BoardController.Registry())
	boardHandler := handler.NewBoardHandler(cfg.BoardController, cfg.HubManager, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.JSONOnly)

	api.HandleFunc("/health", healthHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)

	boards := api.PathPrefix("/boards").Subrouter()
	boards.HandleFunc("", boardHandler.Create).Methods(http.MethodPost)
	boards.HandleFunc("/{id}", boardHandler.Get).Methods(http.MethodGet)
	boards.HandleFunc("/{id}", boardHandler.Delete).Methods(http.MethodDelete)
	boards.HandleFunc("/{id}/zones/{zone}", boardHandler.Zone).Methods(http.MethodGet)
	boards.HandleFunc("/{id}/moves", boardHandler.Move).Methods(http.MethodPost)

	return r
}
