package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/linkboard/internal/services/board"
	"github.com/mcoot/linkboard/internal/web/handler"
	"github.com/mcoot/linkboard/internal/web/middleware"
	"github.com/mcoot/linkboard/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	BoardController *board.Controller
	HubManager      *sse.HubManager
	StaticDir       string // Path to static files directory
	ReleaseID       string
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Create SSE hub manager if not provided
	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}

	homeHandler := handler.NewHomeHandler(cfg.ReleaseID)
	boardHandler := handler.NewBoardHandler(cfg.BoardController, hubManager, cfg.ReleaseID, cfg.Logger)

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.Flash())
	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/boards", boardHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/boards/{id}", boardHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/boards/{id}/moves", boardHandler.Move).Methods(http.MethodPost)

	// Fragments and streams skip the flash cookie so they never consume it
	r.HandleFunc("/boards/{id}/zones/{zone}", boardHandler.Zone).Methods(http.MethodGet)
	r.HandleFunc("/boards/{id}/events", boardHandler.Events).Methods(http.MethodGet)

	return r
}
