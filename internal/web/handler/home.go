package handler

import (
	"net/http"

	"github.com/mcoot/linkboard/internal/web/middleware"
	"github.com/mcoot/linkboard/internal/web/templates/layout"
	"github.com/mcoot/linkboard/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	releaseID string
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(releaseID string) *HomeHandler {
	return &HomeHandler{releaseID: releaseID}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Title:     "Home",
			Flash:     middleware.GetFlash(r.Context()),
			ReleaseID: h.releaseID,
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Home(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
