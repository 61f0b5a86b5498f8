package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/linkboard/internal/middleware"
)

const errorPage = `<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
<h1>Internal Server Error</h1>
<p>Something went wrong while loading the board.</p>
<p><a href="/">Return to home</a></p>
</body>
</html>`

// Recovery renders an error page when a web handler panics. htmx requests
// get a full page refresh instead so a half-applied swap is not left behind.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	if IsHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(errorPage))
}
