package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/linkboard/internal/middleware"
)

// Logging logs web requests, marking those sent by htmx
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "web")), htmxAttr)
}

func htmxAttr(r *http.Request) slog.Attr {
	return slog.Bool("htmx", IsHTMX(r))
}
