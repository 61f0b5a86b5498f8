// Package middleware holds the JSON API's request middleware.
package middleware

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/mcoot/linkboard/internal/api/apierr"
	"github.com/mcoot/linkboard/internal/middleware"
)

// Logging logs API requests under the api component
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "api")))
}

// Recovery answers a panicking API handler with an INTERNAL_ERROR body
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}

// JSONOnly rejects bodies that are not JSON on methods that carry one.
// An empty body is allowed so POST /boards can be sent bare.
func JSONOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength != 0 && r.Method != http.MethodGet && r.Method != http.MethodDelete {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !isJSON(ct) {
				apierr.WriteError(w, apierr.NewInvalidRequestError("Content-Type must be application/json"))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
