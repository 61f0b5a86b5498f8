package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mcoot/linkboard/internal/web/templates/layout"
)

// Flash message types, used as the CSS modifier flash-<type>
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")
	flashMaxAge     = 60
)

// GetFlash returns the flash message read for this request, or nil
func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash queues a message for the next page the browser loads
func SetFlash(w http.ResponseWriter, flashType, message string) {
	http.SetCookie(w, flashCookie(encodeFlash(flashType, message), flashMaxAge))
}

// Flash reads the queued flash message into the request context and
// clears the cookie so it is shown once
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *layout.FlashMessage
			if cookie, err := r.Cookie(flashCookieName); err == nil && cookie.Value != "" {
				flash = decodeFlash(cookie.Value)
				http.SetCookie(w, flashCookie("", -1))
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func flashCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// encodeFlash query-encodes the message so it survives as a cookie value
func encodeFlash(flashType, message string) string {
	return url.Values{"t": {flashType}, "m": {message}}.Encode()
}

func decodeFlash(value string) *layout.FlashMessage {
	v, err := url.ParseQuery(value)
	if err != nil || v.Get("m") == "" {
		return nil
	}
	flashType := v.Get("t")
	if flashType == "" {
		flashType = FlashInfo
	}
	return &layout.FlashMessage{Type: flashType, Message: v.Get("m")}
}
