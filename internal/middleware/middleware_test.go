package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	htmx := func(r *http.Request) slog.Attr {
		return slog.Bool("htmx", r.Header.Get("HX-Request") == "true")
	}
	h := Logging(logger, htmx)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"size":5`)
	assert.Contains(t, out, `"htmx":true`)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.NotContains(t, out, `"board"`)
}

func TestLoggingIncludesBoardRouteVar(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := mux.NewRouter()
	r.Use(Logging(logger))
	r.HandleFunc("/boards/{id}", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boards/ABC123", nil))

	assert.Contains(t, buf.String(), `"board":"ABC123"`)
}

func TestLoggingServerErrorsAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestRecoveryCallsPanicHandler(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	h := Recovery(logger, PlainPanicHandler)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecoveryReraisesAbort(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	h := Recovery(logger, PlainPanicHandler)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseWriter(rec)

	rw.Flush()
	assert.True(t, rec.Flushed)
	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Same(t, http.ResponseWriter(rec), rw.Unwrap())

	rw = NewResponseWriter(httptest.NewRecorder())
	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)
	assert.Equal(t, http.StatusNotFound, rw.Status())
}
