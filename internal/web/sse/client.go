package sse

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	pingPeriod     = 30 * time.Second
	sendBufferSize = 256
)

// Client is one open event stream.
type Client struct {
	id          string
	send        chan []byte
	connectedAt time.Time
}

func NewClient() *Client {
	return &Client{
		id:          "viewer-" + uuid.NewString(),
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

func (c *Client) ID() string {
	return c.id
}

// Messages yields encoded frames until the client is unregistered or its hub closes.
func (c *Client) Messages() <-chan []byte {
	return c.send
}

// ServeSSE streams hub events to w until the request ends or the hub lets go
// of the client.
func ServeSSE(w http.ResponseWriter, r *http.Request, hub *Hub) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	client := NewClient()
	hub.Register(client)
	defer hub.Unregister(client)

	client.pump(r.Context(), w, flusher.Flush, pingPeriod)
}

func (c *Client) pump(ctx context.Context, w io.Writer, flush func(), ping time.Duration) {
	write := func(frames ...[]byte) bool {
		for _, f := range frames {
			if _, err := w.Write(f); err != nil {
				return false
			}
		}
		flush()
		return true
	}

	if !write(retryFrame, connectedFrame) {
		return
	}

	ticker := time.NewTicker(ping)
	defer ticker.Stop()

	for {
		select {
		case frame, ok := <-c.send:
			if !ok || !write(frame) {
				return
			}
		case <-ticker.C:
			if !write(keepaliveFrame) {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
