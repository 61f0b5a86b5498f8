package sse

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/linkboard/internal/model"
)

// Hub fans events out to every client viewing one board. A slow client never
// blocks a publish: frames that do not fit in its buffer are dropped.
type Hub struct {
	boardID model.BoardID
	logger  *slog.Logger

	mu      sync.RWMutex
	clients map[*Client]struct{}
	closed  bool
}

func NewHub(boardID model.BoardID, logger *slog.Logger) *Hub {
	return &Hub{
		boardID: boardID,
		logger:  logger.With(slog.String("board", string(boardID))),
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) BoardID() model.BoardID {
	return h.boardID
}

// Register attaches a client. Registering on a closed hub closes the client
// straight away so its stream ends.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(c.send)
		return
	}
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("sse client registered", slog.String("client_id", c.id), slog.Int("total_clients", n))
}

// Unregister detaches a client and closes its queue. Unknown clients are ignored.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	close(c.send)
	n := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("sse client unregistered",
		slog.String("client_id", c.id),
		slog.Duration("connection_duration", time.Since(c.connectedAt)),
		slog.Int("total_clients", n))
}

// Publish queues an event for every registered client.
func (h *Hub) Publish(e Event) {
	frame := e.Encode()

	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0
	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		h.logger.Warn("sse event dropped for slow clients",
			slog.String("event", e.Name),
			slog.Int("dropped", dropped),
			slog.Int("total_clients", len(h.clients)))
	}
}

// Close disconnects every client. It is safe to call more than once.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		close(c.send)
	}
	h.logger.Info("sse hub closed", slog.Int("disconnected_clients", len(h.clients)))
	clear(h.clients)
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HubManager owns one hub per board that currently has (or recently had) viewers.
type HubManager struct {
	logger *slog.Logger

	mu   sync.Mutex
	hubs map[model.BoardID]*Hub
}

func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		logger: logger.With(slog.String("component", "sse")),
		hubs:   make(map[model.BoardID]*Hub),
	}
}

func (m *HubManager) GetOrCreateHub(boardID model.BoardID) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	hub, ok := m.hubs[boardID]
	if !ok {
		hub = NewHub(boardID, m.logger)
		m.hubs[boardID] = hub
	}
	return hub
}

// GetHub returns nil when nobody is watching the board.
func (m *HubManager) GetHub(boardID model.BoardID) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hubs[boardID]
}

func (m *HubManager) RemoveHub(boardID model.BoardID) {
	m.mu.Lock()
	hub, ok := m.hubs[boardID]
	delete(m.hubs, boardID)
	m.mu.Unlock()

	if ok {
		hub.Close()
		m.logger.Info("sse hub removed", slog.String("board", string(boardID)))
	}
}

// CleanupEmptyHubs drops hubs without clients.
func (m *HubManager) CleanupEmptyHubs() {
	m.mu.Lock()
	var idle []*Hub
	for id, hub := range m.hubs {
		if hub.ClientCount() == 0 {
			idle = append(idle, hub)
			delete(m.hubs, id)
		}
	}
	m.mu.Unlock()

	for _, hub := range idle {
		hub.Close()
	}
	if len(idle) > 0 {
		m.logger.Info("sse empty hubs cleaned up", slog.Int("removed", len(idle)))
	}
}

func (m *HubManager) HubCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.hubs)
}

// CloseAll disconnects every viewer of every board.
func (m *HubManager) CloseAll() {
	m.mu.Lock()
	hubs := m.hubs
	m.hubs = make(map[model.BoardID]*Hub)
	m.mu.Unlock()

	for _, hub := range hubs {
		hub.Close()
	}
}

// RunCleanup calls CleanupEmptyHubs every interval until ctx is done.
func (m *HubManager) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CleanupEmptyHubs()
		}
	}
}
