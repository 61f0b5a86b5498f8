package sse

import (
	"context"
	"log/slog"

	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/services/board"
)

// Broadcaster is the board controller's ZoneRenderer: it pushes each zone
// re-render to the board's live viewers.
type Broadcaster struct {
	hubs     *HubManager
	renderer *Renderer
	logger   *slog.Logger
}

var _ board.ZoneRenderer = (*Broadcaster)(nil)

func NewBroadcaster(hubs *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubs:     hubs,
		renderer: NewRenderer(),
		logger:   logger.With(slog.String("component", "sse-broadcaster")),
	}
}

func (b *Broadcaster) RenderZone(ctx context.Context, boardID model.BoardID, zone model.ZoneName, players []model.Player) {
	hub := b.hubs.GetHub(boardID)
	if hub == nil {
		return
	}

	event, err := b.renderer.RenderZoneEvent(ctx, zone, players)
	if err != nil {
		b.logger.Error("sse failed to render zone",
			slog.String("board", string(boardID)),
			slog.String("zone", string(zone)),
			slog.Any("error", err))
		return
	}
	hub.Publish(event)
}

// BroadcastRefresh makes viewers reload the board (hx-trigger="sse:refresh").
func (b *Broadcaster) BroadcastRefresh(boardID model.BoardID) {
	if hub := b.hubs.GetHub(boardID); hub != nil {
		hub.Publish(Event{Name: RefreshEvent, Data: "refresh"})
	}
}
