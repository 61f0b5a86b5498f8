package sse

import (
	"context"
	"strings"

	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/web/templates/components"
)

// ZoneEventName is the event a zone's re-renders travel on, e.g. "zone-linkBox".
func ZoneEventName(zone model.ZoneName) string {
	return "zone-" + string(zone)
}

// Renderer turns zone contents into out-of-band swap fragments.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderZoneEvent renders the zone's tiles wrapped so htmx replaces the
// children of the zone container wherever the fragment lands.
func (r *Renderer) RenderZoneEvent(ctx context.Context, zone model.ZoneName, players []model.Player) (Event, error) {
	var b strings.Builder
	b.WriteString(`<div id="` + string(zone) + `" hx-swap-oob="innerHTML">`)
	if err := components.ZoneItems(zone, players).Render(ctx, &b); err != nil {
		return Event{}, err
	}
	b.WriteString(`</div>`)
	return Event{Name: ZoneEventName(zone), Data: b.String()}, nil
}
