package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/web/templates/components"
	"github.com/mcoot/linkboard/internal/web/templates/layout"
)

// ZoneView pairs a zone with its resolved players
type ZoneView struct {
	Name    model.ZoneName
	Players []model.Player
}

// BoardData holds data for the board page
type BoardData struct {
	layout.PageData
	BoardID model.BoardID
	Zones   []ZoneView
}

// Board renders the columns and the link/unlink zones
func Board(data BoardData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(string(data.BoardID))
		open := `<div id="board" data-board="` + id + `" data-group="shared"` +
			` hx-ext="sse" sse-connect="/boards/` + id + `/events">` +
			`<h1>Board <span class="board-code">` + id + `</span></h1>` +
			`<div class="zones">`
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		for _, zv := range data.Zones {
			if err := components.Zone(data.BoardID, zv.Name, zv.Players).Render(ctx, w); err != nil {
				return err
			}
		}
		// Empty sinks for zone update events; the payloads are out-of-band swaps
		for _, zv := range data.Zones {
			sink := `<div hidden sse-swap="zone-` + templ.EscapeString(string(zv.Name)) + `" hx-swap="none"></div>`
			if _, err := io.WriteString(w, sink); err != nil {
				return err
			}
		}
		// A deleted board tells viewers to reload
		refresh := `<div hidden hx-trigger="sse:refresh" hx-get="/boards/` + id + `" hx-target="body"></div>`
		_, err := io.WriteString(w, refresh+`</div></div>`)
		return err
	})
	return layout.Base(data.PageData, body)
}
