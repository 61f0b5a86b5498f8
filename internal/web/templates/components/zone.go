package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/linkboard/internal/model"
)

// ZoneItems renders the contents of a zone container. Link zone members
// are shown as one player group.
func ZoneItems(zone model.ZoneName, players []model.Player) templ.Component {
	if zone == model.ZoneLink && len(players) > 0 {
		return PlayerGroup(players)
	}
	return PlayerTiles(players)
}

// Zone renders a titled drop zone. The inner container carries the zone
// name as its id so SSE swaps can replace just its contents.
func Zone(boardID model.BoardID, zone model.ZoneName, players []model.Player) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := templ.EscapeString(string(zone))
		head := `<section class="zone zone-` + name + `">` +
			`<h2>` + templ.EscapeString(model.ZoneTitle(zone)) + `</h2>` +
			`<div id="` + name + `" class="drop-zone" data-zone="` + name +
			`" data-board="` + templ.EscapeString(string(boardID)) + `">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := ZoneItems(zone, players).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}
