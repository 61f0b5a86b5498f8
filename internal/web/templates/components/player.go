package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/linkboard/internal/model"
)

// TileClass is the base class carried by every player tile
const TileClass = "player-box"

// TileClasses returns the class list for a tile. Unknown sex values get no sex class.
func TileClasses(sex model.Sex) string {
	if sex.Valid() {
		return TileClass + " sex-" + string(sex)
	}
	return TileClass
}

// PlayerTile renders a single draggable player
func PlayerTile(p model.Player) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div id="`)
		sb.WriteString(templ.EscapeString(string(p.ID)))
		sb.WriteString(`" class="`)
		sb.WriteString(TileClasses(p.Sex))
		sb.WriteString(`">`)
		sb.WriteString(templ.EscapeString(p.Name))
		sb.WriteString(`</div>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// PlayerTiles renders tiles back to back in the given order
func PlayerTiles(players []model.Player) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range players {
			if err := PlayerTile(p).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// PlayerGroup renders the players that are linked together
func PlayerGroup(players []model.Player) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="player-group">`); err != nil {
			return err
		}
		if err := PlayerTiles(players).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
