package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/linkboard/internal/web/templates/layout"
)

// HomeData holds data for the home page
type HomeData struct {
	layout.PageData
}

// Home renders the landing page with a button to start a board
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>linkboard</h1>`+
			`<p>Drag players between columns, then drop them on Link to group them.</p>`+
			`<form method="post" action="/boards"><button type="submit">New board</button></form>`)
		return err
	})
	return layout.Base(data.PageData, body)
}
