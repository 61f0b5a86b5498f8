package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FlashMessage is a one-shot notice shown at the top of the next page
type FlashMessage struct {
	Type    string // success, error, info
	Message string
}

// PageData holds the fields every page needs
type PageData struct {
	Title     string
	Flash     *FlashMessage
	ReleaseID string
}

// Base wraps page content in the HTML document shell
func Base(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head>` +
			`<meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<meta name="release-id" content="` + templ.EscapeString(data.ReleaseID) + `">` +
			`<title>` + templ.EscapeString(data.Title) + ` - linkboard</title>` +
			`<link rel="stylesheet" href="/static/css/main.css">` +
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script>` +
			`<script src="https://unpkg.com/htmx-ext-sse@2.2.2/sse.js"></script>` +
			`<script src="https://cdn.jsdelivr.net/npm/sortablejs@1.15.6/Sortable.min.js"></script>` +
			`</head><body><main class="container">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if data.Flash != nil {
			flash := `<div class="flash flash-` + templ.EscapeString(data.Flash.Type) + `">` +
				templ.EscapeString(data.Flash.Message) + `</div>`
			if _, err := io.WriteString(w, flash); err != nil {
				return err
			}
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><script src="/static/js/main.js"></script></body></html>`)
		return err
	})
}
