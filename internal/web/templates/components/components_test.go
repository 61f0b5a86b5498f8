package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/services/registry"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestPlayerTileForRegistryPlayers(t *testing.T) {
	for _, p := range registry.Default().All() {
		t.Run(string(p.ID), func(t *testing.T) {
			html := render(t, PlayerTile(p))

			assert.Equal(t, 1, strings.Count(html, `id="`+string(p.ID)+`"`))

			tile := parse(t, html).Find("div").First()
			assert.True(t, tile.HasClass("player-box"))
			assert.True(t, tile.HasClass("sex-"+string(p.Sex)))
			assert.Equal(t, p.Name, tile.Text())
		})
	}
}

func TestPlayerTileMarkup(t *testing.T) {
	p := model.Player{ID: "laurenoakman", Name: "Lauren Oakman", Sex: model.SexFemale}

	assert.Equal(t,
		`<div id="laurenoakman" class="player-box sex-female">Lauren Oakman</div>`,
		render(t, PlayerTile(p)))
}

func TestPlayerTileSexClass(t *testing.T) {
	tests := []struct {
		sex      model.Sex
		expected string
	}{
		{model.SexMale, "player-box sex-male"},
		{model.SexFemale, "player-box sex-female"},
		{"other", "player-box"},
		{"", "player-box"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sex), func(t *testing.T) {
			html := render(t, PlayerTile(model.Player{ID: "p1", Name: "P", Sex: tt.sex}))
			class, ok := parse(t, html).Find("#p1").Attr("class")
			require.True(t, ok)
			assert.Equal(t, tt.expected, class)
			assert.NotContains(t, html, "sex-other")
		})
	}
}

func TestPlayerTileEscapesName(t *testing.T) {
	name := `<b>Tom & "Jerry"</b> 'n' <script>`
	html := render(t, PlayerTile(model.Player{ID: "tom", Name: name, Sex: model.SexMale}))

	assert.NotContains(t, html, "<b>")
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "& ")
	assert.Contains(t, html, "&lt;b&gt;Tom &amp; &#34;Jerry&#34;&lt;/b&gt;")

	// The browser sees the original text, not markup
	doc := parse(t, html)
	assert.Equal(t, name, doc.Find("#tom").Text())
	assert.Equal(t, 0, doc.Find("b").Length())
}

func TestPlayerTileEscapesID(t *testing.T) {
	html := render(t, PlayerTile(model.Player{ID: `x" onclick="evil()`, Name: "X"}))
	assert.NotContains(t, html, `onclick="evil()"`)

	tile := parse(t, html).Find(".player-box")
	assert.Equal(t, 1, tile.Length())
	_, hasHandler := tile.Attr("onclick")
	assert.False(t, hasHandler)
}

func TestPlayerGroup(t *testing.T) {
	players := registry.Default().All()
	doc := parse(t, render(t, PlayerGroup(players)))

	group := doc.Find(".player-group")
	require.Equal(t, 1, group.Length())
	assert.Equal(t, 2, group.Find(".player-box").Length())
}

func zoneIDs(doc *goquery.Document, zone model.ZoneName) []string {
	var ids []string
	doc.Find("#" + string(zone) + " .player-box").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids = append(ids, id)
	})
	return ids
}

func TestZoneRendersEmpty(t *testing.T) {
	doc := parse(t, render(t, Zone("ABC123", model.ZoneColumn2, nil)))

	container := doc.Find("#col2")
	require.Equal(t, 1, container.Length())
	assert.Empty(t, zoneIDs(doc, model.ZoneColumn2))
	assert.Equal(t, "Column 2", doc.Find("h2").Text())

	zone, _ := container.Attr("data-zone")
	assert.Equal(t, "col2", zone)
	board, _ := container.Attr("data-board")
	assert.Equal(t, "ABC123", board)
}

func TestZoneRendersInOrder(t *testing.T) {
	players := []model.Player{
		{ID: "a", Name: "A", Sex: model.SexMale},
		{ID: "b", Name: "B", Sex: model.SexFemale},
		{ID: "c", Name: "C", Sex: model.SexMale},
	}
	doc := parse(t, render(t, Zone("ABC123", model.ZoneColumn1, players)))

	assert.Equal(t, []string{"a", "b", "c"}, zoneIDs(doc, model.ZoneColumn1))
	assert.Equal(t, 0, doc.Find(".player-group").Length())
}

func TestLinkZoneRendersGroup(t *testing.T) {
	players := []model.Player{{ID: "laurenoakman", Name: "Lauren Oakman", Sex: model.SexFemale}}
	doc := parse(t, render(t, Zone("ABC123", model.ZoneLink, players)))

	assert.Equal(t, 1, doc.Find("#linkBox .player-group").Length())
	assert.Equal(t, []string{"laurenoakman"}, zoneIDs(doc, model.ZoneLink))
}

func TestEmptyLinkZoneHasNoGroup(t *testing.T) {
	doc := parse(t, render(t, Zone("ABC123", model.ZoneLink, nil)))
	assert.Equal(t, 0, doc.Find(".player-group").Length())
}
