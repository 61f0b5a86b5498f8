package sse

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/services/registry"
	"github.com/mcoot/linkboard/internal/testutil"
)

func TestRenderer_LinkZoneEvent(t *testing.T) {
	event, err := NewRenderer().RenderZoneEvent(context.Background(), model.ZoneLink, registry.SamplePlayers()[1:])
	require.NoError(t, err)

	assert.Equal(t, "zone-linkBox", event.Name)
	assert.Regexp(t, `^<div id="linkBox" hx-swap-oob="innerHTML"><div class="player-group">`, event.Data)
	assert.Contains(t, event.Data, `id="laurenoakman"`)
	assert.NotContains(t, event.Data, `id="chrisoakman"`)
}

func TestRenderer_ColumnEvent(t *testing.T) {
	event, err := NewRenderer().RenderZoneEvent(context.Background(), model.ZoneColumn2, registry.SamplePlayers())
	require.NoError(t, err)

	assert.Equal(t, "zone-col2", event.Name)
	assert.NotContains(t, event.Data, "player-group")
	assert.Less(t,
		strings.Index(event.Data, "chrisoakman"),
		strings.Index(event.Data, "laurenoakman"), "tiles keep zone order")
}

func TestRenderer_EmptyZone(t *testing.T) {
	event, err := NewRenderer().RenderZoneEvent(context.Background(), model.ZoneUnlink, nil)
	require.NoError(t, err)
	assert.Equal(t, `<div id="unlinkBox" hx-swap-oob="innerHTML"></div>`, event.Data)
}

func TestBroadcaster_RenderZone(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	t.Cleanup(m.CloseAll)
	c := NewClient()
	m.GetOrCreateHub("ABC123").Register(c)

	NewBroadcaster(m, testutil.NopLogger()).
		RenderZone(context.Background(), "ABC123", model.ZoneUnlink, registry.SamplePlayers()[:1])

	frames := drain(c)
	require.Len(t, frames, 1)
	assert.Contains(t, frames[0], "event: zone-unlinkBox\n")
	assert.Contains(t, frames[0], `id="unlinkBox" hx-swap-oob="innerHTML"`)
	assert.Contains(t, frames[0], "Chris Oakman")
}

func TestBroadcaster_NoViewers(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())

	NewBroadcaster(m, testutil.NopLogger()).RenderZone(context.Background(), "NOBODY", model.ZoneLink, nil)

	assert.Nil(t, m.GetHub("NOBODY"), "rendering never creates a hub")
}

func TestBroadcaster_BroadcastRefresh(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	t.Cleanup(m.CloseAll)
	c := NewClient()
	m.GetOrCreateHub("REFR01").Register(c)

	NewBroadcaster(m, testutil.NopLogger()).BroadcastRefresh("REFR01")

	assert.Equal(t, []string{"event: refresh\ndata: refresh\n\n"}, drain(c))
}
