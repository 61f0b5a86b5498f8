package dnd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/linkboard/internal/model"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type recorder struct {
	calls []string
}

func (r *recorder) handler(label string) Handler {
	return func(_ context.Context, _ *model.Board, ev model.DragEvent) error {
		r.calls = append(r.calls, label+":"+string(ev.Kind)+":"+string(ev.Item))
		return nil
	}
}

func newTestGroup(rec *recorder) *Group {
	g := NewGroup("shared")
	for _, z := range model.AllZones() {
		g.Register(z, Options{})
	}
	g.Register(model.ZoneLink, Options{
		OnAdd: rec.handler("link-add"),
		OnEnd: rec.handler("link-end"),
	})
	return g
}

func newTestBoard() *model.Board {
	b := model.NewBoard("ABC123", testNow.Add(-time.Hour))
	b.Insert(model.ZoneColumn1, 0, "a")
	b.Insert(model.ZoneColumn1, 1, "b")
	b.Insert(model.ZoneColumn1, 2, "c")
	return b
}

func TestRegisterKeepsOrder(t *testing.T) {
	g := newTestGroup(&recorder{})
	assert.Equal(t, model.AllZones(), g.Zones())
	assert.Equal(t, "shared", g.Name())
}

func TestApplyMovesBetweenZones(t *testing.T) {
	rec := &recorder{}
	g := newTestGroup(rec)
	b := newTestBoard()

	events, err := g.Apply(context.Background(), b, model.Move{
		Item: "b", From: model.ZoneColumn1, To: model.ZoneLink, OldIndex: 1, NewIndex: 0,
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, []model.PlayerID{"a", "c"}, b.Members(model.ZoneColumn1))
	assert.Equal(t, []model.PlayerID{"b"}, b.Members(model.ZoneLink))
	assert.Equal(t, testNow, b.UpdatedAt)

	require.Len(t, events, 2)
	assert.Equal(t, model.DragAdded, events[0].Kind)
	assert.Equal(t, model.DragEnded, events[1].Kind)
	assert.Equal(t, model.BoardID("ABC123"), events[0].BoardID)

	// Ended fires on the source zone, which has no handler here
	assert.Equal(t, []string{"link-add:added:b"}, rec.calls)
}

func TestApplyReorderWithinLinkZone(t *testing.T) {
	rec := &recorder{}
	g := newTestGroup(rec)
	b := model.NewBoard("ABC123", testNow)
	b.Insert(model.ZoneLink, 0, "a")
	b.Insert(model.ZoneLink, 1, "b")

	events, err := g.Apply(context.Background(), b, model.Move{
		Item: "a", From: model.ZoneLink, To: model.ZoneLink, OldIndex: 0, NewIndex: 1,
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, []model.PlayerID{"b", "a"}, b.Members(model.ZoneLink))
	require.Len(t, events, 1)
	assert.Equal(t, model.DragEnded, events[0].Kind)
	assert.Equal(t, []string{"link-end:ended:a"}, rec.calls)
}

func TestApplyOutOfLinkZoneFiresEnd(t *testing.T) {
	rec := &recorder{}
	g := newTestGroup(rec)
	b := model.NewBoard("ABC123", testNow)
	b.Insert(model.ZoneLink, 0, "a")

	_, err := g.Apply(context.Background(), b, model.Move{
		Item: "a", From: model.ZoneLink, To: model.ZoneUnlink, OldIndex: 0, NewIndex: 0,
	}, testNow)
	require.NoError(t, err)

	assert.Empty(t, b.Members(model.ZoneLink))
	assert.Equal(t, []model.PlayerID{"a"}, b.Members(model.ZoneUnlink))
	assert.Equal(t, []string{"link-end:ended:a"}, rec.calls)
}

func TestApplyClampsNewIndex(t *testing.T) {
	g := newTestGroup(&recorder{})
	b := newTestBoard()
	b.Insert(model.ZoneColumn2, 0, "x")

	events, err := g.Apply(context.Background(), b, model.Move{
		Item: "a", From: model.ZoneColumn1, To: model.ZoneColumn2, OldIndex: 0, NewIndex: 42,
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, []model.PlayerID{"x", "a"}, b.Members(model.ZoneColumn2))
	assert.Equal(t, 1, events[0].NewIndex)
}

func TestApplyItemAppearsInExactlyOneZone(t *testing.T) {
	g := newTestGroup(&recorder{})
	b := newTestBoard()

	_, err := g.Apply(context.Background(), b, model.Move{
		Item: "c", From: model.ZoneColumn1, To: model.ZoneColumn3, OldIndex: 2, NewIndex: 0,
	}, testNow)
	require.NoError(t, err)

	count := 0
	for _, z := range model.AllZones() {
		for _, id := range b.Members(z) {
			if id == "c" {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)
}

func TestApplyRejectsUnknownZone(t *testing.T) {
	g := newTestGroup(&recorder{})
	b := newTestBoard()

	_, err := g.Apply(context.Background(), b, model.Move{
		Item: "a", From: model.ZoneColumn1, To: "bogus", OldIndex: 0,
	}, testNow)
	assert.ErrorIs(t, err, model.ErrZoneNotFound)

	_, err = g.Apply(context.Background(), b, model.Move{
		Item: "a", From: "bogus", To: model.ZoneColumn1, OldIndex: 0,
	}, testNow)
	assert.ErrorIs(t, err, model.ErrZoneNotFound)

	assert.Equal(t, []model.PlayerID{"a", "b", "c"}, b.Members(model.ZoneColumn1))
}

func TestApplyRejectsWrongPosition(t *testing.T) {
	g := newTestGroup(&recorder{})
	b := newTestBoard()

	tests := []struct {
		name string
		move model.Move
	}{
		{"wrong item at index", model.Move{Item: "a", From: model.ZoneColumn1, To: model.ZoneLink, OldIndex: 1}},
		{"negative index", model.Move{Item: "a", From: model.ZoneColumn1, To: model.ZoneLink, OldIndex: -1}},
		{"index past end", model.Move{Item: "a", From: model.ZoneColumn1, To: model.ZoneLink, OldIndex: 3}},
		{"item in another zone", model.Move{Item: "a", From: model.ZoneColumn2, To: model.ZoneLink, OldIndex: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Apply(context.Background(), b, tt.move, testNow)
			assert.ErrorIs(t, err, model.ErrItemNotInZone)
			assert.Equal(t, []model.PlayerID{"a", "b", "c"}, b.Members(model.ZoneColumn1))
			assert.Empty(t, b.Members(model.ZoneLink))
		})
	}
}

func TestApplyErrorsNameTheGroupAndZone(t *testing.T) {
	g := newTestGroup(&recorder{})

	tests := []struct {
		name string
		move model.Move
		want error
		msg  string
	}{
		{
			name: "unknown target zone",
			move: model.Move{Item: "a", From: model.ZoneColumn1, To: "col9", OldIndex: 0},
			want: model.ErrZoneNotFound,
			msg:  "col9 is not in group shared",
		},
		{
			name: "item moved elsewhere",
			move: model.Move{Item: "a", From: model.ZoneColumn2, To: model.ZoneLink, OldIndex: 0},
			want: model.ErrItemNotInZone,
			msg:  "a at col2[0], board has it in col1",
		},
		{
			name: "item not on board",
			move: model.Move{Item: "zz", From: model.ZoneColumn1, To: model.ZoneLink, OldIndex: 0},
			want: model.ErrItemNotInZone,
			msg:  "zz at col1[0], not on board",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Apply(context.Background(), newTestBoard(), tt.move, testNow)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestApplyStopsOnHandlerError(t *testing.T) {
	g := NewGroup("shared")
	g.Register(model.ZoneColumn1, Options{
		OnEnd: func(context.Context, *model.Board, model.DragEvent) error {
			t.Fatal("OnEnd must not run after OnAdd failed")
			return nil
		},
	})
	boom := errors.New("boom")
	g.Register(model.ZoneLink, Options{
		OnAdd: func(context.Context, *model.Board, model.DragEvent) error { return boom },
	})
	b := newTestBoard()

	events, err := g.Apply(context.Background(), b, model.Move{
		Item: "a", From: model.ZoneColumn1, To: model.ZoneLink, OldIndex: 0,
	}, testNow)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, events, 2)
	assert.Equal(t, []model.PlayerID{"a"}, b.Members(model.ZoneLink))
}

func TestHandlerSeesAppliedMove(t *testing.T) {
	g := NewGroup("shared")
	g.Register(model.ZoneColumn1, Options{})
	var seen []model.PlayerID
	g.Register(model.ZoneLink, Options{
		OnAdd: func(_ context.Context, b *model.Board, _ model.DragEvent) error {
			seen = b.Members(model.ZoneLink)
			return nil
		},
	})
	b := newTestBoard()

	_, err := g.Apply(context.Background(), b, model.Move{
		Item: "b", From: model.ZoneColumn1, To: model.ZoneLink, OldIndex: 1,
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, []model.PlayerID{"b"}, seen)
}

func TestApplyEventPayloads(t *testing.T) {
	g := newTestGroup(&recorder{})
	b := newTestBoard()

	events, err := g.Apply(context.Background(), b, model.Move{
		Item: "c", From: model.ZoneColumn1, To: model.ZoneColumn3, OldIndex: 2, NewIndex: 7,
	}, testNow)
	require.NoError(t, err)

	base := model.DragEvent{
		BoardID: "ABC123", Item: "c", From: model.ZoneColumn1, To: model.ZoneColumn3,
		OldIndex: 2, NewIndex: 0, Timestamp: testNow,
	}
	added, ended := base, base
	added.Kind = model.DragAdded
	ended.Kind = model.DragEnded

	if diff := cmp.Diff([]model.DragEvent{added, ended}, events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
