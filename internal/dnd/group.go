// Package dnd models a set of drop zones sharing one move group, the way
// a pointer-driven sortable widget does: dragging moves an item between
// zones (never copies it) and zone callbacks observe the result.
package dnd

import (
	"context"
	"fmt"
	"time"

	"github.com/mcoot/linkboard/internal/model"
)

// Handler reacts to a drag event on a zone. The board passed in already
// reflects the move.
type Handler func(ctx context.Context, board *model.Board, ev model.DragEvent) error

// Options configures the callbacks for a zone. Nil callbacks are skipped.
type Options struct {
	// OnAdd fires when an item is dropped into this zone from another zone
	OnAdd Handler
	// OnEnd fires when a drag that started in this zone completes
	OnEnd Handler
}

// Group is a set of zones that items can be dragged between
type Group struct {
	name  string
	zones map[model.ZoneName]Options
	order []model.ZoneName
}

// NewGroup creates an empty group
func NewGroup(name string) *Group {
	return &Group{
		name:  name,
		zones: make(map[model.ZoneName]Options),
	}
}

// Name returns the group name
func (g *Group) Name() string {
	return g.name
}

// Register makes a zone a drop target of the group
func (g *Group) Register(zone model.ZoneName, opts Options) {
	if _, ok := g.zones[zone]; !ok {
		g.order = append(g.order, zone)
	}
	g.zones[zone] = opts
}

// Zones returns the registered zones in registration order
func (g *Group) Zones() []model.ZoneName {
	zones := make([]model.ZoneName, len(g.order))
	copy(zones, g.order)
	return zones
}

// Has reports whether a zone belongs to the group
func (g *Group) Has(zone model.ZoneName) bool {
	_, ok := g.zones[zone]
	return ok
}

// Apply moves an item and dispatches the resulting events.
//
// The item must sit at OldIndex in From. It is removed there and inserted
// in To at NewIndex, clamped to the zone bounds. Added is sent to To when
// the zones differ, then Ended is sent to From. The first handler error
// stops dispatch; the move itself is not rolled back.
func (g *Group) Apply(ctx context.Context, board *model.Board, mv model.Move, now time.Time) ([]model.DragEvent, error) {
	if !g.Has(mv.From) {
		return nil, fmt.Errorf("%w: %s is not in group %s", model.ErrZoneNotFound, mv.From, g.Name())
	}
	if !g.Has(mv.To) {
		return nil, fmt.Errorf("%w: %s is not in group %s", model.ErrZoneNotFound, mv.To, g.Name())
	}

	members := board.Zones[mv.From]
	if mv.OldIndex < 0 || mv.OldIndex >= len(members) || members[mv.OldIndex] != mv.Item {
		if zone, ok := board.ZoneOf(mv.Item); ok {
			return nil, fmt.Errorf("%w: %s at %s[%d], board has it in %s", model.ErrItemNotInZone, mv.Item, mv.From, mv.OldIndex, zone)
		}
		return nil, fmt.Errorf("%w: %s at %s[%d], not on board", model.ErrItemNotInZone, mv.Item, mv.From, mv.OldIndex)
	}

	board.RemoveAt(mv.From, mv.OldIndex)
	newIndex := board.Insert(mv.To, mv.NewIndex, mv.Item)
	board.UpdatedAt = now

	base := model.DragEvent{
		BoardID:   board.ID,
		Item:      mv.Item,
		From:      mv.From,
		To:        mv.To,
		OldIndex:  mv.OldIndex,
		NewIndex:  newIndex,
		Timestamp: now,
	}

	var events []model.DragEvent
	if !mv.IsReorder() {
		added := base
		added.Kind = model.DragAdded
		events = append(events, added)
	}
	ended := base
	ended.Kind = model.DragEnded
	events = append(events, ended)

	for _, ev := range events {
		if err := g.dispatch(ctx, board, ev); err != nil {
			return events, err
		}
	}
	return events, nil
}

func (g *Group) dispatch(ctx context.Context, board *model.Board, ev model.DragEvent) error {
	var h Handler
	switch ev.Kind {
	case model.DragAdded:
		h = g.zones[ev.To].OnAdd
	case model.DragEnded:
		h = g.zones[ev.From].OnEnd
	}
	if h == nil {
		return nil
	}
	return h(ctx, board, ev)
}
