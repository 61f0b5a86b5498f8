package model

import (
	"slices"
	"time"
)

// BoardID is a short human-readable code identifying a board
type BoardID string

// Board holds the zone membership for one drag-and-drop session.
// Each item appears in at most one zone.
type Board struct {
	ID        BoardID
	Zones     map[ZoneName][]PlayerID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBoard creates a board with every zone present and empty
func NewBoard(id BoardID, now time.Time) *Board {
	zones := make(map[ZoneName][]PlayerID, len(AllZones()))
	for _, z := range AllZones() {
		zones[z] = []PlayerID{}
	}
	return &Board{
		ID:        id,
		Zones:     zones,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Members returns the ordered items of a zone, top to bottom.
// An empty or unknown zone yields an empty slice.
func (b *Board) Members(zone ZoneName) []PlayerID {
	members := b.Zones[zone]
	result := make([]PlayerID, len(members))
	copy(result, members)
	return result
}

// ZoneOf returns the zone holding the item, or false if it is not on the board
func (b *Board) ZoneOf(id PlayerID) (ZoneName, bool) {
	for _, z := range AllZones() {
		if slices.Contains(b.Zones[z], id) {
			return z, true
		}
	}
	return "", false
}

// Insert places an item into a zone at the given index, clamped to the zone bounds
func (b *Board) Insert(zone ZoneName, index int, id PlayerID) int {
	members := b.Zones[zone]
	index = max(0, min(index, len(members)))
	b.Zones[zone] = slices.Insert(members, index, id)
	return index
}

// RemoveAt removes and returns the item at index in a zone
func (b *Board) RemoveAt(zone ZoneName, index int) (PlayerID, bool) {
	members := b.Zones[zone]
	if index < 0 || index >= len(members) {
		return "", false
	}
	id := members[index]
	b.Zones[zone] = slices.Delete(members, index, index+1)
	return id, true
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	zones := make(map[ZoneName][]PlayerID, len(b.Zones))
	for z, members := range b.Zones {
		zones[z] = slices.Clone(members)
		if zones[z] == nil {
			zones[z] = []PlayerID{}
		}
	}
	return &Board{
		ID:        b.ID,
		Zones:     zones,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
