package response

import (
	"time"

	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/services/board"
)

// Player represents a player in API responses
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:   string(p.ID),
		Name: p.Name,
		Sex:  string(p.Sex),
	}
}

// PlayersFromModel converts a slice of players, never returning nil
func PlayersFromModel(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Zone represents a zone's ordered membership
type Zone struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// ZoneFromModel converts a zone's member ids
func ZoneFromModel(name model.ZoneName, ids []model.PlayerID) Zone {
	members := make([]string, len(ids))
	for i, id := range ids {
		members[i] = string(id)
	}
	return Zone{Name: string(name), Members: members}
}

// Board represents a board in API responses. Zones are listed in display order.
type Board struct {
	ID        string    `json:"id"`
	Zones     []Zone    `json:"zones"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoardFromModel converts model.Board
func BoardFromModel(b *model.Board) Board {
	zones := make([]Zone, 0, len(model.AllZones()))
	for _, zone := range model.AllZones() {
		zones = append(zones, ZoneFromModel(zone, b.Members(zone)))
	}
	return Board{
		ID:        string(b.ID),
		Zones:     zones,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// DragEvent represents a drag lifecycle event fired by a move
type DragEvent struct {
	Kind     string    `json:"kind"`
	Item     string    `json:"item"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	OldIndex int       `json:"old_index"`
	NewIndex int       `json:"new_index"`
	At       time.Time `json:"at"`
}

// ZoneRender is a zone the move re-rendered
type ZoneRender struct {
	Zone    string   `json:"zone"`
	Players []Player `json:"players"`
}

// MoveResult is the response for a move
type MoveResult struct {
	Board   Board        `json:"board"`
	Events  []DragEvent  `json:"events"`
	Renders []ZoneRender `json:"renders"`
}

// MoveResultFromModel converts board.MoveResult
func MoveResultFromModel(r *board.MoveResult) MoveResult {
	events := make([]DragEvent, len(r.Events))
	for i, ev := range r.Events {
		events[i] = DragEvent{
			Kind:     string(ev.Kind),
			Item:     string(ev.Item),
			From:     string(ev.From),
			To:       string(ev.To),
			OldIndex: ev.OldIndex,
			NewIndex: ev.NewIndex,
			At:       ev.Timestamp,
		}
	}
	renders := make([]ZoneRender, len(r.Renders))
	for i, zr := range r.Renders {
		renders[i] = ZoneRender{Zone: string(zr.Zone), Players: PlayersFromModel(zr.Players)}
	}
	return MoveResult{
		Board:   BoardFromModel(r.Board),
		Events:  events,
		Renders: renders,
	}
}

// Health is the response for the health endpoint
type Health struct {
	Status    string `json:"status"`
	ReleaseID string `json:"release_id,omitempty"`
}
