package registry

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/linkboard/internal/model"
)

// Registry is the immutable set of players known to the application.
// It is built once at startup and passed to whatever needs it.
type Registry struct {
	players map[model.PlayerID]model.Player
}

// New creates a registry from the given players
func New(players ...model.Player) (*Registry, error) {
	byID := make(map[model.PlayerID]model.Player, len(players))
	for _, p := range players {
		if p.ID == "" {
			return nil, fmt.Errorf("player %q has no id", p.Name)
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", model.ErrDuplicatePlayer, p.ID)
		}
		byID[p.ID] = p
	}
	return &Registry{players: byID}, nil
}

// Default returns the built-in sample players
func Default() *Registry {
	r, err := New(SamplePlayers()...)
	if err != nil {
		panic(err)
	}
	return r
}

// SamplePlayers returns the two demonstration players
func SamplePlayers() []model.Player {
	return []model.Player{
		{ID: "chrisoakman", Name: "Chris Oakman", Sex: model.SexMale},
		{ID: "laurenoakman", Name: "Lauren Oakman", Sex: model.SexFemale},
	}
}

// fileFormat is the on-disk layout of a players file
type fileFormat struct {
	Players []model.Player `yaml:"players"`
}

// LoadFile reads a YAML players file
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a registry from YAML. Every player must have a known sex.
func Parse(data []byte) (*Registry, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse players: %w", err)
	}
	for i := range f.Players {
		f.Players[i].Sex = model.Sex(strings.ToLower(string(f.Players[i].Sex)))
		if !f.Players[i].Sex.Valid() {
			return nil, fmt.Errorf("%w: %q for player %s", model.ErrInvalidSex, f.Players[i].Sex, f.Players[i].ID)
		}
	}
	return New(f.Players...)
}

// Get returns the player with the given id
func (r *Registry) Get(id model.PlayerID) (model.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %s", model.ErrPlayerNotFound, id)
	}
	return p, nil
}

// Resolve looks up each id in order. It fails on the first unknown id.
func (r *Registry) Resolve(ids []model.PlayerID) ([]model.Player, error) {
	players := make([]model.Player, 0, len(ids))
	for _, id := range ids {
		p, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// All returns every player sorted by id
func (r *Registry) All() []model.Player {
	players := make([]model.Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	slices.SortFunc(players, func(a, b model.Player) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return players
}

// IDs returns every player id sorted
func (r *Registry) IDs() []model.PlayerID {
	all := r.All()
	ids := make([]model.PlayerID, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	return ids
}

// Len returns the number of players
func (r *Registry) Len() int {
	return len(r.players)
}
