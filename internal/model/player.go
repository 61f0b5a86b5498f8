package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Sex selects the rendering class of a player tile
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Valid reports whether the sex is one of the known values
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Player is a draggable participant. Players are immutable once created.
type Player struct {
	ID   PlayerID `json:"id" yaml:"id"`
	Name string   `json:"name" yaml:"name"`
	Sex  Sex      `json:"sex" yaml:"sex"`
}
