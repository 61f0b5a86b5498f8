package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrDuplicatePlayer = errors.New("duplicate player id")
	ErrInvalidSex      = errors.New("invalid sex")

	// Board errors
	ErrBoardNotFound = errors.New("board not found")
	ErrZoneNotFound  = errors.New("zone not found")
	ErrItemNotInZone = errors.New("item is not at the given position in zone")
)
