package storage

import (
	"context"

	"github.com/mcoot/linkboard/internal/model"
)

// Storage defines the interface for board persistence
type Storage interface {
	SaveBoard(ctx context.Context, board *model.Board) error
	GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error)
	DeleteBoard(ctx context.Context, id model.BoardID) error
	BoardExists(ctx context.Context, id model.BoardID) (bool, error)
}
