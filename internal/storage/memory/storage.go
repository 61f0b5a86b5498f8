package memory

import (
	"context"
	"sync"

	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Boards are copied on the way in and out so callers never share state.
type Storage struct {
	mu     sync.RWMutex
	boards map[model.BoardID]*model.Board
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		boards: make(map[model.BoardID]*model.Board),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveBoard(ctx context.Context, board *model.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[board.ID] = board.Clone()
	return nil
}

func (s *Storage) GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	board, ok := s.boards[id]
	if !ok {
		return nil, model.ErrBoardNotFound
	}
	return board.Clone(), nil
}

func (s *Storage) DeleteBoard(ctx context.Context, id model.BoardID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, id)
	return nil
}

func (s *Storage) BoardExists(ctx context.Context, id model.BoardID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.boards[id]
	return ok, nil
}
