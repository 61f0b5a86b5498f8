package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/storage"
)

const (
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

// Storage is a Redis-backed implementation of the storage interface.
// Board metadata lives in a HASH and each zone in its own LIST, so zone
// order is kept by Redis itself.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New connects to cfg.URL and checks the server answers a PING within
// cfg.DialTimeout.
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	client := redis.NewClient(opts)

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewWithClient(client, cfg), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

func (s *Storage) Close() error {
	return s.client.Close()
}

var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveBoard(ctx context.Context, board *model.Board) error {
	bKey := s.boardKey(board.ID)

	// Replace every zone list in one transaction so readers never see a half-moved item
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, bKey,
		fieldCreatedAt, board.CreatedAt.UTC().Format(time.RFC3339Nano),
		fieldUpdatedAt, board.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if s.cfg.BoardTTL > 0 {
		pipe.Expire(ctx, bKey, s.cfg.BoardTTL)
	}

	for _, zone := range model.AllZones() {
		zKey := s.zoneKey(board.ID, zone)
		pipe.Del(ctx, zKey)

		members := board.Zones[zone]
		if len(members) == 0 {
			continue
		}
		values := make([]any, len(members))
		for i, id := range members {
			values[i] = string(id)
		}
		pipe.RPush(ctx, zKey, values...)
		if s.cfg.BoardTTL > 0 {
			pipe.Expire(ctx, zKey, s.cfg.BoardTTL)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error) {
	meta, err := s.client.HGetAll(ctx, s.boardKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(meta) == 0 {
		return nil, model.ErrBoardNotFound
	}

	createdAt, err := time.Parse(time.RFC3339Nano, meta[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("board %s: bad %s: %w", id, fieldCreatedAt, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, meta[fieldUpdatedAt])
	if err != nil {
		return nil, fmt.Errorf("board %s: bad %s: %w", id, fieldUpdatedAt, err)
	}

	zones := model.AllZones()
	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringSliceCmd, len(zones))
	for i, zone := range zones {
		cmds[i] = pipe.LRange(ctx, s.zoneKey(id, zone), 0, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	board := model.NewBoard(id, createdAt)
	board.UpdatedAt = updatedAt
	for i, zone := range zones {
		for _, member := range cmds[i].Val() {
			board.Zones[zone] = append(board.Zones[zone], model.PlayerID(member))
		}
	}
	return board, nil
}

func (s *Storage) DeleteBoard(ctx context.Context, id model.BoardID) error {
	keys := []string{s.boardKey(id)}
	for _, zone := range model.AllZones() {
		keys = append(keys, s.zoneKey(id, zone))
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *Storage) BoardExists(ctx context.Context, id model.BoardID) (bool, error) {
	exists, err := s.client.Exists(ctx, s.boardKey(id)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
