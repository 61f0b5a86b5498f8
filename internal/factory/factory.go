// Package factory wires storage, the player registry and the board
// controller into a runnable App.
package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/linkboard/internal/dependencies/clock"
	"github.com/mcoot/linkboard/internal/dependencies/random"
	"github.com/mcoot/linkboard/internal/services/board"
	"github.com/mcoot/linkboard/internal/services/registry"
	"github.com/mcoot/linkboard/internal/storage"
	"github.com/mcoot/linkboard/internal/storage/memory"
	redisstorage "github.com/mcoot/linkboard/internal/storage/redis"
	"github.com/mcoot/linkboard/internal/web/sse"
)

const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

type App struct {
	Storage storage.Storage
	Clock   clock.Clock
	Random  random.Random

	Registry        *registry.Registry
	BoardController *board.Controller
	HubManager      *sse.HubManager
	Broadcaster     *sse.Broadcaster
}

// Close releases the storage backend if it holds connections.
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type Config struct {
	// PlayersFile is a YAML player list. Empty means the built-in sample players.
	PlayersFile string
	// Logger defaults to a discarding logger.
	Logger *slog.Logger
	// StorageType is "memory" (default) or "redis".
	StorageType string
	// RedisConfig is required for redis storage.
	RedisConfig *redisstorage.Config
}

func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	store, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	reg, err := loadRegistry(cfg.PlayersFile)
	if err != nil {
		if c, ok := store.(io.Closer); ok {
			_ = c.Close()
		}
		return nil, err
	}

	return newWithDependencies(store, reg, clock.New(), random.New(), logger), nil
}

func openStorage(cfg Config) (storage.Storage, error) {
	switch cfg.StorageType {
	case "", StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("storage %q needs a redis config", StorageTypeRedis)
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q (want %s or %s)", cfg.StorageType, StorageTypeMemory, StorageTypeRedis)
	}
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(path)
}

func newWithDependencies(store storage.Storage, reg *registry.Registry, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	hubs := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubs, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Registry:        reg,
		BoardController: board.NewController(store, reg, clk, rnd, broadcaster, logger),
		HubManager:      hubs,
		Broadcaster:     broadcaster,
	}
}
