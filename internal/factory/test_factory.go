package factory

import (
	"log/slog"
	"time"

	"github.com/mcoot/linkboard/internal/dependencies/mocks"
	"github.com/mcoot/linkboard/internal/services/registry"
	"github.com/mcoot/linkboard/internal/storage"
	"github.com/mcoot/linkboard/internal/storage/memory"
	"github.com/mcoot/linkboard/internal/testutil"
)

// TestEpoch is the time a TestApp's clock starts at
var TestEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// TestApp is an App with its clock and board-code source exposed
type TestApp struct {
	*App

	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

type testConfig struct {
	store    storage.Storage
	registry *registry.Registry
	logger   *slog.Logger
}

// TestOption customises NewTestApp
type TestOption func(*testConfig)

// WithStorage replaces the in-memory store
func WithStorage(s storage.Storage) TestOption {
	return func(c *testConfig) { c.store = s }
}

// WithRegistry replaces the built-in sample players
func WithRegistry(r *registry.Registry) TestOption {
	return func(c *testConfig) { c.registry = r }
}

// WithLogger replaces the discarding logger
func WithLogger(l *slog.Logger) TestOption {
	return func(c *testConfig) { c.logger = l }
}

// NewTestApp wires an App with in-memory storage, the sample players and
// mocked time and randomness
func NewTestApp(opts ...TestOption) *TestApp {
	cfg := testConfig{
		store:    memory.New(),
		registry: registry.Default(),
		logger:   testutil.NopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	clk := mocks.NewMockClock(TestEpoch)
	rnd := mocks.NewMockRandom()

	return &TestApp{
		App:        newWithDependencies(cfg.store, cfg.registry, clk, rnd, cfg.logger),
		MockClock:  clk,
		MockRandom: rnd,
	}
}
