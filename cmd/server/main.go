package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/linkboard/internal/api"
	"github.com/mcoot/linkboard/internal/factory"
	redisstorage "github.com/mcoot/linkboard/internal/storage/redis"
	"github.com/mcoot/linkboard/internal/web"
)

const hubCleanupInterval = time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := &Config{}
	if err := newCmd(cfg).ExecuteContext(ctx); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg *Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.logLevel(),
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		PlayersFile: cfg.playersFile,
		Logger:      logger,
		StorageType: cfg.storage,
	}
	if cfg.storage == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.redisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("storage close failed", slog.Any("error", err))
		}
	}()
	logger.Info("players loaded", slog.Int("count", app.Registry.Len()))

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		BoardController: app.BoardController,
		HubManager:      app.HubManager,
		ReleaseID:       cfg.releaseID,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:          logger,
		BoardController: app.BoardController,
		HubManager:      app.HubManager,
		StaticDir:       cfg.staticDir,
		ReleaseID:       cfg.releaseID,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.bind
	serverConfig.Port = cfg.port

	server := api.NewServer(mux, serverConfig, logger)
	server.OnShutdown(app.HubManager.CloseAll)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.HubManager.RunCleanup(gctx, hubCleanupInterval)
		return nil
	})
	g.Go(func() error {
		return server.ListenAndRun(gctx)
	})
	return g.Wait()
}
