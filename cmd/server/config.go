package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mcoot/linkboard/internal/cli"
	"github.com/mcoot/linkboard/internal/factory"
)

// Config holds server settings, filled from flags and LINKBOARD_* env vars
type Config struct {
	bind        string
	port        int
	storage     string
	redisURL    string
	playersFile string
	releaseID   string
	staticDir   string
	verbose     bool
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	switch c.storage {
	case factory.StorageTypeMemory:
	case factory.StorageTypeRedis:
		if c.redisURL == "" {
			return errors.New("--redis-url is required when --storage=redis")
		}
	default:
		return fmt.Errorf("unknown storage type %q (must be memory or redis)", c.storage)
	}
	return nil
}

func (c *Config) logLevel() slog.Level {
	if c.verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func newCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkboard-server",
		Short: "Serve the linkboard drag-and-drop board and its JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.bind, "bind", "b", "", "address to bind to (env: LINKBOARD_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: LINKBOARD_PORT)")
	fs.StringVar(&cfg.storage, "storage", factory.StorageTypeMemory, "board storage backend: memory, redis (env: LINKBOARD_STORAGE)")
	fs.StringVar(&cfg.redisURL, "redis-url", "", "redis connection url (env: LINKBOARD_REDIS_URL)")
	fs.StringVar(&cfg.playersFile, "players-file", "", "YAML player list, built-in players if empty (env: LINKBOARD_PLAYERS_FILE)")
	fs.StringVar(&cfg.releaseID, "release-id", "dev", "release id reported by the health endpoint (env: LINKBOARD_RELEASE_ID)")
	fs.StringVar(&cfg.staticDir, "static-dir", findStaticDir(), "directory served under /static/ (env: LINKBOARD_STATIC_DIR)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log at debug level (env: LINKBOARD_VERBOSE)")
	cli.BindEnv(fs)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

// findStaticDir looks for the public/ directory
func findStaticDir() string {
	candidates := []string{
		"public",
		filepath.Join(os.Getenv("PWD"), "public"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return "public"
}
