package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags(nil))

	assert.Equal(t, 8080, cfg.port)
	assert.Equal(t, "memory", cfg.storage)
	assert.Equal(t, "dev", cfg.releaseID)
	assert.NoError(t, cfg.validate())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LINKBOARD_PORT", "9090")
	t.Setenv("LINKBOARD_RELEASE_ID", "2024-01-01-060000.abc1234567")

	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags(nil))

	assert.Equal(t, 9090, cfg.port)
	assert.Equal(t, "2024-01-01-060000.abc1234567", cfg.releaseID)
}

func TestConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("LINKBOARD_PORT", "9090")

	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--port", "7070"}))

	assert.Equal(t, 7070, cfg.port)
}

func TestConfigUnderscoreFlags(t *testing.T) {
	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--release_id", "r1"}))

	assert.Equal(t, "r1", cfg.releaseID)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"bad port", Config{port: 0, storage: "memory"}, "invalid port"},
		{"unknown storage", Config{port: 8080, storage: "disk"}, "unknown storage"},
		{"redis without url", Config{port: 8080, storage: "redis"}, "--redis-url"},
		{"redis with url", Config{port: 8080, storage: "redis", redisURL: "redis://localhost:6379"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
