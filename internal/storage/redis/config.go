package redis

import "time"

const defaultKeyPrefix = "linkboard"

type Config struct {
	// URL is a redis:// or rediss:// connection URL.
	URL string

	PoolSize     int
	MinIdleConns int

	// DialTimeout bounds the connectivity check New performs.
	DialTimeout time.Duration

	// KeyPrefix namespaces every key, so several deployments can share a database.
	KeyPrefix string

	// BoardTTL is refreshed on every save; zero disables expiry.
	BoardTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		KeyPrefix:    defaultKeyPrefix,
		BoardTTL:     24 * time.Hour,
	}
}

func (c Config) keyPrefix() string {
	if c.KeyPrefix == "" {
		return defaultKeyPrefix
	}
	return c.KeyPrefix
}
