package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"social-spectrum-server/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns a connected client, or nil when redis is disabled
// or unreachable. Callers fall back to the database when it is nil.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		slog.Warn("redis unavailable, caching disabled", "addr", cfg.Redis.Addr, "error", err)
		return nil
	}

	slog.Info("redis connected", "addr", cfg.Redis.Addr, "db", cfg.Redis.DB)
	return client
}

// CloseRedisClient closes client if it is not nil.
func CloseRedisClient(client *redis.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}

// RedisKey joins parts under the configured key prefix.
func (s *AppService) RedisKey(parts ...string) string {
	prefix := s.cfg.Redis.Prefix
	if prefix == "" {
		prefix = "social_spectrum"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}
