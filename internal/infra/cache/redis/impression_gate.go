// Package redis holds the Redis backed fast paths.
package redis

import (
	"context"
	"log/slog"
	"time"

	"adreach/config"
	"adreach/internal/domain/lifecycle"
	"adreach/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultKeyPrefix = "adreach"
	poolSize         = 50
)

// Params holds dependencies for the impression gate, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewImpressionGate returns a Redis gate when redis is configured and an always-open
// gate otherwise. Either way the store's dedup check stays authoritative.
func NewImpressionGate(params Params) (service.ImpressionGate, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, impression dedup relies on the database only")

		return openGate{}, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis",
				slog.String("addr", cfg.Addr),
				slog.Int("db", cfg.DB),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return newRedisGate(client, cfg.KeyPrefix), nil
}

// redisGate claims (campaign, user) slots with SET NX PX.
type redisGate struct {
	client goredis.UniversalClient
	prefix string
}

func newRedisGate(client goredis.UniversalClient, prefix string) *redisGate {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisGate{client: client, prefix: prefix}
}

// Acquire claims the slot for window. A Redis failure is returned to the caller, who
// falls back to the database check.
func (g *redisGate) Acquire(ctx context.Context, campaignID, userID uuid.UUID, window time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, impressionKey(g.prefix, campaignID, userID), 1, window).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis SETNX impression slot")
	}

	return ok, nil
}

// Release frees a claimed slot.
func (g *redisGate) Release(ctx context.Context, campaignID, userID uuid.UUID) error {
	err := g.client.Del(ctx, impressionKey(g.prefix, campaignID, userID)).Err()

	return errors.Wrap(err, "redis DEL impression slot")
}

// Ping reports Redis reachability for the health endpoint.
func (g *redisGate) Ping(ctx context.Context) error {
	return errors.Wrap(g.client.Ping(ctx).Err(), "redis ping")
}

func impressionKey(prefix string, campaignID, userID uuid.UUID) string {
	return prefix + ":impression:" + campaignID.String() + ":" + userID.String()
}

// openGate always grants the slot.
type openGate struct{}

func (openGate) Acquire(context.Context, uuid.UUID, uuid.UUID, time.Duration) (bool, error) {
	return true, nil
}

func (openGate) Release(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
