package main

import (
	"adsync/internal/adapter/memory"
	"adsync/internal/adapter/platform"
	"adsync/internal/adapter/postgres"
	"adsync/internal/adapter/ratelimit"
	"adsync/internal/config"
	"adsync/internal/core/port"
	"adsync/internal/db"
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// app holds the outbound adapters shared by every command.
type app struct {
	campaigns port.CampaignRepository
	alerts    port.AlertRepository
	limiter   *ratelimit.Limiter
	gateway   port.PlatformGateway

	closers []func()
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{}

	if cfg.Store.UseMemory() {
		logger.Warn("using in-memory store, data is lost on exit")
		a.campaigns = memory.NewCampaignStore()
		a.alerts = memory.NewAlertStore()
	} else {
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		a.campaigns = postgres.NewCampaignRepository(pool)
		a.alerts = postgres.NewAlertRepository(pool)
	}

	var counters ratelimit.Store
	switch cfg.RateLimit.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, func() { _ = client.Close() })
		// the limiter fails open, an unreachable redis is not fatal
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping failed", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
		}
		counters = ratelimit.NewRedisStore(client, cfg.Redis.KeyPrefix)
	case "memory", "":
		counters = ratelimit.NewMemoryStore()
	default:
		a.close()
		return nil, fmt.Errorf("unknown rate limit backend %q", cfg.RateLimit.Backend)
	}
	a.limiter = ratelimit.NewLimiter(counters, ratelimit.PoliciesFromConfig(cfg.RateLimit), logger,
		ratelimit.WithSweepInterval(cfg.RateLimit.SweepInterval))

	a.gateway = platform.NewAdmittedGateway(
		platform.NewHTTPGateway(platform.OptionsFromConfig(cfg.Platform, logger)),
		a.limiter,
		cfg.Platform.AccountID,
		port.PolicyPlatform,
	)
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
