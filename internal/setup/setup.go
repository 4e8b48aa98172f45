// Package setup builds the application dependency graph from configuration.
package setup

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/feedboard-dev/feedboard/internal/config"
	"github.com/feedboard-dev/feedboard/internal/events"
	"github.com/feedboard-dev/feedboard/internal/fees"
	"github.com/feedboard-dev/feedboard/internal/handler"
	"github.com/feedboard-dev/feedboard/internal/logger"
	"github.com/feedboard-dev/feedboard/internal/service"
	"github.com/feedboard-dev/feedboard/internal/storage"
	"github.com/feedboard-dev/feedboard/internal/storage/memory"
	"github.com/feedboard-dev/feedboard/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Store   storage.Store
	Emitter events.Emitter
	Handler *handler.Handler

	publisher *events.RedisPublisher
}

// SetupDependencies initializes everything the server needs.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	platform, err := cfg.Platform()
	if err != nil {
		return nil, err
	}

	var store storage.Store
	switch cfg.Public.Storage {
	case "postgres":
		store, err = pg.New(cfg.Private.Pg)
		if err != nil {
			return nil, fmt.Errorf("connecting postgres: %w", err)
		}
	case "memory":
		store = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Public.Storage)
	}

	deps := &Dependencies{Config: cfg, Store: store}

	var emitter events.Emitter = events.Nop{}
	if cfg.Public.Events == "redis" {
		publisher, err := events.NewRedisPublisher(&redis.Options{
			Addr:     cfg.Private.Redis.Addr,
			Password: cfg.Private.Redis.Password,
			DB:       cfg.Private.Redis.DB,
		}, cfg.Public.EventNamespace)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("connecting redis: %w", err)
		}
		deps.publisher = publisher
		emitter = publisher
	}
	deps.Emitter = emitter

	schedule := fees.NewSchedule(platform)
	board := service.NewBoard(store, schedule, emitter)
	accounts := service.NewAccount(store)

	deps.Handler = handler.New(board, accounts, store)

	return deps, nil
}

// Close releases every held connection.
func (d *Dependencies) Close() {
	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			logger.Log.Error("Failed to close event publisher", "error", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		logger.Log.Error("Failed to close storage", "error", err)
	}
}
