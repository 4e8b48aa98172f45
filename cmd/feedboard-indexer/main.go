// feedboard-indexer is a reference event consumer. It subscribes to the board
// event channel and logs every envelope it sees; a real indexer would project
// these into its own query store.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/feedboard-dev/feedboard/internal/config"
	"github.com/feedboard-dev/feedboard/internal/events"
	"github.com/feedboard-dev/feedboard/internal/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub, err := events.SubscribeBoardEvents(ctx, &redis.Options{
		Addr:     cfg.Private.Redis.Addr,
		Password: cfg.Private.Redis.Password,
		DB:       cfg.Private.Redis.DB,
	}, cfg.Public.EventNamespace)
	if err != nil {
		logger.Log.Error("Failed to subscribe", "error", err)
		os.Exit(1)
	}
	defer sub.Close()

	logger.Log.Info("Indexer started", "channel", events.BoardEventsChannel(cfg.Public.EventNamespace))

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Indexer stopped")
			return
		case e, ok := <-sub.Events():
			if !ok {
				return
			}
			logger.Log.Info("Event received",
				"id", e.ID,
				"type", e.Type,
				"emitted_at", e.EmittedAt,
				"payload", string(e.Payload),
			)
		case err, ok := <-sub.Errors():
			if !ok {
				return
			}
			logger.Log.Error("Subscription error", "error", err)
		}
	}
}
