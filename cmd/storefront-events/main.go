package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"aroma-storefront/config"
	httpapi "aroma-storefront/internal/api/http"
	"aroma-storefront/internal/events"
	"aroma-storefront/internal/observability"
	"aroma-storefront/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.EventsEnabled() {
		logger.Fatal("KAFKA_BROKER must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()
	stats := storage.NewRedisStats(rdb)

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	go events.NewConsumer(reader, stats, logger).Start(ctx)

	router := httpapi.NewStatsRouter(httpapi.NewStatsHandler(stats, logger))
	if err := httpapi.StartServer(ctx, cfg.StatsAddr, router, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
