package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"aroma-storefront/config"
	httpapi "aroma-storefront/internal/api/http"
	"aroma-storefront/internal/media"
	"aroma-storefront/internal/menu"
	"aroma-storefront/internal/observability"
	"aroma-storefront/internal/order"
	"aroma-storefront/internal/service"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Upstream cookies live on each storefront session, not on the client.
	apiClient := &http.Client{Timeout: cfg.HTTPTimeout}

	var sessions service.SessionStore
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		rdb := config.MustInitRedis(cfg, logger)
		defer rdb.Close()
		sessions = storage.NewRedisSessionStore(rdb, cfg.SessionTTL)
	default:
		sessions = storage.NewMemorySessionStore(cfg.SessionTTL)
	}

	opts := service.Options{
		QR:        service.TableQRGenerator{BaseURL: cfg.PublicBaseURL},
		Media:     media.NewResolver(cfg.PublicBaseURL),
		Logger:    logger,
		NoticeTTL: cfg.NoticeTTL,
	}

	if cfg.JournalEnabled() {
		db := config.MustInitPostgres(cfg, logger)
		defer db.Close()
		journal := storage.NewPostgresJournal(db)
		if err := journal.EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to create order journal schema", zap.Error(err))
		}
		opts.Journal = journal
	}

	if cfg.EventsEnabled() {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		opts.Publisher = storage.NewKafkaPublisher(writer)
	}

	storefront := service.NewStorefrontService(
		menu.NewLoader(cfg.APIBase, apiClient, logger),
		order.NewClient(cfg.APIBase, apiClient, logger),
		sessions,
		opts,
	)

	handler := httpapi.NewHandler(storefront, logger)
	router := httpapi.NewRouter(handler, cfg.CORSOrigins)

	logger.Info("storefront configured",
		zap.String("api_base", cfg.APIBase),
		zap.String("session_store", cfg.SessionStore),
		zap.Bool("journal", cfg.JournalEnabled()),
		zap.Bool("events", cfg.EventsEnabled()),
	)

	if err := httpapi.StartServer(ctx, cfg.HTTPAddr, router, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
