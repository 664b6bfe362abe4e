package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"saheli/internal/api"
	"saheli/internal/api/handlers/http/chat"
	"saheli/internal/api/handlers/http/profile"
	"saheli/internal/api/handlers/http/sos"
	"saheli/internal/api/handlers/http/system"
	"saheli/internal/api/handlers/http/tracking"
	"saheli/internal/config"
	"saheli/internal/location"
	"saheli/internal/middleware"
	"saheli/internal/redis"
	"saheli/internal/service"
	"saheli/internal/storage"
	"saheli/internal/storage/postgres"
	"saheli/internal/storage/sqlite"
	"saheli/internal/telephony"
	"saheli/internal/workers"
	"saheli/pkg/logger"
)

const (
	alertQueueKey    = "alerts:queue"
	fixMaxAge        = 2 * time.Minute
	trackingInterval = 30 * time.Second
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Store      storage.RecordStore
	Redis      *redis.Redis
	AlertQ     *redis.AlertQueue
	Webhook    *workers.AlertWebhookSender

	closeStore func()
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	var (
		store      storage.RecordStore
		closeStore func()
	)
	switch cfg.StoreBackend {
	case config.BackendSqlite:
		logger.Info("initializing sqlite store")
		s, err := sqlite.NewStore(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
		store, closeStore = s, s.Close
	default:
		logger.Info("initializing postgres store")
		s, err := postgres.NewStore(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		store, closeStore = s, s.Close
	}

	logger.Info("initializing redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		closeStore()
		return nil, fmt.Errorf("init redis: %w", err)
	}

	alertQueue := redis.NewAlertQueue(redisClient.Client, alertQueueKey)
	liveCache := redis.NewLiveLocationCache(redisClient)
	chatPubSub := redis.NewChatPubSub(redisClient, logger)

	twilioClient := telephony.NewTwilioClient(cfg.Twilio, logger)
	dialer := telephony.NewTwilioDialer(twilioClient, cfg.Twilio, logger)

	capability := location.NewCachedCapability(liveCache, fixMaxAge)
	dispatcher := service.NewDispatcher(twilioClient, logger, cfg.SOS)
	escalator := service.NewEscalator(dialer, logger, cfg.SOS.PromptTimeout)
	alertSink := service.NewAlertSink(store, alertQueue, logger)

	sosService := service.NewSOSService(
		logger,
		middleware.ContextSession{},
		store,
		capability,
		dispatcher,
		escalator,
		alertSink,
	)
	tracker := service.NewTrackingManager(capability, liveCache, trackingInterval, logger)

	handlers := api.Handlers{
		SOS:      sos.NewHandler(logger, sosService, cfg.SOS.CountdownDefault),
		Profile:  profile.NewHandler(logger, store),
		Chat:     chat.NewHandler(logger, store, chatPubSub),
		Tracking: tracking.NewHandler(logger, liveCache, store, tracker),
		System:   system.NewHandler(logger),
	}

	httpServer := api.NewServer(cfg, logger, handlers)
	webhookSender := workers.NewAlertWebhookSender(logger, cfg.Webhook, alertQueue)
	logger.Info("components initialized")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Store:      store,
		Redis:      redisClient,
		AlertQ:     alertQueue,
		Webhook:    webhookSender,
		closeStore: closeStore,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	c.closeStore()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("components shut down", slog.Duration("latency", time.Since(start)))
}
