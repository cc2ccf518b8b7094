package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quickbite/dispatch/internal/jobs"
	"github.com/quickbite/dispatch/internal/pkg/config"
	"github.com/quickbite/dispatch/internal/pkg/database"
	"github.com/quickbite/dispatch/internal/pkg/health"
	"github.com/quickbite/dispatch/internal/pkg/logger"
	"github.com/quickbite/dispatch/internal/pkg/middleware"
	"github.com/quickbite/dispatch/internal/pkg/nats"
	"github.com/quickbite/dispatch/internal/pkg/retry"
	"github.com/quickbite/dispatch/internal/pkg/server"
	wspkg "github.com/quickbite/dispatch/internal/pkg/websocket"
	"github.com/quickbite/dispatch/services/dispatch/gateway"
	"github.com/quickbite/dispatch/services/dispatch/handler"
	"github.com/quickbite/dispatch/services/dispatch/repository"
	"github.com/quickbite/dispatch/services/dispatch/usecase"
)

func main() {
	appName := "dispatch-service"
	configPath := "config/dispatch.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()

	// Dependencies may come up after us, retry transient connection failures
	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = retry.NetworkRetryableFunc()
	retrier := retry.New(retryConfig, zapLogger)

	// Initialize PostgreSQL database connection
	var postgresClient *database.PostgresClient
	err = retrier.Execute(context.Background(), func(ctx context.Context) error {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		return err
	})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize Redis client
	var redisClient *database.RedisClient
	err = retrier.Execute(context.Background(), func(ctx context.Context) error {
		redisClient, err = database.NewRedisClient(configs.Redis)
		return err
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NATS
	var natsClient *nats.Client
	err = retrier.Execute(context.Background(), func(ctx context.Context) error {
		natsClient, err = nats.NewClient(configs.NATS.URL)
		return err
	})
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()

	// Initialize repositories
	courierRepo := repository.NewCourierRepository(postgresClient.GetDB())
	orderRepo := repository.NewOrderRepository(postgresClient.GetDB())
	locationRepo := repository.NewLocationRepository(configs, redisClient)

	// Initialize WebSocket infrastructure
	wsManager := wspkg.NewManager(configs.JWT)
	registry := wspkg.NewRegistry()

	// Initialize gateway
	producer := nats.NewProducer(natsClient)
	dispatchGW := gateway.NewDispatchGateway(registry, producer)

	// Initialize usecase
	dispatchUC := usecase.NewDispatchUC(configs, courierRepo, orderRepo, locationRepo, registry, dispatchGW)

	// Initialize handlers
	h := handler.NewHandler(configs, dispatchUC, wsManager, registry, natsClient, redisClient)

	// Initialize NATS consumers
	if err := h.InitNATSConsumers(); err != nil {
		log.Fatalf("Failed to initialize NATS consumers: %v", err)
	}

	// Start the stale-connection sweep
	sweepJob := jobs.NewSweepJob(registry, configs.Dispatch.SweepInterval)
	if err := sweepJob.Start(); err != nil {
		log.Fatalf("Failed to start sweep job: %v", err)
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	h.RegisterRoutes(e)

	// Release consumers and the sweep cron before the process exits
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		h.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		sweepJob.Stop()
		return nil
	})

	// Start server, blocks until a shutdown signal arrives
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
