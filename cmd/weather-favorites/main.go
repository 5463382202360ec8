// @title Weather Favorites API
// @version 1.0
// @description Accounts, per-user favorite locations and weather lookups backed by WeatherAPI.
// @BasePath /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sony/gobreaker"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"weather-favorites/configs"
	"weather-favorites/docs"
	"weather-favorites/internal/application/controller"
	"weather-favorites/internal/application/middleware"
	"weather-favorites/internal/application/processor"
	"weather-favorites/internal/application/schedule"
	"weather-favorites/internal/domain/favorites"
	"weather-favorites/internal/domain/gateway/api"
	"weather-favorites/internal/domain/gateway/cache"
	"weather-favorites/internal/domain/gateway/db"
	"weather-favorites/internal/domain/gateway/queue"
	"weather-favorites/internal/domain/usecase/account"
	favoritesuc "weather-favorites/internal/domain/usecase/favorites"
	"weather-favorites/internal/domain/usecase/health"
	"weather-favorites/internal/domain/usecase/session"
	"weather-favorites/internal/infra/aws"
	gormdb "weather-favorites/internal/infra/database/gorm"
	sqldb "weather-favorites/internal/infra/database/sqlc"
	httpclient "weather-favorites/pkg/http"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
	"weather-favorites/pkg/redis"
	"weather-favorites/pkg/sqs"
)

const accountEventsWorker = "account-events"

func main() {
	log.Info(msg.GetMessage("app.start"))

	cfg, err := configs.Load()
	if err != nil {
		log.Fatal(msg.GetMessage("app.config-invalid", err.Error()))
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	group := e.Group(cfg.Server.ContextPath)

	userGateway, dbHealth, closeDB := initDatabase(cfg.DB)
	defer closeDB()

	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(cfg.Redis.Host).
		WithPort(cfg.Redis.Port).
		WithPassword(cfg.Redis.Password).
		WithDatabase(cfg.Redis.Database))
	defer func() { _ = redisClient.Close() }()

	weatherGateway := apiGateway(cfg.Weather)
	queueHealth := queue.NewQueueHealthGateway()

	// Init UseCase
	registry := favorites.NewRegistry()
	sessionUseCase := session.NewSessionUseCase(registry, cache.NewRedisSessionGateway(redisClient, cfg.Session.TTL))
	publisher, worker := initEvents(ctx, cfg, sessionUseCase)
	accountUseCase := account.NewAccountUseCase(userGateway, publisher)
	favoritesUseCase := favoritesuc.NewFavoritesUseCase(weatherGateway, cfg.Weather.Fanout)
	healthUseCase := health.NewHealthUseCase(map[string]health.Component{
		"database": dbHealth,
		"redis":    cache.NewRedisHealthGateway(redisClient),
		"weather":  api.NewWeatherHealthGateway(weatherGateway, cfg.Weather.HealthLocation),
		"queue":    queueHealth,
	})

	// Init Controller and Routes
	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	controller.NewAccountController(group, accountUseCase, sessionUseCase).InitAccountRoutes()
	controller.NewFavoritesController(group, favoritesUseCase, sessionUseCase).InitFavoritesRoutes()
	if cfg.Server.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.Server.ContextPath
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// Init Processor
	if worker != nil {
		queueHealth.RegisterWorker(accountEventsWorker, worker)
		go worker.Start(ctx)
	}

	// Init Schedule
	purgeScheduler := schedule.NewUserPurgeScheduler(accountUseCase, redisClient, schedule.UserPurgeSchedulerConfig{
		CronExpression: cfg.Purge.Cron,
		Retention:      cfg.Purge.Retention,
		LockTTL:        cfg.Purge.LockTTL,
	})
	if err := purgeScheduler.InitUserPurgeScheduleTasks(); err != nil {
		log.Fatal("Failed to start user purge scheduler", zap.Error(err))
	}
	defer purgeScheduler.Stop()

	sweepScheduler, err := schedule.NewSessionSweepScheduler(sessionUseCase, cfg.Session.SweepCron, cfg.Session.IdleTimeout)
	if err != nil {
		log.Fatal("Failed to create session sweep scheduler", zap.Error(err))
	}
	if err := sweepScheduler.InitSessionSweepScheduleTasks(); err != nil {
		log.Fatal("Failed to start session sweep scheduler", zap.Error(err))
	}
	defer sweepScheduler.Stop()

	// Start Routes
	go func() {
		if err := e.Start(":" + strconv.Itoa(cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", cfg.Server.Port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down HTTP server", zap.Error(err))
	}
	queueHealth.UnregisterWorker(accountEventsWorker)
	log.Info(msg.GetMessage("app.stopped"))
}

// initDatabase opens the configured persistence flavor. Both satisfy the same gateways.
func initDatabase(cfg configs.DBConfig) (db.UserGateway, db.HealthDBGateway, func()) {
	if cfg.Gateway == "sqlc" {
		conn, err := sqldb.Open(cfg.URI, cfg.AutoMigrate)
		if err != nil {
			log.Fatal("Failed to open database", zap.String("gateway", cfg.Gateway), zap.Error(err))
		}
		return db.NewSQLCUserGateway(conn), db.NewSQLCHealthDBGateway(conn), func() { _ = conn.Close() }
	}

	conn, err := gormdb.Open(cfg.URI, cfg.AutoMigrate)
	if err != nil {
		log.Fatal("Failed to open database", zap.String("gateway", cfg.Gateway), zap.Error(err))
	}
	return db.NewGormUserGateway(conn), db.NewGormHealthDBGateway(conn), func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func apiGateway(cfg configs.WeatherConfig) api.WeatherGateway {
	threshold := cfg.Breaker.FailureThreshold
	return api.NewWeatherGateway(cfg.BaseURL, cfg.APIKey, cfg.Timeout, httpclient.ClientOptions{
		Backoff: &httpclient.BackoffConfig{
			MaxRetries:      cfg.Backoff.MaxRetries,
			InitialInterval: cfg.Backoff.InitialInterval,
			MaxInterval:     cfg.Backoff.MaxInterval,
		},
		CircuitBreaker: &gobreaker.Settings{
			Name:        "weatherapi",
			MaxRequests: cfg.Breaker.MaxRequests,
			Interval:    cfg.Breaker.Interval,
			Timeout:     cfg.Breaker.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
		},
	})
}

// initEvents wires the SQS publisher and consumer. With events disabled accounts publish
// nowhere and no worker runs.
func initEvents(ctx context.Context, cfg *configs.AppConfig, sessionUseCase session.UseCase) (queue.EventPublisher, *sqs.Worker) {
	if !cfg.Events.Enabled {
		return queue.NoopPublisher{}, nil
	}

	awsConfig, err := aws.LoadConfig(ctx, cfg.AWS)
	if err != nil {
		log.Fatal("Failed to load AWS configuration", zap.Error(err))
	}
	client := aws.NewSqsClient(awsConfig, cfg.AWS.Endpoint)

	worker, err := sqs.NewWorker(ctx, client, cfg.Events.Queue, processor.NewAccountEventProcessor(sessionUseCase), &sqs.WorkerConfig{
		PoolSize: cfg.Events.WorkerPool,
	})
	if err != nil {
		log.Fatal("Failed to create account events worker", zap.Error(err))
	}
	return aws.NewSQSEventPublisher(client, cfg.Events.Queue), worker
}
