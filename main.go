package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/soundshelf/soundshelf-api/internal/app/services/auth"
	"github.com/soundshelf/soundshelf-api/internal/app/services/library"
	"github.com/soundshelf/soundshelf-api/internal/app/services/search"
	server "github.com/soundshelf/soundshelf-api/internal/infra/http"
	authhandler "github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/auth"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/health"
	libraryhandler "github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/library"
	searchhandler "github.com/soundshelf/soundshelf-api/internal/infra/http/handlers/search"
	"github.com/soundshelf/soundshelf-api/internal/infra/http/middleware"
	"github.com/soundshelf/soundshelf-api/internal/infra/repository/cache/redis"
	"github.com/soundshelf/soundshelf-api/internal/infra/repository/genius"
	"github.com/soundshelf/soundshelf-api/internal/infra/repository/postgres"
	"github.com/soundshelf/soundshelf-api/internal/infra/token"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func main() {
	err := LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}

	config := GetEnv()
	logger := configureLogger(config)
	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := newResource(ctx)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build telemetry resource")
	}

	tracerProvider, err := newTracerProvider(ctx, res, config.OTLPEndpoint)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create tracer provider")
	}
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	meterProvider, err := newMeterProvider(res)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create meter provider")
	}
	otel.SetMeterProvider(meterProvider)

	tracer := tracerProvider.Tracer(serviceName)
	meter := meterProvider.Meter(serviceName)

	if err := postgres.Migrate(config.DatabaseURL); err != nil {
		logger.WithError(err).Fatal("Failed to apply database migrations")
	}

	pool, err := postgres.Connect(ctx, config.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer pool.Close()
	store := postgres.New(pool)

	var cache search.Cache = redis.Unavailable{}
	redisClient, err := redis.Connect(ctx, redis.Config{
		URL:          config.RedisURL,
		MaxRetries:   config.RedisMaxRetries,
		RetryBackoff: config.RedisRetryBackoff,
	}, logger)
	if err != nil {
		logger.WithError(err).Error("Redis unavailable, searches will bypass the cache")
	} else {
		defer redisClient.Close()
		cache = redis.NewCache(redisClient, config.CacheTTL())
	}

	geniusClient := genius.New(ctx, genius.NewGeniusClientConfig(
		config.GeniusHost,
		config.GeniusClientAccessToken,
		config.GeniusTimeout,
		nil,
		tracer,
	))

	tokens := token.NewManager(config.JWTSecret, config.JWTExpiry)

	searchService, err := search.New(tracer, meter, logger, geniusClient, cache, store, config.CacheTTL())
	if err != nil {
		logger.WithError(err).Fatal("Failed to create search service")
	}
	authService := auth.New(tracer, store, tokens, config.BcryptCost)
	libraryService := library.New(tracer, store)

	srv, err := server.New(
		server.NewConfig(config.Port, config.CorsAllowOrigins, false),
		logger,
		server.Handlers{
			Search:  searchhandler.New(tracer, logger, searchService),
			Auth:    authhandler.New(tracer, logger, authService),
			Library: libraryhandler.New(tracer, logger, libraryService),
			Health:  health.New(logger, store),
		},
		middleware.RequireAuth(tokens, logger),
		promhttp.Handler(),
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create HTTP server")
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Tracer provider shutdown failed")
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Meter provider shutdown failed")
	}
}
