// @title        Industrial Land API
// @version      1.0
// @description  Read-only catalog of industrial land in India: filtering, search, nearest-site lookup, dashboard insights and map features.

// @BasePath  /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"industrial-land-api/internal/bootstrap"
	"industrial-land-api/internal/config"
	"industrial-land-api/internal/geocode"
	"industrial-land-api/internal/handler"
	"industrial-land-api/internal/logger"
	"industrial-land-api/internal/repository"
	"industrial-land-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	appLogger, err := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up logger")
	}
	ctx := appLogger.WithContext(context.Background())

	opts := bootstrap.Options{Source: cfg.CatalogSource, File: cfg.CatalogFile}

	// Database connection, only needed while the catalog loads
	var conn *pgxpool.Pool
	if cfg.CatalogSource == config.SourcePostgres {
		conn, err = pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("cannot connect to db")
		}
		opts.Postgres = repository.NewRepository(conn)
	}

	// Geocode cache, also only needed while the catalog loads
	var rc *redis.Client
	if cfg.GeocodeEnabled {
		opts.Enricher, rc = newEnricher(cfg)
	}

	catalog, err := bootstrap.LoadCatalog(ctx, opts)
	if conn != nil {
		conn.Close()
	}
	if rc != nil {
		if cerr := rc.Close(); cerr != nil {
			appLogger.Warn().Err(cerr).Msg("cannot close redis client")
		}
	}
	if err != nil {
		appLogger.Fatal().Err(err).Msg("cannot load catalog")
	}

	gin.SetMode(cfg.GinMode)
	router := handler.NewRouter(handler.Services{
		Search:    service.NewSearchService(catalog, cfg.SearchLimit),
		Nearest:   service.NewNearestService(catalog, cfg.NearestMaxKm),
		Locations: service.NewLocationService(catalog),
		Insights:  service.NewInsightService(catalog),
		Map:       service.NewMapService(catalog),
	}, handler.RouterOptions{
		Logger:             appLogger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		appLogger.Info().Str("addr", cfg.ServerAddress).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server exited")
}

func newEnricher(cfg config.Config) (*geocode.Enricher, *redis.Client) {
	client := geocode.NewClient(geocode.ClientOptions{
		BaseURL:   cfg.GeocodeBaseURL,
		UserAgent: cfg.GeocodeUserAgent,
		Timeout:   cfg.GeocodeTimeout,
		RPS:       cfg.GeocodeRPS,
	})

	var cache geocode.Cache
	rc := geocode.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if rc != nil {
		cache = geocode.NewRedisCache(rc)
	}
	return geocode.NewEnricher(client, cache, cfg.GeocodeConcurrency, cfg.GeocodeCacheTTL), rc
}
