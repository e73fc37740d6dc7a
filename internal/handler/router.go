package handler

import (
	"net/http"

	_ "industrial-land-api/docs"
	"industrial-land-api/internal/metrics"
	"industrial-land-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services are the dependencies of the HTTP API.
type Services struct {
	Search    SearchService
	Nearest   NearestService
	Locations LocationService
	Insights  InsightService
	Map       MapService
}

// RouterOptions configures the middleware stack.
type RouterOptions struct {
	Logger             zerolog.Logger
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// NewRouter wires handlers and middleware into a gin engine.
func NewRouter(svc Services, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.Metrics(),
		middleware.CORS(opts.CORSAllowedOrigins),
	)

	searchHandler := NewSearchHandler(svc.Search)
	nearestHandler := NewNearestHandler(svc.Nearest)
	locationHandler := NewLocationHandler(svc.Locations)
	insightHandler := NewInsightHandler(svc.Insights)
	mapHandler := NewMapHandler(svc.Map)

	r.GET("/health", insightHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	api := r.Group("/api/v1", limiter.Middleware())
	{
		api.GET("/health", insightHandler.Health)

		locations := api.Group("/locations")
		locations.GET("", locationHandler.List)
		locations.GET("/by-industry", locationHandler.ByIndustry)
		locations.GET("/by-location", locationHandler.ByLocation)
		locations.GET("/search", searchHandler.Search)
		locations.GET("/nearest", nearestHandler.Nearest)
		locations.GET("/:id", locationHandler.Get)

		insights := api.Group("/insights")
		insights.GET("/industry-counts", insightHandler.IndustryCounts)
		insights.GET("/states", insightHandler.States)
		insights.GET("/districts", insightHandler.Districts)
		insights.GET("/industries", insightHandler.Industries)
		insights.GET("/industry-types", insightHandler.IndustryTypes)
		insights.GET("/state-summaries", insightHandler.StateSummaries)
		insights.GET("/country-sales", insightHandler.CountrySales)
		insights.GET("/growth-trend", insightHandler.GrowthTrend)

		api.GET("/map/features", mapHandler.Features)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}
