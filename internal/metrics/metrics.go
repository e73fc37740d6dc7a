package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "landapi_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "landapi_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route", "method"})
	RateLimitedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "landapi_rate_limited_total",
		Help: "Total requests rejected by the rate limiter",
	})
	CatalogRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "landapi_catalog_records",
		Help: "Number of location records in the loaded catalog",
	})
	CatalogUnplacedRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "landapi_catalog_unplaced_records",
		Help: "Number of location records without coordinates",
	})
	GeocodeRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "landapi_geocode_requests_total",
		Help: "Upstream geocoder lookups by outcome",
	}, []string{"outcome"})
	GeocodeCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "landapi_geocode_cache_hits_total",
		Help: "Total geocode cache hits",
	})
	GeocodeCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "landapi_geocode_cache_misses_total",
		Help: "Total geocode cache misses",
	})
	GeocodeDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "landapi_geocode_duration_ms",
		Help:    "Upstream geocoder call duration in milliseconds",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000},
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(RateLimitedTotal)
	prometheus.MustRegister(CatalogRecords)
	prometheus.MustRegister(CatalogUnplacedRecords)
	prometheus.MustRegister(GeocodeRequestsTotal)
	prometheus.MustRegister(GeocodeCacheHitsTotal)
	prometheus.MustRegister(GeocodeCacheMissesTotal)
	prometheus.MustRegister(GeocodeDurationMs)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
