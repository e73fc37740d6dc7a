// Package geocode resolves coordinates for location records that have none, using a
// Nominatim-compatible search API.
package geocode

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"industrial-land-api/internal/metrics"
	"industrial-land-api/internal/models"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// ClientOptions configures the HTTP geocoder.
type ClientOptions struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RPS caps outgoing requests per second; Nominatim's public instance allows one.
	RPS        float64
	HTTPClient *http.Client
}

// Client queries the /search endpoint of a Nominatim-compatible service.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewClient creates a geocoding client.
func NewClient(opts ClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	limit := rate.Inf
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
	}
	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		http:      httpClient,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// Lookup returns the first match for query. found is false when the service has no match.
func (c *Client) Lookup(ctx context.Context, query string) (point models.GeoPoint, found bool, err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return point, false, eris.Wrap(err, "geocode: wait for rate limiter")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	params.Set("countrycodes", "in")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return point, false, eris.Wrap(err, "geocode: build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.GeocodeDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return point, false, eris.Wrap(err, "geocode: request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return point, false, eris.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return point, false, eris.Wrap(err, "geocode: decode response")
	}
	if len(results) == 0 {
		return point, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return point, false, eris.Wrapf(err, "geocode: invalid latitude %q", results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return point, false, eris.Wrapf(err, "geocode: invalid longitude %q", results[0].Lon)
	}
	point = models.GeoPoint{Latitude: lat, Longitude: lon}
	if err := checkPoint(point); err != nil {
		return models.GeoPoint{}, false, err
	}
	return point, true, nil
}

// checkPoint rejects non-finite or out-of-range coordinates.
func checkPoint(p models.GeoPoint) error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return eris.Errorf("geocode: latitude %v outside [-90, 90]", p.Latitude)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return eris.Errorf("geocode: longitude %v outside [-180, 180]", p.Longitude)
	}
	return nil
}
