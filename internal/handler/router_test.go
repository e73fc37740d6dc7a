package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/middleware"
	"industrial-land-api/internal/models"
	"industrial-land-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, opts RouterOptions) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ds, err := catalog.EmbeddedDataset()
	require.NoError(t, err)
	c, err := catalog.New(ds)
	require.NoError(t, err)

	opts.Logger = zerolog.New(io.Discard)
	return NewRouter(Services{
		Search:    service.NewSearchService(c, 10),
		Nearest:   service.NewNearestService(c, 50),
		Locations: service.NewLocationService(c),
		Insights:  service.NewInsightService(c),
		Map:       service.NewMapService(c),
	}, opts)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func recordIDs(t *testing.T, w *httptest.ResponseRecorder) []int {
	t.Helper()
	var records []models.LocationRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestRouter_LocationQueries(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})

	tests := []struct {
		name     string
		target   string
		expected []int
	}{
		{name: "all records", target: "/api/v1/locations", expected: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{name: "state and price cap", target: "/api/v1/locations?state=Gujarat&max_price=10000", expected: []int{2, 5, 11}},
		{name: "inverted range is empty", target: "/api/v1/locations?min_price=10000&max_price=5000", expected: []int{}},
		{name: "by industry", target: "/api/v1/locations/by-industry?type=Pharmaceuticals", expected: []int{2, 7, 10}},
		{name: "industry is case-sensitive", target: "/api/v1/locations/by-industry?type=pharmaceuticals", expected: []int{}},
		{name: "by state", target: "/api/v1/locations/by-location?state=Rajasthan", expected: []int{3, 12}},
		{name: "by state and district", target: "/api/v1/locations/by-location?state=Tamil%20Nadu&district=Krishnagiri", expected: []int{8}},
		{name: "empty district matches literally", target: "/api/v1/locations/by-location?state=Rajasthan&district=", expected: []int{}},
		{name: "search by district", target: "/api/v1/locations/search?q=alwar", expected: []int{3, 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.target)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.expected, recordIDs(t, w))
		})
	}
}

func TestRouter_LocationDetailsAndErrors(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})

	w := get(r, "/api/v1/locations/12")
	require.Equal(t, http.StatusOK, w.Code)
	var bhiwadi models.LocationRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bhiwadi))
	assert.Equal(t, "Bhiwadi", bhiwadi.Name)
	assert.Nil(t, bhiwadi.Location)

	tests := []struct {
		target string
		status int
		msg    string
	}{
		{"/api/v1/locations/99", http.StatusNotFound, "location not found"},
		{"/api/v1/locations/abc", http.StatusBadRequest, "invalid location id"},
		{"/api/v1/locations?min_price=-1", http.StatusBadRequest, "price bounds must be non-negative"},
		{"/api/v1/locations/search", http.StatusBadRequest, "missing required query parameter 'q'"},
		{"/api/v1/locations/nearest?lat=95&lon=72", http.StatusBadRequest, "latitude"},
		{"/api/v1/locations/nearest?lat=8.5&lon=60", http.StatusNotFound, "no location found near the specified coordinates"},
		{"/api/v1/insights/industry-counts", http.StatusBadRequest, "missing required query parameter 'state'"},
		{"/api/v1/unknown", http.StatusNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(r, tt.target)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, decodeError(t, w), tt.msg)
		})
	}
}

func TestRouter_Nearest(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})

	w := get(r, "/api/v1/locations/nearest?lat=22.99&lon=72.38")
	require.Equal(t, http.StatusOK, w.Code)

	var nearest models.NearestLocation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nearest))
	assert.Equal(t, 1, nearest.ID)
	assert.Less(t, nearest.DistanceKm, 1.0)
}

func TestRouter_Insights(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})

	w := get(r, "/api/v1/insights/industry-counts?state=Gujarat")
	require.Equal(t, http.StatusOK, w.Code)
	var counts []models.IndustryCount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	require.NotEmpty(t, counts)
	assert.Equal(t, models.IndustryCount{Industry: "Manufacturing", Count: 3}, counts[0])
	assert.Equal(t, models.IndustryCount{Industry: "Automobile", Count: 2}, counts[1])
	assert.Equal(t, models.IndustryCount{Industry: "Chemicals", Count: 2}, counts[2])

	w = get(r, "/api/v1/insights/states")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`["Gujarat","Haryana","Himachal Pradesh","Madhya Pradesh","Maharashtra","Rajasthan","Tamil Nadu"]`,
		w.Body.String())

	w = get(r, "/api/v1/insights/industry-types")
	require.Equal(t, http.StatusOK, w.Code)
	var types []models.IndustryType
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	require.Len(t, types, 5)
	assert.Equal(t, "Automobile", types[0].Name)

	for _, route := range []string{"/districts", "/industries", "/state-summaries", "/country-sales", "/growth-trend"} {
		assert.Equal(t, http.StatusOK, get(r, "/api/v1/insights"+route).Code, route)
	}
}

func TestRouter_MapFeatures(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})

	w := get(r, "/api/v1/map/features?state=Rajasthan")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get(middleware.UnplacedCountHeader))

	var body struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "FeatureCollection", body.Type)
	assert.Len(t, body.Features, 1)
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","records":12}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusOK, get(r, "/api/v1/health").Code)

	w = get(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "landapi_http_requests_total")

	w = get(r, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/locations/nearest")
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t, RouterOptions{CORSAllowedOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/locations", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimit(t *testing.T) {
	r := newTestRouter(t, RouterOptions{RateLimitRPS: 0.001, RateLimitBurst: 1})

	assert.Equal(t, http.StatusOK, get(r, "/api/v1/insights/states").Code)

	w := get(r, "/api/v1/insights/states")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "rate limit exceeded", decodeError(t, w))

	// Operational endpoints sit outside the limited group.
	assert.Equal(t, http.StatusOK, get(r, "/health").Code)
}
