package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	CatalogRecords.Set(12)
	HTTPRequestsTotal.WithLabelValues("/api/v1/health", http.MethodGet, "200").Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "landapi_catalog_records 12")
	assert.Contains(t, body, `landapi_http_requests_total{method="GET",route="/api/v1/health",status="200"}`)
}

func TestGeocodeOutcomeCounter(t *testing.T) {
	before := testutil.ToFloat64(GeocodeRequestsTotal.WithLabelValues("fail"))
	GeocodeRequestsTotal.WithLabelValues("fail").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(GeocodeRequestsTotal.WithLabelValues("fail")))
}
