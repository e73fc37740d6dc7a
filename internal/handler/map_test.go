package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/middleware"
	"industrial-land-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// MockMapService is a mock implementation of the MapService interface
type MockMapService struct {
	mock.Mock
}

func (m *MockMapService) Features(ctx context.Context, crit catalog.Criteria) (*service.MapFeatures, error) {
	args := m.Called(ctx, crit)
	return args.Get(0).(*service.MapFeatures), args.Error(1)
}

func TestMapHandler_Features(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("feature collection with unplaced count", func(t *testing.T) {
		fc := &geojson.FeatureCollection{Features: []*geojson.Feature{{
			ID:         "3",
			Geometry:   geom.NewPointFlat(geom.XY, []float64{76.2867, 27.9877}),
			Properties: map[string]any{"name": "Neemrana"},
		}}}
		mockSvc := new(MockMapService)
		mockSvc.On("Features", mock.Anything, catalog.Criteria{State: catalog.String("Rajasthan"), PriceRange: catalog.AnyPrice}).
			Return(&service.MapFeatures{Collection: fc, Unplaced: 1}, nil)

		w := serve(http.MethodGet, "/map/features?state=Rajasthan", NewMapHandler(mockSvc).Features, "/map/features")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get(middleware.UnplacedCountHeader))

		var body struct {
			Type     string `json:"type"`
			Features []struct {
				ID       string `json:"id"`
				Geometry struct {
					Type        string    `json:"type"`
					Coordinates []float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]any `json:"properties"`
			} `json:"features"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "FeatureCollection", body.Type)
		require.Len(t, body.Features, 1)
		assert.Equal(t, "3", body.Features[0].ID)
		assert.Equal(t, "Point", body.Features[0].Geometry.Type)
		assert.Equal(t, []float64{76.2867, 27.9877}, body.Features[0].Geometry.Coordinates)
		assert.Equal(t, "Neemrana", body.Features[0].Properties["name"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed price", func(t *testing.T) {
		w := serve(http.MethodGet, "/map/features?max_price=lots", NewMapHandler(new(MockMapService)).Features, "/map/features")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid max_price format", decodeError(t, w))
	})

	t.Run("invalid price range", func(t *testing.T) {
		mockSvc := new(MockMapService)
		mockSvc.On("Features", mock.Anything, mock.Anything).
			Return((*service.MapFeatures)(nil), eris.Wrap(service.ErrInvalidInput, "service: price bounds must be non-negative"))

		w := serve(http.MethodGet, "/map/features?min_price=-1", NewMapHandler(mockSvc).Features, "/map/features")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Header().Get(middleware.UnplacedCountHeader))
		mockSvc.AssertExpectations(t)
	})
}
