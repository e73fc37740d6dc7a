package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/models"
	"industrial-land-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationService is a mock implementation of the LocationService interface
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Filter(ctx context.Context, crit catalog.Criteria) ([]models.LocationRecord, error) {
	args := m.Called(ctx, crit)
	return args.Get(0).([]models.LocationRecord), args.Error(1)
}

func (m *MockLocationService) ByIndustry(ctx context.Context, industry string) ([]models.LocationRecord, error) {
	args := m.Called(ctx, industry)
	return args.Get(0).([]models.LocationRecord), args.Error(1)
}

func (m *MockLocationService) ByLocation(ctx context.Context, state string, district *string) ([]models.LocationRecord, error) {
	args := m.Called(ctx, state, district)
	return args.Get(0).([]models.LocationRecord), args.Error(1)
}

func (m *MockLocationService) Get(ctx context.Context, id int) (*models.LocationRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.LocationRecord), args.Error(1)
}

var vapi = models.LocationRecord{
	ID: 2, Name: "Vapi", District: "Valsad", State: "Gujarat",
	LandPrice: 9800, LaborAvailability: models.LaborMedium, LaborCost: 380, InfraIndex: 7.5,
	IndustrySuitability: []string{"Chemicals"},
}

func serve(method, target string, h gin.HandlerFunc, route string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Handle(method, route, h)
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestLocationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		target         string
		expectCrit     *catalog.Criteria
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "no filters",
			target:         "/locations",
			expectCrit:     &catalog.Criteria{PriceRange: catalog.AnyPrice},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "all filters",
			target: "/locations?state=Gujarat&district=Valsad&industry=Chemicals&min_price=5000&max_price=10000",
			expectCrit: &catalog.Criteria{
				State:        catalog.String("Gujarat"),
				District:     catalog.String("Valsad"),
				IndustryType: catalog.String("Chemicals"),
				PriceRange:   catalog.PriceRange{Min: 5000, Max: 10000},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "only max price",
			target: "/locations?max_price=10000",
			expectCrit: &catalog.Criteria{
				PriceRange: catalog.PriceRange{Min: 0, Max: 10000},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed min price",
			target:         "/locations?min_price=cheap",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid min_price format",
		},
		{
			name:           "NaN max price",
			target:         "/locations?max_price=NaN",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid max_price format",
		},
		{
			name:           "negative price rejected by service",
			target:         "/locations?min_price=-5",
			expectCrit:     &catalog.Criteria{PriceRange: catalog.PriceRange{Min: -5, Max: catalog.AnyPrice.Max}},
			mockError:      eris.Wrap(service.ErrInvalidInput, "service: price bounds must be non-negative"),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "price bounds must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			if tt.expectCrit != nil {
				result := []models.LocationRecord{vapi}
				if tt.mockError != nil {
					result = nil
				}
				mockSvc.On("Filter", mock.Anything, *tt.expectCrit).Return(result, tt.mockError)
			}

			w := serve(http.MethodGet, tt.target, NewLocationHandler(mockSvc).List, "/locations")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, decodeError(t, w), tt.expectedError)
			} else {
				var body []models.LocationRecord
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, []models.LocationRecord{vapi}, body)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestLocationHandler_ByIndustry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing type", func(t *testing.T) {
		w := serve(http.MethodGet, "/locations/by-industry", NewLocationHandler(new(MockLocationService)).ByIndustry, "/locations/by-industry")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing required query parameter 'type'", decodeError(t, w))
	})

	t.Run("exact label", func(t *testing.T) {
		mockSvc := new(MockLocationService)
		mockSvc.On("ByIndustry", mock.Anything, "Chemicals").Return([]models.LocationRecord{vapi}, nil)

		w := serve(http.MethodGet, "/locations/by-industry?type=Chemicals", NewLocationHandler(mockSvc).ByIndustry, "/locations/by-industry")

		assert.Equal(t, http.StatusOK, w.Code)
		var body []models.LocationRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []models.LocationRecord{vapi}, body)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty type matches nothing", func(t *testing.T) {
		mockSvc := new(MockLocationService)
		mockSvc.On("ByIndustry", mock.Anything, "").Return([]models.LocationRecord{}, nil)

		w := serve(http.MethodGet, "/locations/by-industry?type=", NewLocationHandler(mockSvc).ByIndustry, "/locations/by-industry")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})
}

func TestLocationHandler_ByLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		target         string
		state          string
		district       *string
		callService    bool
		expectedStatus int
	}{
		{name: "missing state", target: "/locations/by-location", expectedStatus: http.StatusBadRequest},
		{name: "state only", target: "/locations/by-location?state=Gujarat", state: "Gujarat", callService: true, expectedStatus: http.StatusOK},
		{
			name: "state and district", target: "/locations/by-location?state=Gujarat&district=Valsad",
			state: "Gujarat", district: catalog.String("Valsad"), callService: true, expectedStatus: http.StatusOK,
		},
		{
			name: "empty district is passed through", target: "/locations/by-location?state=Gujarat&district=",
			state: "Gujarat", district: catalog.String(""), callService: true, expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			if tt.callService {
				mockSvc.On("ByLocation", mock.Anything, tt.state, tt.district).Return([]models.LocationRecord{vapi}, nil)
			}

			w := serve(http.MethodGet, tt.target, NewLocationHandler(mockSvc).ByLocation, "/locations/by-location")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if !tt.callService {
				assert.Equal(t, "missing required query parameter 'state'", decodeError(t, w))
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestLocationHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		target         string
		id             int
		mockRecord     *models.LocationRecord
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{name: "found", target: "/locations/2", id: 2, mockRecord: &vapi, expectedStatus: http.StatusOK},
		{
			name: "unknown id", target: "/locations/99", id: 99,
			mockError:      eris.Wrapf(service.ErrNotFound, "service: location %d", 99),
			expectedStatus: http.StatusNotFound, expectedError: "location not found",
		},
		{name: "non-numeric id", target: "/locations/vapi", expectedStatus: http.StatusBadRequest, expectedError: "invalid location id"},
		{
			name: "service failure", target: "/locations/2", id: 2,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError, expectedError: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			if tt.id != 0 {
				mockSvc.On("Get", mock.Anything, tt.id).Return(tt.mockRecord, tt.mockError)
			}

			w := serve(http.MethodGet, tt.target, NewLocationHandler(mockSvc).Get, "/locations/:id")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w))
			} else {
				var body models.LocationRecord
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, vapi, body)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}
