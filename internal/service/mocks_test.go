package service

import (
	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCatalog is a mock implementation of every catalog interface the services read
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Len() int {
	return m.Called().Int(0)
}

func (m *MockCatalog) Get(id int) (models.LocationRecord, bool) {
	args := m.Called(id)
	return args.Get(0).(models.LocationRecord), args.Bool(1)
}

func (m *MockCatalog) FindByIndustry(industry string) []models.LocationRecord {
	return m.Called(industry).Get(0).([]models.LocationRecord)
}

func (m *MockCatalog) FindByLocation(state string, district *string) []models.LocationRecord {
	return m.Called(state, district).Get(0).([]models.LocationRecord)
}

func (m *MockCatalog) FilterByCriteria(crit catalog.Criteria) []models.LocationRecord {
	return m.Called(crit).Get(0).([]models.LocationRecord)
}

func (m *MockCatalog) Search(query string, limit int) []models.LocationRecord {
	return m.Called(query, limit).Get(0).([]models.LocationRecord)
}

func (m *MockCatalog) Nearest(lat, lon, maxKm float64) (models.NearestLocation, bool) {
	args := m.Called(lat, lon, maxKm)
	return args.Get(0).(models.NearestLocation), args.Bool(1)
}

func (m *MockCatalog) AggregateIndustryCounts(state string, district *string) []models.IndustryCount {
	return m.Called(state, district).Get(0).([]models.IndustryCount)
}

func (m *MockCatalog) DistinctStates() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockCatalog) DistinctDistricts() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockCatalog) DistinctIndustryTypes() []string {
	return m.Called().Get(0).([]string)
}

func (m *MockCatalog) IndustryTypes() []models.IndustryType {
	return m.Called().Get(0).([]models.IndustryType)
}

func (m *MockCatalog) StateSummaries() []models.StateIndustrySummary {
	return m.Called().Get(0).([]models.StateIndustrySummary)
}

func (m *MockCatalog) CountrySales() []models.CountrySales {
	return m.Called().Get(0).([]models.CountrySales)
}

func (m *MockCatalog) GrowthTrend() []models.GrowthPoint {
	return m.Called().Get(0).([]models.GrowthPoint)
}

var (
	sanand = models.LocationRecord{
		ID: 1, Name: "Sanand", District: "Ahmedabad", State: "Gujarat",
		LandPrice: 12500, LaborAvailability: models.LaborHigh, LaborCost: 450, InfraIndex: 8.2,
		IndustrySuitability: []string{"Automobile", "Manufacturing", "Electronics"},
		Location:            &models.GeoPoint{Latitude: 22.992, Longitude: 72.3814},
	}
	chakan = models.LocationRecord{
		ID: 4, Name: "Chakan", District: "Pune", State: "Maharashtra",
		LandPrice: 18500, LaborAvailability: models.LaborVeryHigh, LaborCost: 520, InfraIndex: 8.7,
		IndustrySuitability: []string{"Automobile", "Engineering"},
		Location:            &models.GeoPoint{Latitude: 18.7606, Longitude: 73.8636},
	}
	bhiwadi = models.LocationRecord{
		ID: 12, Name: "Bhiwadi", District: "Alwar", State: "Rajasthan",
		LandPrice: 8900, LaborAvailability: models.LaborHigh, LaborCost: 390, InfraIndex: 6.9,
		IndustrySuitability: []string{"Textiles"},
	}
)
