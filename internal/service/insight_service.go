package service

import (
	"context"

	"industrial-land-api/internal/models"
)

// InsightService serves the aggregate and dashboard views of the catalog.
type InsightService struct {
	catalog InsightCatalog
}

// InsightCatalog is the catalog surface the insight service reads.
type InsightCatalog interface {
	Len() int
	AggregateIndustryCounts(state string, district *string) []models.IndustryCount
	DistinctStates() []string
	DistinctDistricts() []string
	DistinctIndustryTypes() []string
	IndustryTypes() []models.IndustryType
	StateSummaries() []models.StateIndustrySummary
	CountrySales() []models.CountrySales
	GrowthTrend() []models.GrowthPoint
}

// NewInsightService creates a new insight service
func NewInsightService(catalog InsightCatalog) *InsightService {
	return &InsightService{catalog: catalog}
}

// RecordCount returns the number of catalogued locations.
func (s *InsightService) RecordCount(ctx context.Context) int {
	return s.catalog.Len()
}

// IndustryCounts tallies suitability labels in state and, when given, district.
func (s *InsightService) IndustryCounts(ctx context.Context, state string, district *string) []models.IndustryCount {
	return s.catalog.AggregateIndustryCounts(state, district)
}

// States returns the distinct states.
func (s *InsightService) States(ctx context.Context) []string {
	return s.catalog.DistinctStates()
}

// Districts returns the distinct districts.
func (s *InsightService) Districts(ctx context.Context) []string {
	return s.catalog.DistinctDistricts()
}

// Industries returns the distinct suitability labels.
func (s *InsightService) Industries(ctx context.Context) []string {
	return s.catalog.DistinctIndustryTypes()
}

// IndustryTypes returns the suggested industry types, most searched first.
func (s *InsightService) IndustryTypes(ctx context.Context) []models.IndustryType {
	return s.catalog.IndustryTypes()
}

// StateSummaries returns the per-state dashboard roll-ups.
func (s *InsightService) StateSummaries(ctx context.Context) []models.StateIndustrySummary {
	return s.catalog.StateSummaries()
}

// CountrySales returns demand by country.
func (s *InsightService) CountrySales(ctx context.Context) []models.CountrySales {
	return s.catalog.CountrySales()
}

// GrowthTrend returns the monthly sector growth series.
func (s *InsightService) GrowthTrend(ctx context.Context) []models.GrowthPoint {
	return s.catalog.GrowthTrend()
}
