package service

import (
	"context"
	"math"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/models"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// LocationService answers the record-level catalog queries.
type LocationService struct {
	catalog LocationCatalog
}

// LocationCatalog is the catalog surface the location service reads.
type LocationCatalog interface {
	Get(id int) (models.LocationRecord, bool)
	FindByIndustry(industry string) []models.LocationRecord
	FindByLocation(state string, district *string) []models.LocationRecord
	FilterByCriteria(crit catalog.Criteria) []models.LocationRecord
}

// NewLocationService creates a new location service
func NewLocationService(catalog LocationCatalog) *LocationService {
	return &LocationService{catalog: catalog}
}

// Filter returns the records matching every criterion. An inverted price range matches
// nothing.
func (s *LocationService) Filter(ctx context.Context, crit catalog.Criteria) ([]models.LocationRecord, error) {
	if err := validatePriceRange(crit.PriceRange); err != nil {
		return nil, err
	}

	locations := s.catalog.FilterByCriteria(crit)
	zerolog.Ctx(ctx).Debug().
		Float64("min_price", crit.PriceRange.Min).
		Float64("max_price", crit.PriceRange.Max).
		Int("hits", len(locations)).
		Msg("filter locations")
	return locations, nil
}

// ByIndustry returns the records suitable for industry.
func (s *LocationService) ByIndustry(ctx context.Context, industry string) ([]models.LocationRecord, error) {
	return s.catalog.FindByIndustry(industry), nil
}

// ByLocation returns the records in state and, when given, district.
func (s *LocationService) ByLocation(ctx context.Context, state string, district *string) ([]models.LocationRecord, error) {
	return s.catalog.FindByLocation(state, district), nil
}

// Get returns the record with the given id.
func (s *LocationService) Get(ctx context.Context, id int) (*models.LocationRecord, error) {
	loc, ok := s.catalog.Get(id)
	if !ok {
		return nil, eris.Wrapf(ErrNotFound, "service: location %d", id)
	}
	return &loc, nil
}

func validatePriceRange(p catalog.PriceRange) error {
	if math.IsNaN(p.Min) || math.IsNaN(p.Max) {
		return eris.Wrap(ErrInvalidInput, "service: price bounds must be numbers")
	}
	if p.Min < 0 || p.Max < 0 {
		return eris.Wrap(ErrInvalidInput, "service: price bounds must be non-negative")
	}
	return nil
}
