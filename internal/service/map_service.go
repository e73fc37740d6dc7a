package service

import (
	"context"
	"strconv"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/models"

	"github.com/rs/zerolog"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// MapService renders catalog records as GeoJSON for the map view.
type MapService struct {
	catalog MapCatalog
}

// MapCatalog is the catalog surface the map service reads.
type MapCatalog interface {
	FilterByCriteria(crit catalog.Criteria) []models.LocationRecord
}

// MapFeatures is a feature collection plus the number of matching records that have no
// coordinates and were left out.
type MapFeatures struct {
	Collection *geojson.FeatureCollection
	Unplaced   int
}

// NewMapService creates a new map service
func NewMapService(catalog MapCatalog) *MapService {
	return &MapService{catalog: catalog}
}

// Features returns the records matching crit as point features. The collection's bounding
// box covers every feature and is omitted when there are none.
func (s *MapService) Features(ctx context.Context, crit catalog.Criteria) (*MapFeatures, error) {
	if err := validatePriceRange(crit.PriceRange); err != nil {
		return nil, err
	}

	records := s.catalog.FilterByCriteria(crit)
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(records))}

	var bounds *geom.Bounds
	unplaced := 0
	for _, r := range records {
		if r.Location == nil {
			unplaced++
			continue
		}

		point := geom.NewPointFlat(geom.XY, []float64{r.Location.Longitude, r.Location.Latitude})
		if bounds == nil {
			bounds = geom.NewBounds(geom.XY)
		}
		bounds.Extend(point)

		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         strconv.Itoa(r.ID),
			Geometry:   point,
			Properties: properties(r),
		})
	}
	fc.BBox = bounds

	zerolog.Ctx(ctx).Debug().Int("features", len(fc.Features)).Int("unplaced", unplaced).Msg("map features")
	return &MapFeatures{Collection: fc, Unplaced: unplaced}, nil
}

func properties(r models.LocationRecord) map[string]any {
	return map[string]any{
		"name":                 r.Name,
		"district":             r.District,
		"state":                r.State,
		"land_price":           r.LandPrice,
		"labor_availability":   string(r.LaborAvailability),
		"labor_cost":           r.LaborCost,
		"infra_index":          r.InfraIndex,
		"industry_suitability": r.IndustrySuitability,
	}
}
