package service

import (
	"context"
	"math"

	"industrial-land-api/internal/models"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// NearestService finds the catalogued location closest to a coordinate
type NearestService struct {
	catalog NearestCatalog
	maxKm   float64
}

// NearestCatalog is the catalog surface the nearest service reads.
type NearestCatalog interface {
	Nearest(lat, lon, maxKm float64) (models.NearestLocation, bool)
}

// NewNearestService creates a new nearest service. Matches farther than maxKm are ignored;
// maxKm <= 0 means no limit.
func NewNearestService(catalog NearestCatalog, maxKm float64) *NearestService {
	return &NearestService{catalog: catalog, maxKm: maxKm}
}

// Nearest returns the closest geolocated record to (lat, lon)
func (s *NearestService) Nearest(ctx context.Context, lat, lon float64) (*models.NearestLocation, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return nil, eris.Wrapf(ErrInvalidInput, "service: latitude %v out of range", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return nil, eris.Wrapf(ErrInvalidInput, "service: longitude %v out of range", lon)
	}

	loc, ok := s.catalog.Nearest(lat, lon, s.maxKm)
	if !ok {
		zerolog.Ctx(ctx).Debug().Float64("lat", lat).Float64("lon", lon).Msg("no location in range")
		if s.maxKm > 0 {
			return nil, eris.Wrapf(ErrNotFound, "service: no location within %v km", s.maxKm)
		}
		return nil, eris.Wrap(ErrNotFound, "service: no geolocated location")
	}
	return &loc, nil
}
