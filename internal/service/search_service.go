package service

import (
	"context"
	"strings"

	"industrial-land-api/internal/models"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// SearchService contains the core business logic for free-text location search
type SearchService struct {
	catalog SearchCatalog
	limit   int
}

// SearchCatalog is the catalog surface the search service reads.
type SearchCatalog interface {
	Search(query string, limit int) []models.LocationRecord
}

// NewSearchService creates a new search service returning at most limit hits.
func NewSearchService(catalog SearchCatalog, limit int) *SearchService {
	return &SearchService{catalog: catalog, limit: limit}
}

// Search finds locations whose name, district, state or suitability labels contain query
func (s *SearchService) Search(ctx context.Context, query string) ([]models.LocationRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, eris.Wrap(ErrInvalidInput, "service: query cannot be empty")
	}

	locations := s.catalog.Search(query, s.limit)
	zerolog.Ctx(ctx).Debug().Str("query", query).Int("hits", len(locations)).Msg("location search")
	return locations, nil
}
