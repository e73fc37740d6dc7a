package geocode

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"industrial-land-api/internal/metrics"
	"industrial-land-api/internal/models"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Geocoder resolves a free-text place into coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, query string) (models.GeoPoint, bool, error)
}

// Enricher fills in coordinates for records that have none.
type Enricher struct {
	geocoder    Geocoder
	cache       Cache
	concurrency int
	ttl         time.Duration
}

// Summary reports what an enrichment pass did.
type Summary struct {
	Candidates int
	Placed     int
	Failed     int
}

// NewEnricher creates an Enricher. cache may be nil.
func NewEnricher(geocoder Geocoder, cache Cache, concurrency int, ttl time.Duration) *Enricher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Enricher{geocoder: geocoder, cache: cache, concurrency: concurrency, ttl: ttl}
}

// Query builds the search text for a record.
func Query(r models.LocationRecord) string {
	return strings.Join([]string{r.Name, r.District, r.State, "India"}, ", ")
}

// Enrich geocodes every record in records whose Location is nil, in place.
// Lookup failures are logged and leave the record unplaced; only context cancellation is
// returned as an error.
func (e *Enricher) Enrich(ctx context.Context, records []models.LocationRecord) (Summary, error) {
	log := zerolog.Ctx(ctx)

	var summary Summary
	var placed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i := range records {
		if records[i].Location != nil {
			continue
		}
		summary.Candidates++

		i := i
		g.Go(func() error {
			query := Query(records[i])
			point, ok, err := e.resolve(gctx, query)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				log.Warn().Err(err).Int("id", records[i].ID).Str("query", query).Msg("geocoding failed")
				return nil
			}
			if !ok {
				failed.Add(1)
				log.Info().Int("id", records[i].ID).Str("query", query).Msg("no geocoding match")
				return nil
			}

			records[i].Location = &point
			placed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	summary.Placed = int(placed.Load())
	summary.Failed = int(failed.Load())
	if err != nil {
		return summary, eris.Wrap(err, "geocode: enrichment interrupted")
	}

	log.Info().
		Int("candidates", summary.Candidates).
		Int("placed", summary.Placed).
		Int("failed", summary.Failed).
		Msg("geocoding enrichment complete")
	return summary, nil
}

func (e *Enricher) resolve(ctx context.Context, query string) (models.GeoPoint, bool, error) {
	key := strings.ToLower(query)
	if e.cache != nil {
		point, ok, err := e.cache.Get(ctx, key)
		switch {
		case err != nil:
			zerolog.Ctx(ctx).Debug().Err(err).Msg("geocode cache unavailable")
		case ok && checkPoint(point) == nil:
			metrics.GeocodeCacheHitsTotal.Inc()
			return point, true, nil
		default:
			metrics.GeocodeCacheMissesTotal.Inc()
		}
	}

	point, ok, err := e.geocoder.Lookup(ctx, query)
	if err == nil && ok {
		err = checkPoint(point)
	}
	switch {
	case err != nil:
		metrics.GeocodeRequestsTotal.WithLabelValues("fail").Inc()
		return point, false, err
	case !ok:
		metrics.GeocodeRequestsTotal.WithLabelValues("not_found").Inc()
		return point, false, nil
	}
	metrics.GeocodeRequestsTotal.WithLabelValues("found").Inc()

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, point, e.ttl); err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Msg("geocode cache write failed")
		}
	}
	return point, true, nil
}
