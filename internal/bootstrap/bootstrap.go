// Package bootstrap builds the catalog from the configured source at start-up.
package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/config"
	"industrial-land-api/internal/geocode"
	"industrial-land-api/internal/ingest"
	"industrial-land-api/internal/metrics"
	"industrial-land-api/internal/models"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// LocationSource supplies location records from storage.
type LocationSource interface {
	LoadLocations(ctx context.Context) ([]models.LocationRecord, error)
}

// Enricher fills in missing coordinates.
type Enricher interface {
	Enrich(ctx context.Context, records []models.LocationRecord) (geocode.Summary, error)
}

// Options selects where the catalog comes from.
type Options struct {
	Source string
	File   string
	// Postgres is required for config.SourcePostgres.
	Postgres LocationSource
	// Enricher is optional.
	Enricher Enricher
}

// LoadDataset assembles the raw dataset for opts without validating it.
// Dashboard datasets always come from the embedded seed unless a YAML dataset file replaces
// the whole dataset.
func LoadDataset(ctx context.Context, opts Options) (catalog.Dataset, error) {
	ds, err := catalog.EmbeddedDataset()
	if err != nil {
		return ds, err
	}

	switch opts.Source {
	case config.SourceEmbedded, "":
	case config.SourceFile:
		switch strings.ToLower(filepath.Ext(opts.File)) {
		case ".yaml", ".yml":
			if ds, err = catalog.ReadDatasetFile(opts.File); err != nil {
				return ds, err
			}
		default:
			records, err := ingest.ReadFile(opts.File)
			if err != nil {
				return ds, err
			}
			ds.Locations = records
		}
	case config.SourcePostgres:
		if opts.Postgres == nil {
			return ds, eris.New("bootstrap: postgres source not configured")
		}
		records, err := opts.Postgres.LoadLocations(ctx)
		if err != nil {
			return ds, eris.Wrap(err, "bootstrap: load locations")
		}
		ds.Locations = records
	default:
		return ds, eris.Errorf("bootstrap: unknown catalog source %q", opts.Source)
	}
	return ds, nil
}

// LoadCatalog loads, optionally enriches, and validates the catalog.
func LoadCatalog(ctx context.Context, opts Options) (*catalog.Catalog, error) {
	log := zerolog.Ctx(ctx)

	ds, err := LoadDataset(ctx, opts)
	if err != nil {
		return nil, err
	}

	if opts.Enricher != nil {
		if _, err := opts.Enricher.Enrich(ctx, ds.Locations); err != nil {
			log.Warn().Err(err).Msg("geocoding enrichment incomplete")
		}
	}

	c, err := catalog.New(ds)
	if err != nil {
		return nil, err
	}

	unplaced := 0
	for _, r := range ds.Locations {
		if r.Location == nil {
			unplaced++
		}
	}
	metrics.CatalogRecords.Set(float64(c.Len()))
	metrics.CatalogUnplacedRecords.Set(float64(unplaced))

	log.Info().
		Str("source", sourceName(opts.Source)).
		Int("records", c.Len()).
		Int("unplaced", unplaced).
		Int("states", len(c.DistinctStates())).
		Msg("catalog loaded")
	return c, nil
}

func sourceName(s string) string {
	if s == "" {
		return config.SourceEmbedded
	}
	return s
}
