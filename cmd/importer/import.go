package main

import (
	"context"

	"industrial-land-api/internal/catalog"
	"industrial-land-api/internal/ingest"
	"industrial-land-api/internal/models"
	"industrial-land-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	importFile string
	importDSN  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate a location sheet and replace the stored locations with it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, err := loadSheet(importFile)
		if err != nil {
			return err
		}

		dsn := importDSN
		if dsn == "" {
			dsn = cfg.DBSource
		}
		if dsn == "" {
			return eris.New("database DSN is required (--db or DB_SOURCE)")
		}

		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return eris.Wrap(err, "connect to database")
		}
		defer pool.Close()

		n, err := importLocations(ctx, repository.NewRepository(pool), records)
		if err != nil {
			return err
		}

		log.Info().Int64("imported", n).Str("file", importFile).Msg("import complete")
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "path to the CSV or XLSX sheet (required)")
	importCmd.Flags().StringVar(&importDSN, "db", "", "PostgreSQL DSN, defaults to DB_SOURCE")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}

type locationStore interface {
	EnsureSchema(ctx context.Context) error
	ReplaceLocations(ctx context.Context, records []models.LocationRecord) (int64, error)
	CountLocations(ctx context.Context) (int, error)
}

// loadSheet reads a sheet and checks it would load as a catalog.
func loadSheet(path string) ([]models.LocationRecord, error) {
	records, err := ingest.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Info().Int("records", len(records)).Str("file", path).Msg("parsed sheet")

	ds, err := catalog.EmbeddedDataset()
	if err != nil {
		return nil, err
	}
	ds.Locations = records
	if _, err := catalog.New(ds); err != nil {
		return nil, eris.Wrap(err, "validate sheet")
	}
	return records, nil
}

// importLocations replaces the stored locations and verifies the row count.
func importLocations(ctx context.Context, store locationStore, records []models.LocationRecord) (int64, error) {
	if err := store.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	n, err := store.ReplaceLocations(ctx, records)
	if err != nil {
		return 0, err
	}

	count, err := store.CountLocations(ctx)
	if err != nil {
		return 0, err
	}
	if count != len(records) {
		return 0, eris.Errorf("verify import: table holds %d records, expected %d", count, len(records))
	}
	return n, nil
}
