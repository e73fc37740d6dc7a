package repository

import (
	"context"

	"industrial-land-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rotisserie/eris"
)

// TableName is the table holding imported location records.
const TableName = "industrial_locations"

// Columns lists the table columns in COPY order.
var Columns = []string{
	"id", "name", "district", "state",
	"land_price", "labor_availability", "labor_cost", "infra_index",
	"population_density", "education_level", "income_level", "transport_quality",
	"environmental_factor", "proximity_km", "government_incentives",
	"industry_suitability", "latitude", "longitude",
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS industrial_locations (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		district TEXT NOT NULL,
		state TEXT NOT NULL,
		land_price DOUBLE PRECISION NOT NULL,
		labor_availability TEXT NOT NULL,
		labor_cost DOUBLE PRECISION NOT NULL,
		infra_index DOUBLE PRECISION NOT NULL,
		population_density DOUBLE PRECISION,
		education_level TEXT NOT NULL DEFAULT '',
		income_level TEXT NOT NULL DEFAULT '',
		transport_quality TEXT NOT NULL DEFAULT '',
		environmental_factor TEXT NOT NULL DEFAULT '',
		proximity_km DOUBLE PRECISION,
		government_incentives TEXT NOT NULL DEFAULT '',
		industry_suitability TEXT[] NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION
	);
	CREATE INDEX IF NOT EXISTS industrial_locations_state_district_idx ON industrial_locations (state, district);
	CREATE INDEX IF NOT EXISTS industrial_locations_suitability_idx ON industrial_locations USING GIN (industry_suitability);
`

// DB is the subset of pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository implements location storage for PostgreSQL
type Repository struct {
	db DB
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the locations table and its indexes when missing.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return eris.Wrap(err, "repository: failed to create schema")
	}
	return nil
}

// LoadLocations returns every stored record ordered by id.
func (r *Repository) LoadLocations(ctx context.Context) ([]models.LocationRecord, error) {
	sql := `
		SELECT
			id, name, district, state,
			land_price, labor_availability, labor_cost, infra_index,
			population_density, education_level, income_level, transport_quality,
			environmental_factor, proximity_km, government_incentives,
			industry_suitability, latitude, longitude
		FROM industrial_locations
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, eris.Wrap(err, "repository: failed to execute locations query")
	}
	defer rows.Close()

	locations := []models.LocationRecord{}
	for rows.Next() {
		var (
			loc      models.LocationRecord
			labor    string
			lat, lon *float64
		)
		err := rows.Scan(
			&loc.ID,
			&loc.Name,
			&loc.District,
			&loc.State,
			&loc.LandPrice,
			&labor,
			&loc.LaborCost,
			&loc.InfraIndex,
			&loc.PopulationDensity,
			&loc.EducationLevel,
			&loc.IncomeLevel,
			&loc.TransportQuality,
			&loc.EnvironmentalFactor,
			&loc.ProximityKm,
			&loc.GovernmentIncentives,
			&loc.IndustrySuitability,
			&lat,
			&lon,
		)
		if err != nil {
			return nil, eris.Wrap(err, "repository: failed to scan location")
		}
		loc.LaborAvailability = models.LaborAvailability(labor)
		if lat != nil && lon != nil {
			loc.Location = &models.GeoPoint{Latitude: *lat, Longitude: *lon}
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "repository: error iterating rows")
	}

	return locations, nil
}

// ReplaceLocations swaps the table contents for records in a single transaction.
func (r *Repository) ReplaceLocations(ctx context.Context, records []models.LocationRecord) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, eris.Wrap(err, "repository: failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE industrial_locations"); err != nil {
		return 0, eris.Wrap(err, "repository: failed to truncate locations")
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{TableName}, Columns, pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
		return Row(records[i]), nil
	}))
	if err != nil {
		return 0, eris.Wrapf(err, "repository: COPY INTO %s", TableName)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, eris.Wrap(err, "repository: failed to commit")
	}
	return n, nil
}

// CountLocations returns the number of stored records.
func (r *Repository) CountLocations(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM industrial_locations").Scan(&count); err != nil {
		return 0, eris.Wrap(err, "repository: failed to count locations")
	}
	return count, nil
}

// Row converts a record into column values in Columns order.
func Row(rec models.LocationRecord) []any {
	var lat, lon *float64
	if rec.Location != nil {
		lat = &rec.Location.Latitude
		lon = &rec.Location.Longitude
	}
	suitability := rec.IndustrySuitability
	if suitability == nil {
		suitability = []string{}
	}
	return []any{
		rec.ID, rec.Name, rec.District, rec.State,
		rec.LandPrice, string(rec.LaborAvailability), rec.LaborCost, rec.InfraIndex,
		rec.PopulationDensity, rec.EducationLevel, rec.IncomeLevel, rec.TransportQuality,
		rec.EnvironmentalFactor, rec.ProximityKm, rec.GovernmentIncentives,
		suitability, lat, lon,
	}
}
