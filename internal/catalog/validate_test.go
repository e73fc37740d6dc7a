package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"industrial-land-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord(id int) models.LocationRecord {
	return models.LocationRecord{
		ID: id, Name: "Sanand", District: "Ahmedabad", State: "Gujarat",
		LandPrice: 12500, LaborAvailability: models.LaborHigh, LaborCost: 450, InfraIndex: 8.2,
		IndustrySuitability: []string{"Automobile"},
	}
}

func TestNew_RejectsInvalidData(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(ds *Dataset)
		violation string
	}{
		{
			name:      "duplicate id",
			mutate:    func(ds *Dataset) { ds.Locations = append(ds.Locations, validRecord(1)) },
			violation: "duplicate id",
		},
		{
			name:      "missing state",
			mutate:    func(ds *Dataset) { ds.Locations[0].State = " " },
			violation: "state is required",
		},
		{
			name:      "missing name",
			mutate:    func(ds *Dataset) { ds.Locations[0].Name = "" },
			violation: "name is required",
		},
		{
			name:      "empty suitability",
			mutate:    func(ds *Dataset) { ds.Locations[0].IndustrySuitability = nil },
			violation: "industry suitability must not be empty",
		},
		{
			name:      "blank suitability label",
			mutate:    func(ds *Dataset) { ds.Locations[0].IndustrySuitability = []string{"Automobile", ""} },
			violation: "blank label",
		},
		{
			name:      "infra index above range",
			mutate:    func(ds *Dataset) { ds.Locations[0].InfraIndex = 10.5 },
			violation: "infra index 10.5 outside [0, 10]",
		},
		{
			name:      "infra index NaN",
			mutate:    func(ds *Dataset) { ds.Locations[0].InfraIndex = math.NaN() },
			violation: "infra index",
		},
		{
			name:      "negative land price",
			mutate:    func(ds *Dataset) { ds.Locations[0].LandPrice = -1 },
			violation: "land price -1",
		},
		{
			name:      "negative optional population density",
			mutate:    func(ds *Dataset) { ds.Locations[0].PopulationDensity = ptr(-3) },
			violation: "population density",
		},
		{
			name:      "unknown labor availability",
			mutate:    func(ds *Dataset) { ds.Locations[0].LaborAvailability = "Plenty" },
			violation: `labor availability "Plenty"`,
		},
		{
			name: "latitude out of range",
			mutate: func(ds *Dataset) {
				ds.Locations[0].Location = &models.GeoPoint{Latitude: 95, Longitude: 72}
			},
			violation: "latitude 95",
		},
		{
			name: "unnamed industry type",
			mutate: func(ds *Dataset) {
				ds.IndustryTypes = []models.IndustryType{{Frequency: 3}}
			},
			violation: "industry_types[0]: name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Dataset{Locations: []models.LocationRecord{validRecord(1)}}
			tt.mutate(&ds)

			c, err := New(ds)
			assert.Nil(t, c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.True(t, containsViolation(verr.Violations, tt.violation), "violations: %v", verr.Violations)
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	bad := validRecord(2)
	bad.State = ""
	bad.InfraIndex = -1
	ds := Dataset{Locations: []models.LocationRecord{validRecord(1), bad}}

	err := Validate(ds)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Violations, 2)
	assert.Contains(t, err.Error(), "2 violation(s)")
}

func TestValidate_AcceptsOptionalFieldsAbsent(t *testing.T) {
	assert.NoError(t, Validate(Dataset{Locations: []models.LocationRecord{validRecord(1)}}))
}

func containsViolation(violations []string, fragment string) bool {
	for _, v := range violations {
		if strings.Contains(v, fragment) {
			return true
		}
	}
	return false
}

func TestReadDatasetFile(t *testing.T) {
	dir := t.TempDir()

	valid := `
locations:
  - id: 7
    name: Baddi
    district: Solan
    state: Himachal Pradesh
    land_price: 6800
    labor_availability: Medium
    labor_cost: 360
    infra_index: 6.5
    industry_suitability: [Pharmaceuticals, FMCG]
industry_types:
  - {name: Pharmaceuticals, frequency: 541, growth: 15.7}
`
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(valid), 0o644))

	ds, err := ReadDatasetFile(path)
	require.NoError(t, err)
	require.Len(t, ds.Locations, 1)
	assert.Equal(t, "Baddi", ds.Locations[0].Name)
	assert.Equal(t, models.LaborMedium, ds.Locations[0].LaborAvailability)
	assert.Nil(t, ds.Locations[0].Location)
	assert.Equal(t, 541, ds.IndustryTypes[0].Frequency)
}

func TestReadDatasetFile_Errors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("locations:\n  - id: 1\n    taluka_name: Vapi\n"), 0o644))
	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	tests := []struct {
		name string
		path string
		msg  string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.yaml"), msg: "catalog: open"},
		{name: "unknown field", path: unknown, msg: "catalog: decode dataset"},
		{name: "empty file", path: empty, msg: "catalog: empty dataset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDatasetFile(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
