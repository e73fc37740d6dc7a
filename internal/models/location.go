package models

// LaborAvailability is the ordinal labour-supply category of a location.
type LaborAvailability string

const (
	LaborLow      LaborAvailability = "Low"
	LaborMedium   LaborAvailability = "Medium"
	LaborHigh     LaborAvailability = "High"
	LaborVeryHigh LaborAvailability = "Very High"
)

// Valid reports whether a is one of the known categories.
func (a LaborAvailability) Valid() bool {
	switch a {
	case LaborLow, LaborMedium, LaborHigh, LaborVeryHigh:
		return true
	}
	return false
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// LocationRecord represents one industrial-land entry at taluka level, with its economic
// attributes, the industries it suits and, when known, its coordinates.
type LocationRecord struct {
	ID                   int               `json:"id" yaml:"id"`
	Name                 string            `json:"name" yaml:"name"`
	District             string            `json:"district" yaml:"district"`
	State                string            `json:"state" yaml:"state"`
	LandPrice            float64           `json:"land_price" yaml:"land_price"`
	LaborAvailability    LaborAvailability `json:"labor_availability" yaml:"labor_availability"`
	LaborCost            float64           `json:"labor_cost" yaml:"labor_cost"`
	InfraIndex           float64           `json:"infra_index" yaml:"infra_index"`
	PopulationDensity    *float64          `json:"population_density,omitempty" yaml:"population_density,omitempty"`
	EducationLevel       string            `json:"education_level,omitempty" yaml:"education_level,omitempty"`
	IncomeLevel          string            `json:"income_level,omitempty" yaml:"income_level,omitempty"`
	TransportQuality     string            `json:"transport_quality,omitempty" yaml:"transport_quality,omitempty"`
	EnvironmentalFactor  string            `json:"environmental_factor,omitempty" yaml:"environmental_factor,omitempty"`
	ProximityKm          *float64          `json:"proximity_km,omitempty" yaml:"proximity_km,omitempty"`
	GovernmentIncentives string            `json:"government_incentives,omitempty" yaml:"government_incentives,omitempty"`
	IndustrySuitability  []string          `json:"industry_suitability" yaml:"industry_suitability"`
	Location             *GeoPoint         `json:"location,omitempty" yaml:"location,omitempty"`
}

// SuitableFor reports whether industry is one of the record's suitability labels.
// Matching is exact and case-sensitive.
func (r LocationRecord) SuitableFor(industry string) bool {
	for _, s := range r.IndustrySuitability {
		if s == industry {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices or pointers with r.
func (r LocationRecord) Clone() LocationRecord {
	out := r
	if r.IndustrySuitability != nil {
		out.IndustrySuitability = append([]string(nil), r.IndustrySuitability...)
	}
	if r.PopulationDensity != nil {
		v := *r.PopulationDensity
		out.PopulationDensity = &v
	}
	if r.ProximityKm != nil {
		v := *r.ProximityKm
		out.ProximityKm = &v
	}
	if r.Location != nil {
		p := *r.Location
		out.Location = &p
	}
	return out
}

// NearestLocation is a record together with its distance from a query point.
type NearestLocation struct {
	LocationRecord
	DistanceKm float64 `json:"distance_km"`
}
