package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidCatalog is matched by every load-time validation failure.
var ErrInvalidCatalog = errors.New("catalog: invalid data")

// ValidationError lists every rule the dataset broke.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog: invalid data: %d violation(s): %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}

// Is makes errors.Is(err, ErrInvalidCatalog) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

// Validate checks every invariant of the dataset and reports all violations at once.
func Validate(ds Dataset) error {
	var v []string
	add := func(format string, args ...any) {
		v = append(v, fmt.Sprintf(format, args...))
	}

	seen := make(map[int]int, len(ds.Locations))
	for i, r := range ds.Locations {
		ref := fmt.Sprintf("locations[%d] (id %d)", i, r.ID)

		if prev, dup := seen[r.ID]; dup {
			add("%s: duplicate id, first used at locations[%d]", ref, prev)
		} else {
			seen[r.ID] = i
		}
		if strings.TrimSpace(r.Name) == "" {
			add("%s: name is required", ref)
		}
		if strings.TrimSpace(r.District) == "" {
			add("%s: district is required", ref)
		}
		if strings.TrimSpace(r.State) == "" {
			add("%s: state is required", ref)
		}
		if !r.LaborAvailability.Valid() {
			add("%s: labor availability %q is not one of Low, Medium, High, Very High", ref, r.LaborAvailability)
		}
		if len(r.IndustrySuitability) == 0 {
			add("%s: industry suitability must not be empty", ref)
		}
		for _, label := range r.IndustrySuitability {
			if strings.TrimSpace(label) == "" {
				add("%s: industry suitability contains a blank label", ref)
				break
			}
		}
		if !finite(r.InfraIndex) || r.InfraIndex < 0 || r.InfraIndex > 10 {
			add("%s: infra index %v outside [0, 10]", ref, r.InfraIndex)
		}
		checkNonNegative(add, ref, "land price", r.LandPrice)
		checkNonNegative(add, ref, "labor cost", r.LaborCost)
		if r.PopulationDensity != nil {
			checkNonNegative(add, ref, "population density", *r.PopulationDensity)
		}
		if r.ProximityKm != nil {
			checkNonNegative(add, ref, "proximity", *r.ProximityKm)
		}
		if p := r.Location; p != nil {
			if !finite(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
				add("%s: latitude %v outside [-90, 90]", ref, p.Latitude)
			}
			if !finite(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
				add("%s: longitude %v outside [-180, 180]", ref, p.Longitude)
			}
		}
	}

	for i, t := range ds.IndustryTypes {
		if strings.TrimSpace(t.Name) == "" {
			add("industry_types[%d]: name is required", i)
		}
		if t.Frequency < 0 {
			add("industry_types[%d]: frequency %d is negative", i, t.Frequency)
		}
	}
	for i, s := range ds.StateSummaries {
		if strings.TrimSpace(s.State) == "" {
			add("state_summaries[%d]: state is required", i)
		}
		if s.TotalIndustries < 0 {
			add("state_summaries[%d]: total industries %d is negative", i, s.TotalIndustries)
		}
	}
	for i, c := range ds.CountrySales {
		if strings.TrimSpace(c.Country) == "" {
			add("country_sales[%d]: country is required", i)
		}
		if c.Sales < 0 || c.Value < 0 {
			add("country_sales[%d]: sales figures must be non-negative", i)
		}
	}
	for i, g := range ds.GrowthTrend {
		if strings.TrimSpace(g.Month) == "" {
			add("growth_trend[%d]: month is required", i)
		}
	}

	if len(v) > 0 {
		return &ValidationError{Violations: v}
	}
	return nil
}

func checkNonNegative(add func(string, ...any), ref, field string, value float64) {
	if !finite(value) || value < 0 {
		add("%s: %s %v must be a non-negative number", ref, field, value)
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
