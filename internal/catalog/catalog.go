// Package catalog holds the immutable table of industrial-land records and the pure query
// operations every API surface reads from.
//
// A Catalog is built once by New and never modified afterwards, so it is safe for concurrent
// use without locking. Query methods never fail: no match is an empty, non-nil slice.
// Returned records are copies.
package catalog

import (
	"math"
	"slices"
	"sort"

	"industrial-land-api/internal/models"

	"github.com/twpayne/go-geom"
	"golang.org/x/text/cases"
)

// PriceRange bounds the land price, inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AnyPrice matches every non-negative land price.
var AnyPrice = PriceRange{Min: 0, Max: math.MaxFloat64}

// Contains reports whether price lies within the range.
func (p PriceRange) Contains(price float64) bool {
	return price >= p.Min && price <= p.Max
}

// Criteria is a conjunctive filter. Nil fields impose no constraint; the price range always
// applies.
type Criteria struct {
	State        *string
	District     *string
	IndustryType *string
	PriceRange   PriceRange
}

// String returns a pointer to s, for building optional criteria.
func String(s string) *string {
	return &s
}

// Catalog is the read-only location table.
type Catalog struct {
	records []models.LocationRecord
	byID    map[int]int

	// parallel to records; nil entries have no coordinates
	points []*geom.Point
	// parallel to records; case-folded search fields
	folded []searchKeys

	states     []string
	districts  []string
	industries []string

	industryTypes  []models.IndustryType
	stateSummaries []models.StateIndustrySummary
	countrySales   []models.CountrySales
	growthTrend    []models.GrowthPoint
}

// New validates ds and builds a Catalog from it. An invalid dataset yields an error matching
// ErrInvalidCatalog and no catalog.
func New(ds Dataset) (*Catalog, error) {
	if err := Validate(ds); err != nil {
		return nil, err
	}

	c := &Catalog{
		records: make([]models.LocationRecord, len(ds.Locations)),
		byID:    make(map[int]int, len(ds.Locations)),
		points:  make([]*geom.Point, len(ds.Locations)),
		folded:  make([]searchKeys, len(ds.Locations)),
	}

	fold := cases.Fold()
	for i, r := range ds.Locations {
		c.records[i] = r.Clone()
		c.byID[r.ID] = i
		if r.Location != nil {
			c.points[i] = geom.NewPointFlat(geom.XY, []float64{r.Location.Longitude, r.Location.Latitude})
		}
		c.folded[i] = newSearchKeys(fold, r)
	}

	c.states = distinct(c.records, func(r models.LocationRecord) []string { return []string{r.State} })
	c.districts = distinct(c.records, func(r models.LocationRecord) []string { return []string{r.District} })
	c.industries = distinct(c.records, func(r models.LocationRecord) []string { return r.IndustrySuitability })

	c.industryTypes = cloneSlice(ds.IndustryTypes)
	sort.SliceStable(c.industryTypes, func(i, j int) bool {
		return c.industryTypes[i].Frequency > c.industryTypes[j].Frequency
	})
	c.stateSummaries = cloneSlice(ds.StateSummaries)
	c.countrySales = make([]models.CountrySales, len(ds.CountrySales))
	for i, s := range ds.CountrySales {
		s.TopIndustries = cloneSlice(s.TopIndustries)
		c.countrySales[i] = s
	}
	c.growthTrend = make([]models.GrowthPoint, len(ds.GrowthTrend))
	for i, g := range ds.GrowthTrend {
		g.Sectors = cloneMap(g.Sectors)
		c.growthTrend[i] = g
	}

	return c, nil
}

// Len returns the number of location records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns every record in insertion order.
func (c *Catalog) All() []models.LocationRecord {
	return c.collect(func(models.LocationRecord) bool { return true })
}

// Get returns the record with the given id.
func (c *Catalog) Get(id int) (models.LocationRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.LocationRecord{}, false
	}
	return c.records[i].Clone(), true
}

// FindByIndustry returns every record suitable for industry, by exact case-sensitive match.
func (c *Catalog) FindByIndustry(industry string) []models.LocationRecord {
	return c.collect(func(r models.LocationRecord) bool {
		return r.SuitableFor(industry)
	})
}

// FindByLocation returns the records in state and, when district is non-nil, in that district.
// Both are compared literally; an empty string is not a wildcard.
func (c *Catalog) FindByLocation(state string, district *string) []models.LocationRecord {
	return c.collect(func(r models.LocationRecord) bool {
		return matchesLocation(r, state, district)
	})
}

// FilterByCriteria applies every supplied criterion and the price range.
func (c *Catalog) FilterByCriteria(crit Criteria) []models.LocationRecord {
	return c.collect(func(r models.LocationRecord) bool {
		if crit.State != nil && r.State != *crit.State {
			return false
		}
		if crit.District != nil && r.District != *crit.District {
			return false
		}
		if crit.IndustryType != nil && !r.SuitableFor(*crit.IndustryType) {
			return false
		}
		return crit.PriceRange.Contains(r.LandPrice)
	})
}

// AggregateIndustryCounts counts suitability labels across the records matched by
// FindByLocation(state, district). Results are ordered by count, highest first; equal counts
// keep the order in which the labels were first encountered.
func (c *Catalog) AggregateIndustryCounts(state string, district *string) []models.IndustryCount {
	counts := []models.IndustryCount{}
	index := make(map[string]int)
	for _, r := range c.records {
		if !matchesLocation(r, state, district) {
			continue
		}
		for _, label := range r.IndustrySuitability {
			if i, ok := index[label]; ok {
				counts[i].Count++
				continue
			}
			index[label] = len(counts)
			counts = append(counts, models.IndustryCount{Industry: label, Count: 1})
		}
	}

	slices.SortStableFunc(counts, func(a, b models.IndustryCount) int {
		return b.Count - a.Count
	})
	return counts
}

// DistinctStates returns every state in the catalog, sorted and de-duplicated.
func (c *Catalog) DistinctStates() []string {
	return cloneSlice(c.states)
}

// DistinctDistricts returns every district in the catalog, sorted and de-duplicated.
func (c *Catalog) DistinctDistricts() []string {
	return cloneSlice(c.districts)
}

// DistinctIndustryTypes returns every suitability label in the catalog, sorted and
// de-duplicated.
func (c *Catalog) DistinctIndustryTypes() []string {
	return cloneSlice(c.industries)
}

// IndustryTypes returns the suggested industry types, most searched first.
func (c *Catalog) IndustryTypes() []models.IndustryType {
	return cloneSlice(c.industryTypes)
}

// StateSummaries returns the per-state dashboard roll-ups.
func (c *Catalog) StateSummaries() []models.StateIndustrySummary {
	return cloneSlice(c.stateSummaries)
}

// CountrySales returns demand by country.
func (c *Catalog) CountrySales() []models.CountrySales {
	out := make([]models.CountrySales, len(c.countrySales))
	for i, s := range c.countrySales {
		s.TopIndustries = cloneSlice(s.TopIndustries)
		out[i] = s
	}
	return out
}

// GrowthTrend returns the monthly growth series.
func (c *Catalog) GrowthTrend() []models.GrowthPoint {
	out := make([]models.GrowthPoint, len(c.growthTrend))
	for i, g := range c.growthTrend {
		g.Sectors = cloneMap(g.Sectors)
		out[i] = g
	}
	return out
}

func (c *Catalog) collect(keep func(models.LocationRecord) bool) []models.LocationRecord {
	out := []models.LocationRecord{}
	for _, r := range c.records {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func matchesLocation(r models.LocationRecord, state string, district *string) bool {
	if r.State != state {
		return false
	}
	return district == nil || r.District == *district
}

func distinct(records []models.LocationRecord, values func(models.LocationRecord) []string) []string {
	set := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		for _, v := range values(r) {
			if _, ok := set[v]; ok {
				continue
			}
			set[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// cloneSlice copies s into a new non-nil slice.
func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
