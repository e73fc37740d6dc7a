package catalog

import (
	"math"
	"slices"
	"strings"

	"industrial-land-api/internal/models"

	"golang.org/x/text/cases"
)

const earthRadiusKm = 6371.0

// Search ranks, best first.
const (
	rankName = iota
	rankDistrict
	rankState
	rankIndustry
)

type searchKeys struct {
	name, district, state string
	industries            []string
}

func newSearchKeys(fold cases.Caser, r models.LocationRecord) searchKeys {
	k := searchKeys{
		name:       fold.String(r.Name),
		district:   fold.String(r.District),
		state:      fold.String(r.State),
		industries: make([]string, len(r.IndustrySuitability)),
	}
	for i, label := range r.IndustrySuitability {
		k.industries[i] = fold.String(label)
	}
	return k
}

func (k searchKeys) rank(q string) (int, bool) {
	switch {
	case strings.Contains(k.name, q):
		return rankName, true
	case strings.Contains(k.district, q):
		return rankDistrict, true
	case strings.Contains(k.state, q):
		return rankState, true
	}
	for _, label := range k.industries {
		if strings.Contains(label, q) {
			return rankIndustry, true
		}
	}
	return 0, false
}

// Search performs a case-insensitive substring search over name, district, state and
// suitability labels. Name hits rank above district hits, then state, then label; equal ranks
// keep catalog order. limit <= 0 returns every hit. A blank query matches nothing.
func (c *Catalog) Search(query string, limit int) []models.LocationRecord {
	q := cases.Fold().String(strings.TrimSpace(query))
	if q == "" {
		return []models.LocationRecord{}
	}

	type hit struct {
		idx, rank int
	}
	var hits []hit
	for i, k := range c.folded {
		if rank, ok := k.rank(q); ok {
			hits = append(hits, hit{idx: i, rank: rank})
		}
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		return a.rank - b.rank
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]models.LocationRecord, len(hits))
	for i, h := range hits {
		out[i] = c.records[h.idx].Clone()
	}
	return out
}

// Nearest returns the geolocated record closest to (lat, lon) by great-circle distance.
// maxKm <= 0 disables the distance cap. Ties go to the lower id.
func (c *Catalog) Nearest(lat, lon, maxKm float64) (models.NearestLocation, bool) {
	best := -1
	bestKm := math.Inf(1)
	for i, p := range c.points {
		if p == nil {
			continue
		}
		d := haversineKm(lat, lon, p.Y(), p.X())
		if maxKm > 0 && d > maxKm {
			continue
		}
		if d < bestKm || (d == bestKm && c.records[i].ID < c.records[best].ID) {
			best, bestKm = i, d
		}
	}
	if best < 0 {
		return models.NearestLocation{}, false
	}
	return models.NearestLocation{
		LocationRecord: c.records[best].Clone(),
		DistanceKm:     math.Round(bestKm*1000) / 1000,
	}, true
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}
