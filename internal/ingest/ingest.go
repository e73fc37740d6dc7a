// Package ingest reads location sheets (CSV or XLSX) into location records.
//
// The first row is a header naming the columns; column order is free. Suitability labels are
// separated by ';'. Optional numeric columns may be blank. latitude and longitude must be both
// set or both blank.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"industrial-land-api/internal/models"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// RequiredColumns must appear in every sheet header.
var RequiredColumns = []string{
	"id", "name", "district", "state", "land_price",
	"labor_availability", "labor_cost", "infra_index", "industry_suitability",
}

// ReadFile parses a .csv or .xlsx file by extension.
func ReadFile(path string) ([]models.LocationRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: open %s", path)
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, eris.Errorf("ingest: unsupported file type %q", filepath.Ext(path))
	}
}

// ReadCSV parses a CSV location sheet.
func ReadCSV(r io.Reader) ([]models.LocationRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "ingest: read csv")
	}
	return ParseRows(rows)
}

// ReadXLSX parses the first sheet of an XLSX workbook.
func ReadXLSX(path string) ([]models.LocationRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("ingest: workbook has no sheets")
	}

	sheet := f.Sheets[0]
	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return ParseRows(rows)
}

// ParseRows converts a header row followed by data rows into records. Blank rows are skipped.
func ParseRows(rows [][]string) ([]models.LocationRecord, error) {
	if len(rows) == 0 {
		return nil, eris.New("ingest: missing header row")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[normalizeHeader(h)] = i
	}
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, eris.Errorf("ingest: missing required column %q", name)
		}
	}

	records := []models.LocationRecord{}
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		// 1-based, counting the header
		line := i + 2
		rec, err := parseRow(cols, row)
		if err != nil {
			return nil, eris.Wrapf(err, "ingest: row %d", line)
		}
		records = append(records, rec)
	}
	return records, nil
}

type rowReader struct {
	cols map[string]int
	row  []string
	err  error
}

func (r *rowReader) str(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

func (r *rowReader) float(name string) float64 {
	v := r.optFloat(name)
	if v == nil {
		if r.err == nil {
			r.err = eris.Errorf("%s is required", name)
		}
		return 0
	}
	return *v
}

func (r *rowReader) optFloat(name string) *float64 {
	s := r.str(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if r.err == nil {
			r.err = eris.Errorf("invalid %s %q", name, s)
		}
		return nil
	}
	return &v
}

func parseRow(cols map[string]int, row []string) (models.LocationRecord, error) {
	r := &rowReader{cols: cols, row: row}

	var rec models.LocationRecord
	idStr := r.str("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return rec, eris.Errorf("invalid id %q", idStr)
	}

	rec.ID = id
	rec.Name = r.str("name")
	rec.District = r.str("district")
	rec.State = r.str("state")
	rec.LandPrice = r.float("land_price")
	rec.LaborAvailability = models.LaborAvailability(r.str("labor_availability"))
	rec.LaborCost = r.float("labor_cost")
	rec.InfraIndex = r.float("infra_index")
	rec.PopulationDensity = r.optFloat("population_density")
	rec.EducationLevel = r.str("education_level")
	rec.IncomeLevel = r.str("income_level")
	rec.TransportQuality = r.str("transport_quality")
	rec.EnvironmentalFactor = r.str("environmental_factor")
	rec.ProximityKm = r.optFloat("proximity_km")
	rec.GovernmentIncentives = r.str("government_incentives")
	rec.IndustrySuitability = splitLabels(r.str("industry_suitability"))

	lat, lon := r.optFloat("latitude"), r.optFloat("longitude")
	if r.err != nil {
		return rec, r.err
	}
	switch {
	case lat != nil && lon != nil:
		rec.Location = &models.GeoPoint{Latitude: *lat, Longitude: *lon}
	case lat != nil || lon != nil:
		return rec, eris.New("latitude and longitude must be set together")
	}
	return rec, nil
}

func splitLabels(s string) []string {
	labels := []string{}
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			labels = append(labels, part)
		}
	}
	return labels
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(h)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
