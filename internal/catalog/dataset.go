package catalog

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"industrial-land-api/internal/models"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var seedYAML []byte

// Dataset is the raw material a Catalog is built from.
type Dataset struct {
	Locations      []models.LocationRecord       `yaml:"locations"`
	IndustryTypes  []models.IndustryType         `yaml:"industry_types"`
	StateSummaries []models.StateIndustrySummary `yaml:"state_summaries"`
	CountrySales   []models.CountrySales         `yaml:"country_sales"`
	GrowthTrend    []models.GrowthPoint          `yaml:"growth_trend"`
}

// EmbeddedDataset decodes the seed compiled into the binary.
func EmbeddedDataset() (Dataset, error) {
	ds, err := DecodeDataset(bytes.NewReader(seedYAML))
	if err != nil {
		return Dataset{}, eris.Wrap(err, "catalog: embedded seed")
	}
	return ds, nil
}

// DecodeDataset reads a YAML dataset. Unknown keys are rejected.
func DecodeDataset(r io.Reader) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if err == io.EOF {
			return Dataset{}, eris.New("catalog: empty dataset")
		}
		return Dataset{}, eris.Wrap(err, "catalog: decode dataset")
	}
	return ds, nil
}

// ReadDatasetFile decodes the YAML dataset stored at path.
func ReadDatasetFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, eris.Wrapf(err, "catalog: open %s", path)
	}
	defer f.Close()

	return DecodeDataset(f)
}
