package models

// IndustryType is a searchable industry label with its observed search frequency and growth
// rate. It only feeds suggestions and rankings.
type IndustryType struct {
	Name      string  `json:"name" yaml:"name"`
	Frequency int     `json:"frequency" yaml:"frequency"`
	Growth    float64 `json:"growth" yaml:"growth"`
}

// IndustryCount is the number of matched records suitable for an industry.
type IndustryCount struct {
	Industry string `json:"industry"`
	Count    int    `json:"count"`
}

// StateIndustrySummary is a per-state roll-up shown on the dashboard.
type StateIndustrySummary struct {
	State           string  `json:"state" yaml:"state"`
	TotalIndustries int     `json:"total_industries" yaml:"total_industries"`
	GrowthRate      float64 `json:"growth_rate" yaml:"growth_rate"`
	TopSector       string  `json:"top_sector" yaml:"top_sector"`
}

// CountrySales captures demand by country together with its preferred industries.
type CountrySales struct {
	Country       string   `json:"country" yaml:"country"`
	Sales         int      `json:"sales" yaml:"sales"`
	Value         float64  `json:"value" yaml:"value"`
	BounceRate    float64  `json:"bounce_rate" yaml:"bounce_rate"`
	TopIndustries []string `json:"top_industries" yaml:"top_industries"`
}

// GrowthPoint is one month of the industrial growth trend, keyed by sector.
type GrowthPoint struct {
	Month   string         `json:"month" yaml:"month"`
	Sectors map[string]int `json:"sectors" yaml:"sectors"`
}
