package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

// Catalog sources.
const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
	SourceFile     = "file"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	CatalogSource string `mapstructure:"CATALOG_SOURCE"`
	CatalogFile   string `mapstructure:"CATALOG_FILE"`
	DBSource      string `mapstructure:"DB_SOURCE"`

	SearchLimit  int     `mapstructure:"SEARCH_LIMIT"`
	NearestMaxKm float64 `mapstructure:"NEAREST_MAX_KM"`

	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitRPS       float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst     int      `mapstructure:"RATE_LIMIT_BURST"`

	GeocodeEnabled     bool          `mapstructure:"GEOCODE_ENABLED"`
	GeocodeBaseURL     string        `mapstructure:"GEOCODE_BASE_URL"`
	GeocodeUserAgent   string        `mapstructure:"GEOCODE_USER_AGENT"`
	GeocodeRPS         float64       `mapstructure:"GEOCODE_RPS"`
	GeocodeTimeout     time.Duration `mapstructure:"GEOCODE_TIMEOUT"`
	GeocodeConcurrency int           `mapstructure:"GEOCODE_CONCURRENCY"`
	GeocodeCacheTTL    time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":       "0.0.0.0:8080",
	"GIN_MODE":             "release",
	"SHUTDOWN_TIMEOUT":     "15s",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"CATALOG_SOURCE":       SourceEmbedded,
	"CATALOG_FILE":         "",
	"DB_SOURCE":            "",
	"SEARCH_LIMIT":         10,
	"NEAREST_MAX_KM":       50.0,
	"CORS_ALLOWED_ORIGINS": "http://localhost:5173,http://localhost:3000",
	"RATE_LIMIT_RPS":       20.0,
	"RATE_LIMIT_BURST":     40,
	"GEOCODE_ENABLED":      false,
	"GEOCODE_BASE_URL":     "https://nominatim.openstreetmap.org",
	"GEOCODE_USER_AGENT":   "industrial-land-api/1.0",
	"GEOCODE_RPS":          1.0,
	"GEOCODE_TIMEOUT":      "10s",
	"GEOCODE_CONCURRENCY":  4,
	"GEOCODE_CACHE_TTL":    "168h",
	"REDIS_ADDR":           "",
	"REDIS_PASSWORD":       "",
	"REDIS_DB":             0,
}

// LoadConfig reads configuration from app.env in path, then from the environment.
// A .env file in the working directory is loaded into the environment first, if present.
func LoadConfig(path string) (config Config, err error) {
	// .env is optional; deployments set real environment variables
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, eris.Wrap(err, "config: read file")
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, eris.Wrap(err, "config: unmarshal")
	}

	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	switch c.CatalogSource {
	case SourceEmbedded:
	case SourceFile:
		if c.CatalogFile == "" {
			return eris.New("config: CATALOG_FILE is required when CATALOG_SOURCE=file")
		}
	case SourcePostgres:
		if c.DBSource == "" {
			return eris.New("config: DB_SOURCE is required when CATALOG_SOURCE=postgres")
		}
	default:
		return eris.Errorf("config: unknown CATALOG_SOURCE %q", c.CatalogSource)
	}

	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return eris.New("config: rate limit settings must be non-negative")
	}
	if c.GeocodeEnabled && c.GeocodeBaseURL == "" {
		return eris.New("config: GEOCODE_BASE_URL is required when GEOCODE_ENABLED=true")
	}
	return nil
}
