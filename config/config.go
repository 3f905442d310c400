package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Cache          CacheConfig          `mapstructure:"cache"`
	RateLimit      RateLimitConfig      `mapstructure:"ratelimit"`
	Matching       MatchingConfig       `mapstructure:"matching"`
	Catalog        CatalogConfig        `mapstructure:"catalog"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	Database       DatabaseConfig       `mapstructure:"database"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port              string   `mapstructure:"port"`
	Environment       string   `mapstructure:"environment"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"`
	DefaultUnitSystem string   `mapstructure:"default_unit_system"` // "metric" or "imperial"
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute; 0 disables
	Burst int `mapstructure:"burst"`
}

// MatchingConfig holds food recognition settings
type MatchingConfig struct {
	EnablePreprocessing bool `mapstructure:"enable_preprocessing"`
	EnableDebugLogging  bool `mapstructure:"enable_debug_logging"`
}

// CatalogConfig selects the food catalog; an empty path uses the built-in one
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// RecommendationConfig holds recommendation engine settings
type RecommendationConfig struct {
	MealAllocation    float64 `mapstructure:"meal_allocation"`
	AlternativesLimit int     `mapstructure:"alternatives_limit"`
	DefaultAge        int     `mapstructure:"default_age"`
}

// DatabaseConfig holds history storage settings
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "none", "sqlite" or "postgres"
	DSN    string `mapstructure:"dsn"`
}

// Load loads configuration from a .env file, environment variables and
// config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/nutriscan/")

	// NUTRISCAN_SERVER_PORT -> server.port
	v.SetEnvPrefix("NUTRISCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	config.Server.DefaultUnitSystem = strings.ToLower(config.Server.DefaultUnitSystem)
	config.Cache.Type = strings.ToLower(config.Cache.Type)
	config.Database.Driver = strings.ToLower(config.Database.Driver)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// HistoryEnabled reports whether a database is configured
func (c *Config) HistoryEnabled() bool {
	return c.Database.Driver != "none"
}

// loadEnvFile loads ./.env into the process environment. Variables that
// are already set win; a missing file is not an error.
func loadEnvFile() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values. Every key needs a
// default so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})
	v.SetDefault("server.default_unit_system", "metric")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)

	// Matching defaults
	v.SetDefault("matching.enable_preprocessing", true)
	v.SetDefault("matching.enable_debug_logging", false)

	// Catalog defaults
	v.SetDefault("catalog.path", "")

	// Recommendation defaults
	v.SetDefault("recommendation.meal_allocation", 0.30)
	v.SetDefault("recommendation.alternatives_limit", 3)
	v.SetDefault("recommendation.default_age", 30)

	// Database defaults
	v.SetDefault("database.driver", "none")
	v.SetDefault("database.dsn", "")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if u := config.Server.DefaultUnitSystem; u != "metric" && u != "imperial" {
		return fmt.Errorf("default unit system must be 'metric' or 'imperial', got: %s", u)
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("redis URL is required when cache type is 'redis' (set NUTRISCAN_CACHE_REDIS_URL)")
	}

	if config.Cache.TTL < 0 {
		return fmt.Errorf("cache TTL must not be negative, got: %s", config.Cache.TTL)
	}

	if config.RateLimit.PerIP < 0 || config.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}

	if a := config.Recommendation.MealAllocation; a <= 0 || a > 1 {
		return fmt.Errorf("meal allocation must be in (0, 1], got: %v", a)
	}

	if config.Recommendation.AlternativesLimit < 1 {
		return fmt.Errorf("alternatives limit must be at least 1, got: %d", config.Recommendation.AlternativesLimit)
	}

	if config.Recommendation.DefaultAge < 1 {
		return fmt.Errorf("default age must be positive, got: %d", config.Recommendation.DefaultAge)
	}

	switch config.Database.Driver {
	case "none":
	case "sqlite", "postgres":
		if config.Database.DSN == "" {
			return fmt.Errorf("database DSN is required when driver is '%s' (set NUTRISCAN_DATABASE_DSN)", config.Database.Driver)
		}
	default:
		return fmt.Errorf("database driver must be 'none', 'sqlite' or 'postgres', got: %s", config.Database.Driver)
	}

	return nil
}
