package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Gemini     GeminiConfig
	Enrichment EnrichmentConfig
	RateLimit  RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN builds the GORM/pgx connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// AuthConfig holds credential signing settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// GeminiConfig holds the AI estimator settings
type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// EnrichmentConfig holds background enrichment settings
type EnrichmentConfig struct {
	QueueSize  int           `mapstructure:"queue_size"`
	SweepDelay time.Duration `mapstructure:"sweep_delay"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIPPerMinute int `mapstructure:"per_ip_per_minute"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Optional .env for local development; env vars win either way
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/familyplate/")

	v.SetEnvPrefix("FAMILYPLATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "4000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "familyplate")
	v.SetDefault("database.sslmode", "disable")

	// Auth defaults
	v.SetDefault("auth.jwt_secret", "dev_secret_key")
	v.SetDefault("auth.token_ttl", "720h") // 30 days

	// Gemini defaults
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.model", "gemini-2.0-flash")

	// Enrichment defaults
	v.SetDefault("enrichment.queue_size", 64)
	v.SetDefault("enrichment.sweep_delay", "2s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip_per_minute", 120)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required (set FAMILYPLATE_AUTH_JWT_SECRET)")
	}

	if config.Server.Environment == "production" && config.Auth.JWTSecret == "dev_secret_key" {
		return fmt.Errorf("refusing to run in production with the default JWT secret")
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Enrichment.QueueSize <= 0 {
		return fmt.Errorf("enrichment queue size must be positive, got: %d", config.Enrichment.QueueSize)
	}

	return nil
}
