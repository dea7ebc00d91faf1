package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all application configuration.
type Config struct {
	Env       string          `koanf:"env" validate:"required"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logger    LoggerConfig    `koanf:"logger"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Seed      SeedConfig      `koanf:"seed"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host               string        `koanf:"host"`
	Port               int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	BodyLimit          string        `koanf:"body_limit" validate:"required"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConnections  int           `koanf:"max_connections" validate:"min=1"`
	MinConnections  int           `koanf:"min_connections" validate:"min=0"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime" validate:"gt=0"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
	HealthTimeout   time.Duration `koanf:"health_timeout" validate:"gt=0"`
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// RateLimitConfig caps requests per client over a window.
type RateLimitConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Requests int           `koanf:"requests" validate:"min=1"`
	Window   time.Duration `koanf:"window" validate:"gt=0"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// SeedConfig holds S3 settings for menu seed files.
type SeedConfig struct {
	S3Enabled bool   `koanf:"s3_enabled"`
	S3Bucket  string `koanf:"s3_bucket"`
	S3Region  string `koanf:"s3_region"`
	S3Prefix  string `koanf:"s3_prefix"`
}

// envKeys maps recognised environment variables to configuration keys.
// Anything not listed here is ignored.
var envKeys = map[string]string{
	"NODE_ENV": "env",

	"SERVER_HOST":             "server.host",
	"PORT":                    "server.port",
	"SERVER_READ_TIMEOUT":     "server.read_timeout",
	"SERVER_WRITE_TIMEOUT":    "server.write_timeout",
	"SERVER_IDLE_TIMEOUT":     "server.idle_timeout",
	"SERVER_SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
	"SERVER_BODY_LIMIT":       "server.body_limit",
	"CORS_ALLOWED_ORIGINS":    "server.cors_allowed_origins",

	"DB_HOST":              "database.host",
	"DB_PORT":              "database.port",
	"DB_USER":              "database.user",
	"DB_PASSWORD":          "database.password",
	"DB_NAME":              "database.name",
	"DB_SSL_MODE":          "database.ssl_mode",
	"DB_MAX_CONNECTIONS":   "database.max_connections",
	"DB_MIN_CONNECTIONS":   "database.min_connections",
	"DB_MAX_CONN_LIFETIME": "database.max_conn_lifetime",
	"DB_AUTO_MIGRATE":      "database.auto_migrate",
	"DB_HEALTH_TIMEOUT":    "database.health_timeout",

	"LOG_LEVEL":  "logger.level",
	"LOG_FORMAT": "logger.format",

	"RATE_LIMIT_ENABLED":  "rate_limit.enabled",
	"RATE_LIMIT_REQUESTS": "rate_limit.requests",
	"RATE_LIMIT_WINDOW":   "rate_limit.window",

	"METRICS_ENABLED": "metrics.enabled",

	"SEED_S3_ENABLED": "seed.s3_enabled",
	"SEED_S3_BUCKET":  "seed.s3_bucket",
	"SEED_S3_REGION":  "seed.s3_region",
	"SEED_S3_PREFIX":  "seed.s3_prefix",
}

var defaults = map[string]any{
	"env": "development",

	"server.host":                 "0.0.0.0",
	"server.port":                 3000,
	"server.read_timeout":         "15s",
	"server.write_timeout":        "15s",
	"server.idle_timeout":         "60s",
	"server.shutdown_timeout":     "30s",
	"server.body_limit":           "100K",
	"server.cors_allowed_origins": []string{"*"},

	"database.host":              "localhost",
	"database.port":              5432,
	"database.user":              "postgres",
	"database.password":          "",
	"database.name":              "menu",
	"database.ssl_mode":          "disable",
	"database.max_connections":   10,
	"database.min_connections":   1,
	"database.max_conn_lifetime": "5m",
	"database.auto_migrate":      true,
	"database.health_timeout":    "5s",

	"logger.level":  "info",
	"logger.format": "json",

	"rate_limit.enabled":  true,
	"rate_limit.requests": 100,
	"rate_limit.window":   "15m",

	"metrics.enabled": true,

	"seed.s3_enabled": false,
	"seed.s3_bucket":  "",
	"seed.s3_region":  "us-east-1",
	"seed.s3_prefix":  "seeds/",
}

// listKeys hold comma-separated values.
var listKeys = map[string]struct{}{
	"server.cors_allowed_origins": {},
}

// Load loads configuration from environment variables on top of built-in defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	// Empty variables fall back to the default, same as unset ones.
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		path := envKeys[key]
		if _, ok := listKeys[path]; ok {
			return path, strings.Split(value, ",")
		}
		return path, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	for i, origin := range cfg.Server.CORSAllowedOrigins {
		cfg.Server.CORSAllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fe := verrs[0]
			return fmt.Errorf("invalid %s: failed on '%s' (value: %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return err
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Seed.S3Enabled {
		if c.Seed.S3Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 seeding is enabled")
		}
		if c.Seed.S3Region == "" {
			return fmt.Errorf("S3 region is required when S3 seeding is enabled")
		}
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
