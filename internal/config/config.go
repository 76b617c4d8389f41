package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// IdentityFallback controls what the reconciler does when a remote user
// cannot be resolved to a Student through an enrollment or email match.
type IdentityFallback string

const (
	// IdentityFallbackSynthetic creates a placeholder Student keyed by the
	// remote user id.
	IdentityFallbackSynthetic IdentityFallback = "synthetic"
	// IdentityFallbackError skips the membership and records a conflict.
	IdentityFallbackError IdentityFallback = "error"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Canvas LMS configuration
	CanvasBaseURL        string `mapstructure:"CANVAS_BASE_URL"`
	CanvasAccessToken    string `mapstructure:"CANVAS_ACCESS_TOKEN"`
	CanvasPageSize       int    `mapstructure:"CANVAS_PAGE_SIZE"`
	CanvasTimeoutSec     int    `mapstructure:"CANVAS_TIMEOUT_SEC"`
	CanvasMaxRetries     int    `mapstructure:"CANVAS_MAX_RETRIES"`
	CanvasRateLimitTries int    `mapstructure:"CANVAS_RATE_LIMIT_TRIES"`
	CanvasBackoffMaxSec  int    `mapstructure:"CANVAS_BACKOFF_MAX_SEC"`

	// Progress store configuration
	RedisURL           string `mapstructure:"REDIS_URL"`
	ProgressTTLMinutes int    `mapstructure:"PROGRESS_TTL_MINUTES"`

	// Sync policy
	IdentityFallback IdentityFallback `mapstructure:"IDENTITY_FALLBACK"`
	DeleteStaleTeams bool             `mapstructure:"DELETE_STALE_TEAMS"`

	// LDAP directory configuration (optional identity fallback source)
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// GitHub configuration (student Git identity linking)
	GitHubToken   string `mapstructure:"GITHUB_TOKEN"`
	GitHubBaseURL string `mapstructure:"GITHUB_BASE_URL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "gradebench")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Canvas defaults
	viper.SetDefault("CANVAS_BASE_URL", "https://canvas.instructure.com")
	viper.SetDefault("CANVAS_ACCESS_TOKEN", "")
	viper.SetDefault("CANVAS_PAGE_SIZE", 100)
	viper.SetDefault("CANVAS_TIMEOUT_SEC", 30)
	viper.SetDefault("CANVAS_MAX_RETRIES", 3)
	viper.SetDefault("CANVAS_RATE_LIMIT_TRIES", 5)
	viper.SetDefault("CANVAS_BACKOFF_MAX_SEC", 60)

	// Progress store defaults
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PROGRESS_TTL_MINUTES", 30)

	// Sync policy defaults
	viper.SetDefault("IDENTITY_FALLBACK", string(IdentityFallbackSynthetic))
	viper.SetDefault("DELETE_STALE_TEAMS", false)

	// LDAP defaults (empty host disables directory lookups)
	viper.SetDefault("LDAP_HOST", "")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)

	// GitHub defaults
	viper.SetDefault("GITHUB_TOKEN", "")
	viper.SetDefault("GITHUB_BASE_URL", "")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.CanvasAccessToken == "" {
			return fmt.Errorf("CANVAS_ACCESS_TOKEN must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.IdentityFallback {
	case IdentityFallbackSynthetic, IdentityFallbackError:
	default:
		return fmt.Errorf("IDENTITY_FALLBACK must be %q or %q",
			IdentityFallbackSynthetic, IdentityFallbackError)
	}

	return nil
}

// CanvasTimeout returns the per-request timeout for LMS calls
func (c *Config) CanvasTimeout() time.Duration {
	return time.Duration(c.CanvasTimeoutSec) * time.Second
}

// ProgressTTL returns the retention window for terminal progress records
func (c *Config) ProgressTTL() time.Duration {
	return time.Duration(c.ProgressTTLMinutes) * time.Minute
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
