package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"

	"timesheet-report/internal/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TSR"

// Config holds all configuration options for the timesheet reporter.
// Nested structs contribute their tag to the variable name, so
// Database.QueryTimeout is read from TSR_DB_QUERY_TIMEOUT.
type Config struct {
	Env         string            `split_words:"true"`
	Database    DatabaseConfig    `envconfig:"DB"`
	Company     CompanyConfig     `envconfig:"COMPANY"`
	Report      ReportConfig      `envconfig:"REPORT"`
	Log         LogConfig         `envconfig:"LOG"`
	Application ApplicationConfig `envconfig:"APP"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `split_words:"true"`
	Filename       string        `split_words:"true"`
	QueryTimeout   time.Duration `split_words:"true"`
	DirPermissions uint32        `split_words:"true"`
}

// CompanyConfig selects the acting company whose profile heads every report.
type CompanyConfig struct {
	ID int64 `split_words:"true"`
}

// ReportConfig holds report formatting configuration
type ReportConfig struct {
	DateFormat string `split_words:"true"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Format string `split_words:"true"`
	Level  string `split_words:"true"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `split_words:"true"`
}

// NewConfig creates a new configuration with defaults. Environment
// variables without a value leave these untouched.
func NewConfig() *Config {
	return &Config{
		Env: "production",
		Database: DatabaseConfig{
			Dir:            defaultDatabaseDir(),
			Filename:       "tsr.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Company: CompanyConfig{
			ID: 1,
		},
		Report: ReportConfig{
			DateFormat: "2006-01-02",
		},
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
	}
}

func defaultDatabaseDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tsr")
}

// LoadFromEnvironment overlays TSR_* environment variables onto c.
func (c *Config) LoadFromEnvironment() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return &ConfigError{Field: "environment", Message: err.Error()}
	}
	if c.Database.Dir == "" {
		c.Database.Dir = defaultDatabaseDir()
	}
	return nil
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Env {
	case "production", "development", "testing":
	default:
		return &ConfigError{Field: "env", Message: "must be one of production, development, testing"}
	}

	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Company.ID <= 0 {
		return &ConfigError{Field: "company.id", Message: "company id must be positive"}
	}

	if c.Report.DateFormat == "" {
		return &ConfigError{Field: "report.date_format", Message: "date format cannot be empty"}
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return &ConfigError{Field: "log.format", Message: "log format must be text or json"}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &ConfigError{Field: "log.level", Message: err.Error()}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
