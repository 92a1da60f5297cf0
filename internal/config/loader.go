package config

import "time"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load applies defaults, then environment variables, then validates.
// Flag overrides are applied separately by LoadWithOverrides.
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *Overrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Overrides holds command line flag overrides. Nil fields are left alone.
type Overrides struct {
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	CompanyID      *int64
	DateFormat     *string
	LogFormat      *string
	LogLevel       *string
	Timeout        *time.Duration
}

// Apply sets every non-nil override on config.
func (o *Overrides) Apply(config *Config) {
	if o.DBDir != nil {
		config.Database.Dir = *o.DBDir
	}
	if o.DBFilename != nil {
		config.Database.Filename = *o.DBFilename
	}
	if o.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *o.DBQueryTimeout
	}
	if o.CompanyID != nil {
		config.Company.ID = *o.CompanyID
	}
	if o.DateFormat != nil {
		config.Report.DateFormat = *o.DateFormat
	}
	if o.LogFormat != nil {
		config.Log.Format = *o.LogFormat
	}
	if o.LogLevel != nil {
		config.Log.Level = *o.LogLevel
	}
	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
}
