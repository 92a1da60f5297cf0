package config

import (
	"fmt"
	"os"

	"timesheet-report/internal/repository/sqlite"
)

// CreateRepository opens the record store selected by config.Env:
// an in-memory database for testing, tsr.db in the working directory for
// development and the configured database path otherwise.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	opts := []sqlite.Option{sqlite.WithQueryTimeout(config.Database.QueryTimeout)}

	switch config.Env {
	case "testing":
		return newRepository(":memory:", opts)
	case "development":
		return newRepository(config.Database.Filename, opts)
	default:
		if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		return newRepository(config.GetDatabasePath(), opts)
	}
}

func newRepository(dbPath string, opts []sqlite.Option) (sqlite.Repository, error) {
	repo, err := sqlite.New(dbPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}
