package main

import (
	"fmt"
	"log/slog"
	"os"

	"timesheet-report/internal/api"
	"timesheet-report/internal/cli"
	"timesheet-report/internal/config"
	"timesheet-report/internal/logging"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	var logger *slog.Logger
	root := cli.NewRootCommand(cfg, func(cfg *config.Config) (api.ReportAPI, func() error, error) {
		l, err := logging.New(os.Stderr, cfg.Log.Format, cfg.Log.Level)
		if err != nil {
			return nil, nil, err
		}
		logger = l

		repo, err := config.CreateRepository(cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("database opened",
			slog.String("env", cfg.Env),
			slog.String("path", cfg.GetDatabasePath()),
		)

		reportAPI := api.New(repo, api.Options{
			CompanyID:  cfg.Company.ID,
			DateLayout: cfg.Report.DateFormat,
			Logger:     logger,
		})
		return reportAPI, repo.Close, nil
	})

	if err := root.Execute(); err != nil {
		handler := cli.NewErrorHandler()
		if logger != nil && handler.ShouldLog(err) {
			logger.Error("command failed", slog.String("code", handler.GetErrorCode(err)), slog.Any("error", err))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", handler.HandleSimple(err))
		os.Exit(1)
	}
}
