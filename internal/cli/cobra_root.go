package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"timesheet-report/internal/api"
	"timesheet-report/internal/config"
)

// Bootstrap builds the API once flags have been applied to cfg. The
// returned func releases what the API holds.
type Bootstrap func(cfg *config.Config) (api.ReportAPI, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	config    *config.Config
	bootstrap Bootstrap
	app       *App
	release   func() error
	out       io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, bootstrap Bootstrap) *RootCommand {
	root := &RootCommand{
		config:    cfg,
		bootstrap: bootstrap,
		out:       os.Stdout,
	}

	root.cmd = &cobra.Command{
		Use:   "tsr",
		Short: "Timesheet reports from recorded time lines",
		Long: `Timesheet Report (tsr) records time lines against projects and tasks and
renders per-user timesheet reports grouped by project and task.

EXAMPLES:
  tsr company set "Acme GmbH" --city Munich --state Bavaria
  tsr employee add "Jane Doe" --user 7 --job-title Engineer
  tsr log --user 7 --hours 1:30 --project Website --task Design "homepage mockups"
  tsr request create --user 7 --from 2024-01-01 --to 2024-01-31
  tsr report 1                                   # Render request 1 as text
  tsr report 1 --format csv > timesheet.csv      # Export request 1 as CSV

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TSR_ENV                                Environment: production, development, testing
    TSR_DB_DIR                             Database directory (default: ~/.tsr)
    TSR_DB_FILENAME                        Database filename (default: tsr.db)
    TSR_DB_QUERY_TIMEOUT                   Query timeout (default: 10s)
    TSR_COMPANY_ID                         Acting company (default: 1)
    TSR_REPORT_DATE_FORMAT                 Date layout in reports (default: 2006-01-02)
    TSR_LOG_FORMAT                         Log format: text or json (default: text)
    TSR_LOG_LEVEL                          Log level (default: info)
    TSR_APP_TIMEOUT                        Application timeout (default: 60s)
    TSR_DEBUG                              Force debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetOutput redirects command output.
func (r *RootCommand) SetOutput(w io.Writer) {
	r.out = w
	r.cmd.SetOut(w)
}

// SetArgs overrides the arguments cobra parses.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TSR_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TSR_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TSR_DB_QUERY_TIMEOUT)")
	flags.Int64("company-id", 0, "Acting company (overrides TSR_COMPANY_ID)")
	flags.String("date-format", "", "Date layout in reports (overrides TSR_REPORT_DATE_FORMAT)")
	flags.String("log-format", "", "Log format: text or json (overrides TSR_LOG_FORMAT)")
	flags.String("log-level", "", "Log level (overrides TSR_LOG_LEVEL)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides TSR_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var (
		report   = &ReportCommand{format: FormatText}
		logLine  = &LogCommand{}
		employee = &EmployeeAddCommand{}
		company  = &CompanySetCommand{}
		request  = &RequestCreateCommand{}
	)

	reportCmd := &cobra.Command{
		Use:   "report <request-id>",
		Short: "Render a timesheet report",
		Long: `Render the timesheet report of a stored request.

Entries are grouped by project and task with HH:MM subtotals. Lines
without a project or task are grouped under "No Project" / "No Task".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(app *App) command {
				report.app = app
				return report
			})
		},
	}
	reportCmd.Flags().StringVarP(&report.format, "format", "f", FormatText, "Output format: text, csv or json")

	logCmd := &cobra.Command{
		Use:   "log [description]",
		Short: "Record a time line",
		Long: `Record worked time for a user. Projects and tasks are created on first use.

Examples:
  tsr log --user 7 --hours 2 --project Website --task Design "homepage"
  tsr log --user 7 --hours 0:45 --date 2024-01-05 "support call"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(app *App) command {
				logLine.app = app
				return logLine
			})
		},
	}
	logCmd.Flags().Int64Var(&logLine.userID, "user", 0, "User the time belongs to")
	logCmd.Flags().StringVar(&logLine.date, "date", "", "Date worked, "+InputDateLayout+" (default: today)")
	logCmd.Flags().StringVar(&logLine.hours, "hours", "", "Hours worked, 1.5 or 1:30")
	logCmd.Flags().StringVar(&logLine.project, "project", "", "Project name")
	logCmd.Flags().StringVar(&logLine.task, "task", "", "Task name")

	employeeCmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
	}
	employeeAddCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an employee",
		Long:  "Add an employee. The first employee linked to a user is named on that user's reports.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(app *App) command {
				employee.app = app
				return employee
			})
		},
	}
	employeeAddCmd.Flags().Int64Var(&employee.userID, "user", 0, "Linked user")
	employeeAddCmd.Flags().StringVar(&employee.jobTitle, "job-title", "", "Job title")
	employeeCmd.AddCommand(employeeAddCmd)

	companyCmd := &cobra.Command{
		Use:   "company",
		Short: "Manage the acting company",
	}
	companySetCmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or update the acting company profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(app *App) command {
				company.app = app
				return company
			})
		},
	}
	companyFlags := companySetCmd.Flags()
	companyFlags.StringVar(&company.email, "email", "", "Contact email")
	companyFlags.StringVar(&company.street, "street", "", "Street address")
	companyFlags.StringVar(&company.city, "city", "", "City")
	companyFlags.StringVar(&company.zip, "zip", "", "Postal code")
	companyFlags.StringVar(&company.state, "state", "", "State or province")
	companyFlags.StringVar(&company.phone, "phone", "", "Phone number")
	companyFlags.StringVar(&company.website, "website", "", "Website")
	companyFlags.StringVar(&company.logoPath, "logo", "", "Logo image file")
	companyCmd.AddCommand(companySetCmd)

	requestCmd := &cobra.Command{
		Use:   "request",
		Short: "Manage report requests",
	}
	requestCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a report request",
		Long: `Create a report request for one user over an optional, inclusive date range.

Examples:
  tsr request create --user 7
  tsr request create --user 7 --from 2024-01-01 --to 2024-01-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, args, func(app *App) command {
				request.app = app
				return request
			})
		},
	}
	requestCreateCmd.Flags().Int64Var(&request.userID, "user", 0, "User to report on")
	requestCreateCmd.Flags().StringVar(&request.from, "from", "", "First day, "+InputDateLayout)
	requestCreateCmd.Flags().StringVar(&request.to, "to", "", "Last day, "+InputDateLayout)
	requestCmd.AddCommand(requestCreateCmd)

	r.cmd.AddCommand(
		reportCmd,
		logCmd,
		employeeCmd,
		companyCmd,
		requestCmd,
	)
}

// command is implemented by every handler.
type command interface {
	Execute(ctx context.Context, args []string) error
}

// run builds the API, binds it to a handler and executes the handler
// bounded by the application timeout.
func (r *RootCommand) run(cmd *cobra.Command, args []string, bind func(*App) command) (err error) {
	if err := r.setup(cmd); err != nil {
		return err
	}
	defer func() {
		if releaseErr := r.teardown(); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, r.getAppTimeout())
	defer cancel()

	return bind(r.app).Execute(ctx, args)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// setup applies flag overrides and builds the API the handlers share.
func (r *RootCommand) setup(cmd *cobra.Command) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	overrides, err := r.overridesFromFlags(cmd)
	if err != nil {
		return err
	}
	overrides.Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return err
	}

	reportAPI, release, err := r.bootstrap(r.config)
	if err != nil {
		return err
	}
	r.release = release
	r.app = NewApp(reportAPI, r.config, r.out)
	return nil
}

func (r *RootCommand) teardown() error {
	if r.release == nil {
		return nil
	}
	release := r.release
	r.release = nil
	return release()
}

// overridesFromFlags collects the global flags the user actually set.
func (r *RootCommand) overridesFromFlags(cmd *cobra.Command) (*config.Overrides, error) {
	flags := cmd.Flags()
	overrides := &config.Overrides{}

	stringFlag := func(name string) (*string, error) {
		if !flags.Changed(name) {
			return nil, nil
		}
		v, err := flags.GetString(name)
		return &v, err
	}
	durationFlag := func(name string) (*time.Duration, error) {
		if !flags.Changed(name) {
			return nil, nil
		}
		v, err := flags.GetDuration(name)
		return &v, err
	}

	var err error
	if overrides.DBDir, err = stringFlag("db-dir"); err != nil {
		return nil, err
	}
	if overrides.DBFilename, err = stringFlag("db-filename"); err != nil {
		return nil, err
	}
	if overrides.DBQueryTimeout, err = durationFlag("db-query-timeout"); err != nil {
		return nil, err
	}
	if overrides.DateFormat, err = stringFlag("date-format"); err != nil {
		return nil, err
	}
	if overrides.LogFormat, err = stringFlag("log-format"); err != nil {
		return nil, err
	}
	if overrides.LogLevel, err = stringFlag("log-level"); err != nil {
		return nil, err
	}
	if overrides.Timeout, err = durationFlag("app-timeout"); err != nil {
		return nil, err
	}
	if flags.Changed("company-id") {
		id, err := flags.GetInt64("company-id")
		if err != nil {
			return nil, err
		}
		overrides.CompanyID = &id
	}

	return overrides, nil
}
