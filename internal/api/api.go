package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"timesheet-report/internal/domain"
	apperrors "timesheet-report/internal/errors"
	"timesheet-report/internal/logging"
	"timesheet-report/internal/repository/sqlite"
	"timesheet-report/internal/services"
	"timesheet-report/internal/validation"
)

// ReportAPI is the application facade the CLI talks to.
type ReportAPI interface {
	// ========== Reports ==========

	// GetReportValues assembles the rendering payload for a stored request
	GetReportValues(ctx context.Context, requestID int64) (*services.ReportPayload, error)

	// CreateReportRequest stores a request under a fresh reference
	CreateReportRequest(ctx context.Context, input validation.ReportRequestInput) (*domain.ReportRequest, error)

	// ========== Records ==========

	// LogTime records one time line, creating its project and task by name
	LogTime(ctx context.Context, input validation.TimeLineInput) (*domain.TimeEntry, error)

	// AddEmployee stores an employee, optionally linked to a user
	AddEmployee(ctx context.Context, input validation.EmployeeInput) (*domain.Employee, error)

	// SaveCompany creates or overwrites the acting company profile
	SaveCompany(ctx context.Context, input validation.CompanyInput) (*domain.Company, error)
}

// Options configures a ReportAPI.
type Options struct {
	CompanyID  int64
	DateLayout string
	Logger     *slog.Logger
}

// reportAPIImpl implements the ReportAPI interface
type reportAPIImpl struct {
	repo      sqlite.Repository
	reports   services.ReportService
	mapper    *domain.Mapper
	validator *validation.Validator
	companyID int64
	logger    *slog.Logger
	newRef    func() string
}

// New creates a new ReportAPI instance
func New(repo sqlite.Repository, opts Options) ReportAPI {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	timesheets := services.NewTimesheetService(repo)
	return &reportAPIImpl{
		repo: repo,
		reports: services.NewReportService(repo, timesheets, services.ReportOptions{
			CompanyID:  opts.CompanyID,
			DateLayout: opts.DateLayout,
			Logger:     opts.Logger,
		}),
		mapper:    domain.NewMapper(),
		validator: validation.NewValidator(),
		companyID: opts.CompanyID,
		logger:    opts.Logger,
		newRef:    newReference,
	}
}

func (a *reportAPIImpl) GetReportValues(ctx context.Context, requestID int64) (*services.ReportPayload, error) {
	if requestID <= 0 {
		return nil, apperrors.NewInvalidInputError("request ID", requestID, "must be a positive number")
	}
	return a.reports.GetReportValues(ctx, requestID)
}

// invalidInput wraps a validator failure so callers see one AppError type.
func invalidInput(subject string, err error) error {
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		return apperrors.NewValidationError(fmt.Sprintf("invalid %s: %s", subject, ve.GetUserFriendlyMessage()), err)
	}
	return apperrors.NewValidationError("invalid "+subject, err)
}

func isNotFound(err error) bool {
	return apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound)
}
