package services

import (
	"context"
	"log/slog"

	"timesheet-report/internal/domain"
	"timesheet-report/internal/logging"
	"timesheet-report/internal/repository/sqlite"
)

// DocModel names the record type report payloads are built from.
const DocModel = "timesheet_report"

// ReportOptions configures a ReportService.
type ReportOptions struct {
	CompanyID  int64
	DateLayout string
	Logger     *slog.Logger
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	repo       sqlite.Repository
	timesheets TimesheetService
	mapper     *domain.Mapper
	companyID  int64
	dateLayout string
	logger     *slog.Logger
}

// NewReportService creates a new ReportService instance
func NewReportService(repo sqlite.Repository, timesheets TimesheetService, opts ReportOptions) ReportService {
	if opts.DateLayout == "" {
		opts.DateLayout = domain.DefaultDateLayout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &reportServiceImpl{
		repo:       repo,
		timesheets: timesheets,
		mapper:     domain.NewMapper(),
		companyID:  opts.CompanyID,
		dateLayout: opts.DateLayout,
		logger:     opts.Logger,
	}
}

// GetReportValues resolves the request, the acting company, the linked
// employee and the period, aggregates the timesheets and merges it all into
// one payload. Lookups run one after another in a single pass. A missing
// employee, logo or date range is left absent; store failures are returned
// unchanged.
func (r *reportServiceImpl) GetReportValues(ctx context.Context, requestID int64) (*ReportPayload, error) {
	dbRequest, err := r.repo.GetReportRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	request := r.mapper.ReportRequestFromDatabase(*dbRequest)

	dbCompany, err := r.repo.GetCompany(ctx, r.companyID)
	if err != nil {
		return nil, err
	}
	company := r.mapper.CompanyFromDatabase(*dbCompany)

	var employee *domain.Employee
	dbEmployee, err := r.repo.FindFirstEmployeeByUser(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if dbEmployee != nil {
		e := r.mapper.EmployeeFromDatabase(*dbEmployee)
		employee = &e
	}

	totals, err := r.timesheets.GetTimesheets(ctx, request.UserID, request.FromDate, request.ToDate)
	if err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "timesheet report assembled",
		slog.Int64("request_id", request.ID),
		slog.Int64("user_id", request.UserID),
		slog.Int("entries", totals.EntryCount()),
		slog.String("total", totals.TotalDisplay),
		slog.Bool("employee_found", employee != nil),
	)

	return &ReportPayload{
		DocIDs:        []int64{request.ID},
		DocModel:      DocModel,
		Docs:          &request,
		Employee:      employee,
		Period:        request.Period(r.dateLayout),
		TimesheetData: totals,
		Company:       &company,
		CompanyData:   company.Profile(),
	}, nil
}
