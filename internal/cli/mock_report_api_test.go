package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timesheet-report/internal/api"
	"timesheet-report/internal/config"
	"timesheet-report/internal/domain"
	"timesheet-report/internal/errors"
	"timesheet-report/internal/services"
	"timesheet-report/internal/validation"
)

// mockReportAPI implements the ReportAPI interface for testing
type mockReportAPI struct {
	payloads  map[int64]*services.ReportPayload
	lines     []validation.TimeLineInput
	employees []validation.EmployeeInput
	companies []validation.CompanyInput
	requests  []validation.ReportRequestInput
	err       error
}

func newMockReportAPI() *mockReportAPI {
	return &mockReportAPI{payloads: make(map[int64]*services.ReportPayload)}
}

func (m *mockReportAPI) GetReportValues(ctx context.Context, requestID int64) (*services.ReportPayload, error) {
	if m.err != nil {
		return nil, m.err
	}
	payload, ok := m.payloads[requestID]
	if !ok {
		return nil, errors.NewNotFoundError("report request", fmt.Sprintf("%d", requestID))
	}
	return payload, nil
}

func (m *mockReportAPI) CreateReportRequest(ctx context.Context, input validation.ReportRequestInput) (*domain.ReportRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.requests = append(m.requests, input)
	return &domain.ReportRequest{
		ID:        int64(len(m.requests)),
		Reference: fmt.Sprintf("TSR-MOCK-%d", len(m.requests)),
		UserID:    input.UserID,
		FromDate:  input.FromDate,
		ToDate:    input.ToDate,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (m *mockReportAPI) LogTime(ctx context.Context, input validation.TimeLineInput) (*domain.TimeEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lines = append(m.lines, input)
	project, task := input.ProjectName, input.TaskName
	entry := domain.NewTimeEntry(int64(len(m.lines)), input.Date, input.Description, input.Hours, &project, &task)
	return &entry, nil
}

func (m *mockReportAPI) AddEmployee(ctx context.Context, input validation.EmployeeInput) (*domain.Employee, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.employees = append(m.employees, input)
	return &domain.Employee{ID: int64(len(m.employees)), Name: input.Name, UserID: input.UserID, JobTitle: input.JobTitle}, nil
}

func (m *mockReportAPI) SaveCompany(ctx context.Context, input validation.CompanyInput) (*domain.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.companies = append(m.companies, input)
	return &domain.Company{ID: 1, Name: input.Name, City: input.City, Logo: input.Logo}, nil
}

// samplePayload is the report of user 7 for January 2024.
func samplePayload() *services.ReportPayload {
	date := func(s string) time.Time {
		d, _ := time.Parse(domain.DefaultDateLayout, s)
		return d
	}
	from, to := date("2024-01-01"), date("2024-01-31")
	request := &domain.ReportRequest{ID: 1, Reference: "TSR-REF-1", UserID: 7, FromDate: &from, ToDate: &to}
	state := "Bavaria"
	company := &domain.Company{ID: 1, Name: "Acme GmbH", Street: "Hauptstr. 1", City: "Munich", Zip: "80331", StateName: &state}
	period := "From 2024-01-01 To 2024-01-31"

	totals := services.Aggregate([]domain.TimeEntry{
		{ID: 1, Date: date("2024-01-01"), Description: "kickoff", Hours: 2, ProjectName: "ProjectA", TaskName: "Task1"},
		{ID: 2, Date: date("2024-01-02"), Description: "wrote, report", Hours: 1.5, ProjectName: "ProjectA", TaskName: "Task1"},
		{ID: 3, Date: date("2024-01-03"), Description: "review", Hours: 1, ProjectName: "ProjectA", TaskName: "Task2"},
		{ID: 4, Date: date("2024-01-04"), Description: "support call", Hours: 0.5, ProjectName: "ProjectB", TaskName: domain.NoTask},
	})

	return &services.ReportPayload{
		DocIDs:        []int64{1},
		DocModel:      services.DocModel,
		Docs:          request,
		Employee:      &domain.Employee{ID: 3, Name: "Jane Doe", JobTitle: "Engineer"},
		Period:        &period,
		TimesheetData: &totals,
		Company:       company,
		CompanyData:   company.Profile(),
	}
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Env = "testing"
	return cfg
}

// setupTestApp returns an App writing to a buffer and backed by a mock API.
func setupTestApp(t *testing.T) (*App, *mockReportAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockReportAPI()
	var out bytes.Buffer
	return NewApp(mock, testConfig(), &out), mock, &out
}

// runRoot executes the root command with args against mock.
func runRoot(t *testing.T, mock *mockReportAPI, args ...string) (string, error) {
	t.Helper()
	released := false
	root := NewRootCommand(testConfig(), func(cfg *config.Config) (api.ReportAPI, func() error, error) {
		return mock, func() error { released = true; return nil }, nil
	})

	var out bytes.Buffer
	root.SetOutput(&out)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		require.True(t, released, "bootstrap resources were not released")
	}
	return out.String(), err
}
