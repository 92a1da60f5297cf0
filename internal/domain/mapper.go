package domain

import (
	"timesheet-report/internal/repository/sqlite"
)

// Mapper converts store rows into domain records.
type Mapper struct{}

// NewMapper creates a new Mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// TimeEntryFromLine converts a searched analytic line.
func (m *Mapper) TimeEntryFromLine(line sqlite.AnalyticLine) TimeEntry {
	return NewTimeEntry(line.ID, line.Date, line.Name, line.UnitAmount, line.ProjectName, line.TaskName)
}

// TimeEntriesFromLines converts lines preserving their order.
func (m *Mapper) TimeEntriesFromLines(lines []*sqlite.AnalyticLine) []TimeEntry {
	entries := make([]TimeEntry, len(lines))
	for i, line := range lines {
		entries[i] = m.TimeEntryFromLine(*line)
	}
	return entries
}

// CompanyFromDatabase converts a database Company to a domain Company.
func (m *Mapper) CompanyFromDatabase(c sqlite.Company) Company {
	return Company{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Street:    c.Street,
		City:      c.City,
		Zip:       c.Zip,
		StateName: c.StateName,
		Phone:     c.Phone,
		Website:   c.Website,
		Logo:      c.Logo,
	}
}

// EmployeeFromDatabase converts a database Employee to a domain Employee.
func (m *Mapper) EmployeeFromDatabase(e sqlite.Employee) Employee {
	return Employee{
		ID:       e.ID,
		Name:     e.Name,
		UserID:   e.UserID,
		JobTitle: e.JobTitle,
	}
}

// ReportRequestFromDatabase converts a database ReportRequest to a domain ReportRequest.
func (m *Mapper) ReportRequestFromDatabase(r sqlite.ReportRequest) ReportRequest {
	return ReportRequest{
		ID:        r.ID,
		Reference: r.Reference,
		UserID:    r.UserID,
		FromDate:  r.FromDate,
		ToDate:    r.ToDate,
		CreatedAt: r.CreatedAt,
	}
}

// ReportRequestToDatabase converts a domain ReportRequest to a database ReportRequest.
func (m *Mapper) ReportRequestToDatabase(r ReportRequest) sqlite.ReportRequest {
	return sqlite.ReportRequest{
		ID:        r.ID,
		Reference: r.Reference,
		UserID:    r.UserID,
		FromDate:  r.FromDate,
		ToDate:    r.ToDate,
		CreatedAt: r.CreatedAt,
	}
}
