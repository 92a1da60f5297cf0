package sqlite

import "time"

// State is a state/province referenced by a company address.
type State struct {
	ID   int64
	Name string
}

// Company holds the profile printed in report headers.
// StateName is filled on reads from the joined states row.
type Company struct {
	ID        int64
	Name      string
	Email     string
	Street    string
	City      string
	Zip       string
	StateID   *int64
	StateName *string
	Phone     string
	Website   string
	Logo      []byte // nil when the company has no logo
}

// Employee links an HR record to a user identity.
type Employee struct {
	ID       int64
	Name     string
	UserID   *int64
	JobTitle string
}

// Project groups tasks.
type Project struct {
	ID   int64
	Name string
}

// Task belongs to at most one project.
type Task struct {
	ID        int64
	Name      string
	ProjectID *int64
}

// AnalyticLine is one recorded unit of worked time.
// ProjectName and TaskName are only populated by SearchAnalyticLines.
type AnalyticLine struct {
	ID          int64
	UserID      int64
	Date        time.Time
	Name        string
	UnitAmount  float64 // hours
	ProjectID   *int64
	TaskID      *int64
	ProjectName *string
	TaskName    *string
}

// ReportRequest is the stored record a timesheet report is generated from.
type ReportRequest struct {
	ID        int64
	Reference string
	UserID    int64
	FromDate  *time.Time
	ToDate    *time.Time
	CreatedAt time.Time
}

// AnalyticLineFilter is the conjunctive filter accepted by SearchAnalyticLines.
// Nil bounds are not applied; both bounds are inclusive.
type AnalyticLineFilter struct {
	UserID   int64
	FromDate *time.Time
	ToDate   *time.Time
}
