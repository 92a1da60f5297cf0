package sqlite

import (
	"database/sql"
	"time"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func parseNullDate(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := ParseDateFromDB(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ScanAnalyticLine scans a line joined with its project and task names.
func ScanAnalyticLine(scanner Scanner) (*AnalyticLine, error) {
	line := &AnalyticLine{}
	var (
		date        string
		name        sql.NullString
		projectID   sql.NullInt64
		taskID      sql.NullInt64
		projectName sql.NullString
		taskName    sql.NullString
	)

	err := scanner.Scan(
		&line.ID,
		&line.UserID,
		&date,
		&name,
		&line.UnitAmount,
		&projectID,
		&taskID,
		&projectName,
		&taskName,
	)
	if err != nil {
		return nil, err
	}

	if line.Date, err = ParseDateFromDB(date); err != nil {
		return nil, err
	}
	line.Name = name.String
	line.ProjectID = nullInt64Ptr(projectID)
	line.TaskID = nullInt64Ptr(taskID)
	line.ProjectName = nullStringPtr(projectName)
	line.TaskName = nullStringPtr(taskName)

	return line, nil
}

// ScanAnalyticLines scans multiple lines from database rows
func ScanAnalyticLines(rows Rows) ([]*AnalyticLine, error) {
	return scanAll(rows, ScanAnalyticLine)
}

// ScanState scans a single state row
func ScanState(scanner Scanner) (*State, error) {
	var state State
	if err := scanner.Scan(&state.ID, &state.Name); err != nil {
		return nil, err
	}
	return &state, nil
}

// ScanCompany scans a company joined with its state name.
func ScanCompany(scanner Scanner) (*Company, error) {
	company := &Company{}
	var (
		stateID   sql.NullInt64
		stateName sql.NullString
	)

	err := scanner.Scan(
		&company.ID,
		&company.Name,
		&company.Email,
		&company.Street,
		&company.City,
		&company.Zip,
		&stateID,
		&stateName,
		&company.Phone,
		&company.Website,
		&company.Logo,
	)
	if err != nil {
		return nil, err
	}

	company.StateID = nullInt64Ptr(stateID)
	company.StateName = nullStringPtr(stateName)
	if len(company.Logo) == 0 {
		company.Logo = nil
	}

	return company, nil
}

// ScanEmployee scans a single employee row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	employee := &Employee{}
	var userID sql.NullInt64

	if err := scanner.Scan(&employee.ID, &employee.Name, &userID, &employee.JobTitle); err != nil {
		return nil, err
	}
	employee.UserID = nullInt64Ptr(userID)

	return employee, nil
}

// ScanProject scans a single project row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	if err := scanner.Scan(&project.ID, &project.Name); err != nil {
		return nil, err
	}
	return project, nil
}

// ScanTask scans a single task row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var projectID sql.NullInt64

	if err := scanner.Scan(&task.ID, &task.Name, &projectID); err != nil {
		return nil, err
	}
	task.ProjectID = nullInt64Ptr(projectID)

	return task, nil
}

// ScanReportRequest scans a single report request row
func ScanReportRequest(scanner Scanner) (*ReportRequest, error) {
	request := &ReportRequest{}
	var (
		fromDate  sql.NullString
		toDate    sql.NullString
		createdAt string
	)

	err := scanner.Scan(&request.ID, &request.Reference, &request.UserID, &fromDate, &toDate, &createdAt)
	if err != nil {
		return nil, err
	}

	if request.FromDate, err = parseNullDate(fromDate); err != nil {
		return nil, err
	}
	if request.ToDate, err = parseNullDate(toDate); err != nil {
		return nil, err
	}
	if request.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return request, nil
}

func scanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
