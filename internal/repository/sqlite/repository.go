package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	apperrors "timesheet-report/internal/errors"
	"timesheet-report/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository is the record store the report layer reads from.
type Repository interface {
	// Create operations
	CreateState(ctx context.Context, state *State) error
	CreateCompany(ctx context.Context, company *Company) error
	CreateEmployee(ctx context.Context, employee *Employee) error
	CreateProject(ctx context.Context, project *Project) error
	CreateTask(ctx context.Context, task *Task) error
	CreateAnalyticLine(ctx context.Context, line *AnalyticLine) error
	CreateReportRequest(ctx context.Context, request *ReportRequest) error

	// Read operations
	GetCompany(ctx context.Context, id int64) (*Company, error)
	FindStateByName(ctx context.Context, name string) (*State, error)
	FindFirstEmployeeByUser(ctx context.Context, userID int64) (*Employee, error)
	FindProjectByName(ctx context.Context, name string) (*Project, error)
	FindTaskByName(ctx context.Context, projectID *int64, name string) (*Task, error)
	SearchAnalyticLines(ctx context.Context, filter AnalyticLineFilter) ([]*AnalyticLine, error)
	GetReportRequest(ctx context.Context, id int64) (*ReportRequest, error)

	// Update operations
	UpdateCompany(ctx context.Context, company *Company) error

	// Utility
	WithTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}

// Option configures an SQLiteRepository.
type Option func(*SQLiteRepository)

// WithQueryTimeout bounds every statement issued by the repository.
// Zero disables the bound.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *SQLiteRepository) {
		r.queryTimeout = d
	}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	conn         *sql.DB
	db           Querier
	queryTimeout time.Duration
	now          func() time.Time
}

// New opens the database at dbPath and runs pending migrations.
func New(dbPath string, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewDatabaseError("open database", err)
	}

	// Every connection to :memory: is a separate database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, apperrors.NewDatabaseError("run migrations", err)
	}

	repo := &SQLiteRepository{conn: db, db: db, now: time.Now}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// Close closes the database connection. It is a no-op on the repository
// handed to a WithTx callback.
func (r *SQLiteRepository) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

// WithTx runs fn against a repository bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (r *SQLiteRepository) WithTx(ctx context.Context, fn func(Repository) error) error {
	if r.conn == nil {
		return fn(r)
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}

	scoped := &SQLiteRepository{db: tx, queryTimeout: r.queryTimeout, now: r.now}
	if err := fn(scoped); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit transaction", err)
	}
	return nil
}

func (r *SQLiteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

func nullableInt64(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// CreateState creates a new state
func (r *SQLiteRepository) CreateState(ctx context.Context, state *State) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	id, err := ExecuteWithLastInsertID(ctx, r.db, `INSERT INTO states (name) VALUES (?)`, state.Name)
	if err != nil {
		return err
	}
	state.ID = id
	return nil
}

// FindStateByName returns the lowest-id state with the given name, or nil.
func (r *SQLiteRepository) FindStateByName(ctx context.Context, name string) (*State, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name FROM states WHERE name = ? ORDER BY id ASC LIMIT 1`
	return QueryOptional(ctx, r.db, query, ScanState, "state", name)
}

// CreateCompany creates a new company
func (r *SQLiteRepository) CreateCompany(ctx context.Context, company *Company) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	INSERT INTO companies (name, email, street, city, zip, state_id, phone, website, logo)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		company.Name, company.Email, company.Street, company.City, company.Zip,
		nullableInt64(company.StateID), company.Phone, company.Website, company.Logo)
	if err != nil {
		return err
	}
	company.ID = id
	return nil
}

// UpdateCompany overwrites every profile field of an existing company
func (r *SQLiteRepository) UpdateCompany(ctx context.Context, company *Company) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	UPDATE companies
	SET name = ?, email = ?, street = ?, city = ?, zip = ?, state_id = ?, phone = ?, website = ?, logo = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "company", fmt.Sprintf("%d", company.ID),
		company.Name, company.Email, company.Street, company.City, company.Zip,
		nullableInt64(company.StateID), company.Phone, company.Website, company.Logo, company.ID)
}

// GetCompany retrieves a company with its state name
func (r *SQLiteRepository) GetCompany(ctx context.Context, id int64) (*Company, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	SELECT c.id, c.name, c.email, c.street, c.city, c.zip, c.state_id, s.name, c.phone, c.website, c.logo
	FROM companies c
	LEFT JOIN states s ON s.id = c.state_id
	WHERE c.id = ?`

	return QuerySingle(ctx, r.db, query, ScanCompany, "company", fmt.Sprintf("%d", id), id)
}

// CreateEmployee creates a new employee
func (r *SQLiteRepository) CreateEmployee(ctx context.Context, employee *Employee) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO employees (name, user_id, job_title) VALUES (?, ?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, employee.Name, nullableInt64(employee.UserID), employee.JobTitle)
	if err != nil {
		return err
	}
	employee.ID = id
	return nil
}

// FindFirstEmployeeByUser returns the lowest-id employee linked to userID,
// or nil when no employee is linked.
func (r *SQLiteRepository) FindFirstEmployeeByUser(ctx context.Context, userID int64) (*Employee, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	SELECT id, name, user_id, job_title
	FROM employees
	WHERE user_id = ?
	ORDER BY id ASC
	LIMIT 1`

	return QueryOptional(ctx, r.db, query, ScanEmployee, "employee", userID)
}

// CreateProject creates a new project
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	id, err := ExecuteWithLastInsertID(ctx, r.db, `INSERT INTO projects (name) VALUES (?)`, project.Name)
	if err != nil {
		return err
	}
	project.ID = id
	return nil
}

// FindProjectByName returns the lowest-id project with the given name, or nil.
func (r *SQLiteRepository) FindProjectByName(ctx context.Context, name string) (*Project, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, name FROM projects WHERE name = ? ORDER BY id ASC LIMIT 1`
	return QueryOptional(ctx, r.db, query, ScanProject, "project", name)
}

// CreateTask creates a new task
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO tasks (name, project_id) VALUES (?, ?)`
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Name, nullableInt64(task.ProjectID))
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// FindTaskByName returns the lowest-id task with the given name inside
// projectID (or outside any project when projectID is nil), or nil.
func (r *SQLiteRepository) FindTaskByName(ctx context.Context, projectID *int64, name string) (*Task, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	SELECT id, name, project_id
	FROM tasks
	WHERE name = ? AND project_id IS ?
	ORDER BY id ASC
	LIMIT 1`

	return QueryOptional(ctx, r.db, query, ScanTask, "task", name, nullableInt64(projectID))
}

// CreateAnalyticLine creates a new time line
func (r *SQLiteRepository) CreateAnalyticLine(ctx context.Context, line *AnalyticLine) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	INSERT INTO analytic_lines (user_id, date, name, unit_amount, project_id, task_id)
	VALUES (?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		line.UserID, FormatDateForDB(line.Date), line.Name, line.UnitAmount,
		nullableInt64(line.ProjectID), nullableInt64(line.TaskID))
	if err != nil {
		return err
	}
	line.ID = id
	return nil
}

// SearchAnalyticLines returns the lines matching filter ordered by project,
// task and date ascending. Lines without a project or task sort after those
// with one, and id breaks the remaining ties.
func (r *SQLiteRepository) SearchAnalyticLines(ctx context.Context, filter AnalyticLineFilter) ([]*AnalyticLine, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	conditions := []string{"l.user_id = ?"}
	args := []interface{}{filter.UserID}

	if filter.FromDate != nil {
		conditions = append(conditions, "l.date >= ?")
		args = append(args, FormatDatePtrForDB(filter.FromDate))
	}
	if filter.ToDate != nil {
		conditions = append(conditions, "l.date <= ?")
		args = append(args, FormatDatePtrForDB(filter.ToDate))
	}

	query := `
	SELECT l.id, l.user_id, l.date, l.name, l.unit_amount, l.project_id, l.task_id, p.name, t.name
	FROM analytic_lines l
	LEFT JOIN projects p ON p.id = l.project_id
	LEFT JOIN tasks t ON t.id = l.task_id
	WHERE ` + strings.Join(conditions, " AND ") + `
	ORDER BY l.project_id IS NULL, l.project_id, l.task_id IS NULL, l.task_id, l.date, l.id`

	return QueryMultiple(ctx, r.db, query, ScanAnalyticLines, "analytic lines", args...)
}

// CreateReportRequest creates a new report request, stamping CreatedAt
func (r *SQLiteRepository) CreateReportRequest(ctx context.Context, request *ReportRequest) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if request.CreatedAt.IsZero() {
		request.CreatedAt = r.now().UTC().Truncate(time.Second)
	}

	query := `
	INSERT INTO report_requests (reference, user_id, from_date, to_date, created_at)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		request.Reference, request.UserID,
		FormatDatePtrForDB(request.FromDate), FormatDatePtrForDB(request.ToDate),
		FormatTimeForDB(request.CreatedAt))
	if err != nil {
		return err
	}
	request.ID = id
	return nil
}

// GetReportRequest retrieves a report request by ID
func (r *SQLiteRepository) GetReportRequest(ctx context.Context, id int64) (*ReportRequest, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `
	SELECT id, reference, user_id, from_date, to_date, created_at
	FROM report_requests
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanReportRequest, "report request", fmt.Sprintf("%d", id), id)
}
