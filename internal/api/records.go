package api

import (
	"context"
	"log/slog"
	"strings"

	"timesheet-report/internal/domain"
	"timesheet-report/internal/repository/sqlite"
	"timesheet-report/internal/validation"
)

func (a *reportAPIImpl) LogTime(ctx context.Context, input validation.TimeLineInput) (*domain.TimeEntry, error) {
	input.Description = strings.TrimSpace(input.Description)
	input.ProjectName = strings.TrimSpace(input.ProjectName)
	input.TaskName = strings.TrimSpace(input.TaskName)

	if err := a.validator.ValidateTimeLine(input); err != nil {
		return nil, invalidInput("time line", err)
	}

	line := &sqlite.AnalyticLine{
		UserID:     input.UserID,
		Date:       input.Date,
		Name:       input.Description,
		UnitAmount: input.Hours,
	}

	// Project, task and line commit or roll back together.
	err := a.repo.WithTx(ctx, func(repo sqlite.Repository) error {
		project, err := projectByName(ctx, repo, input.ProjectName)
		if err != nil {
			return err
		}
		if project != nil {
			line.ProjectID = &project.ID
			line.ProjectName = &project.Name
		}

		task, err := taskByName(ctx, repo, line.ProjectID, input.TaskName)
		if err != nil {
			return err
		}
		if task != nil {
			line.TaskID = &task.ID
			line.TaskName = &task.Name
		}

		return repo.CreateAnalyticLine(ctx, line)
	})
	if err != nil {
		return nil, err
	}

	a.logger.DebugContext(ctx, "time line recorded",
		slog.Int64("line_id", line.ID),
		slog.Int64("user_id", line.UserID),
		slog.Float64("hours", line.UnitAmount),
	)

	entry := a.mapper.TimeEntryFromLine(*line)
	return &entry, nil
}

// projectByName returns the first project called name, creating it when
// missing. An empty name means no project.
func projectByName(ctx context.Context, repo sqlite.Repository, name string) (*sqlite.Project, error) {
	if name == "" {
		return nil, nil
	}
	project, err := repo.FindProjectByName(ctx, name)
	if err != nil || project != nil {
		return project, err
	}
	project = &sqlite.Project{Name: name}
	if err := repo.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// taskByName returns the first task called name inside projectID, creating
// it when missing. An empty name means no task.
func taskByName(ctx context.Context, repo sqlite.Repository, projectID *int64, name string) (*sqlite.Task, error) {
	if name == "" {
		return nil, nil
	}
	task, err := repo.FindTaskByName(ctx, projectID, name)
	if err != nil || task != nil {
		return task, err
	}
	task = &sqlite.Task{Name: name, ProjectID: projectID}
	if err := repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (a *reportAPIImpl) AddEmployee(ctx context.Context, input validation.EmployeeInput) (*domain.Employee, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.JobTitle = strings.TrimSpace(input.JobTitle)

	if err := a.validator.ValidateEmployee(input); err != nil {
		return nil, invalidInput("employee", err)
	}

	dbEmployee := &sqlite.Employee{
		Name:     input.Name,
		UserID:   input.UserID,
		JobTitle: input.JobTitle,
	}
	if err := a.repo.CreateEmployee(ctx, dbEmployee); err != nil {
		return nil, err
	}

	employee := a.mapper.EmployeeFromDatabase(*dbEmployee)
	return &employee, nil
}

func (a *reportAPIImpl) SaveCompany(ctx context.Context, input validation.CompanyInput) (*domain.Company, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.State = strings.TrimSpace(input.State)

	if err := a.validator.ValidateCompany(input); err != nil {
		return nil, invalidInput("company", err)
	}

	state, err := a.stateByName(ctx, input.State)
	if err != nil {
		return nil, err
	}

	existing, err := a.repo.GetCompany(ctx, a.companyID)
	if err != nil && !isNotFound(err) {
		return nil, err
	}

	dbCompany := &sqlite.Company{
		Name:    input.Name,
		Email:   input.Email,
		Street:  input.Street,
		City:    input.City,
		Zip:     input.Zip,
		Phone:   input.Phone,
		Website: input.Website,
		Logo:    input.Logo,
	}
	if state != nil {
		dbCompany.StateID = &state.ID
		dbCompany.StateName = &state.Name
	}

	if existing != nil {
		dbCompany.ID = existing.ID
		if dbCompany.Logo == nil {
			dbCompany.Logo = existing.Logo
		}
		err = a.repo.UpdateCompany(ctx, dbCompany)
	} else {
		err = a.repo.CreateCompany(ctx, dbCompany)
		if err == nil && dbCompany.ID != a.companyID {
			a.logger.WarnContext(ctx, "company created under a different id than configured",
				slog.Int64("configured_id", a.companyID),
				slog.Int64("company_id", dbCompany.ID),
			)
		}
	}
	if err != nil {
		return nil, err
	}

	company := a.mapper.CompanyFromDatabase(*dbCompany)
	return &company, nil
}

// stateByName returns the first state called name, creating it when
// missing. An empty name means no state.
func (a *reportAPIImpl) stateByName(ctx context.Context, name string) (*sqlite.State, error) {
	if name == "" {
		return nil, nil
	}
	state, err := a.repo.FindStateByName(ctx, name)
	if err != nil || state != nil {
		return state, err
	}
	state = &sqlite.State{Name: name}
	if err := a.repo.CreateState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}
