package cli

import (
	"context"
	"fmt"
	"strings"

	"timesheet-report/internal/errors"
	"timesheet-report/internal/validation"
)

// EmployeeAddCommand handles the employee add command
type EmployeeAddCommand struct {
	app      *App
	userID   int64
	jobTitle string
}

// NewEmployeeAddCommand creates a new employee add command handler
func NewEmployeeAddCommand(app *App) *EmployeeAddCommand {
	return &EmployeeAddCommand{app: app}
}

// Execute stores an employee named by args.
func (c *EmployeeAddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "employee add", "usage: tsr employee add <name> [--user <id>] [--job-title <title>]")
	}

	input := validation.EmployeeInput{
		Name:     strings.Join(args, " "),
		JobTitle: c.jobTitle,
	}
	if c.userID != 0 {
		userID := c.userID
		input.UserID = &userID
	}

	employee, err := c.app.api.AddEmployee(ctx, input)
	if err != nil {
		return c.app.errors.Handle("add employee", err)
	}

	fmt.Fprintf(c.app.out, "Added employee %d: %s\n", employee.ID, employee)
	return nil
}
