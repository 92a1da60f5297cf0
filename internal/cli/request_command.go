package cli

import (
	"context"
	"fmt"

	"timesheet-report/internal/validation"
)

// RequestCreateCommand handles the request create command
type RequestCreateCommand struct {
	app    *App
	userID int64
	from   string
	to     string
}

// NewRequestCreateCommand creates a new request create command handler
func NewRequestCreateCommand(app *App) *RequestCreateCommand {
	return &RequestCreateCommand{app: app}
}

// Execute stores a report request and prints its id and reference.
func (c *RequestCreateCommand) Execute(ctx context.Context, args []string) error {
	from, err := parseOptionalDate("from", c.from)
	if err != nil {
		return err
	}
	to, err := parseOptionalDate("to", c.to)
	if err != nil {
		return err
	}

	request, err := c.app.api.CreateReportRequest(ctx, validation.ReportRequestInput{
		UserID:   c.userID,
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		return c.app.errors.Handle("create report request", err)
	}

	fmt.Fprintf(c.app.out, "Created report request %d (%s)\n", request.ID, request.Reference)
	if period := request.Period(c.app.dateLayout()); period != nil {
		fmt.Fprintln(c.app.out, *period)
	}
	return nil
}
