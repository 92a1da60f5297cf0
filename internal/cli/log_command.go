package cli

import (
	"context"
	"fmt"
	"strings"

	"timesheet-report/internal/errors"
	"timesheet-report/internal/services"
	"timesheet-report/internal/validation"
)

// LogCommand handles the log command
type LogCommand struct {
	app     *App
	userID  int64
	date    string
	hours   string
	project string
	task    string
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{app: app}
}

// Execute records one time line; args form its description.
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	if strings.TrimSpace(c.hours) == "" {
		return errors.NewInvalidInputError("hours", c.hours, "usage: tsr log --user <id> --hours <h> [description]")
	}
	hours, err := parseHours(c.hours)
	if err != nil {
		return err
	}

	date := timeNow()
	if strings.TrimSpace(c.date) != "" {
		if date, err = parseDate("date", c.date); err != nil {
			return err
		}
	}

	entry, err := c.app.api.LogTime(ctx, validation.TimeLineInput{
		UserID:      c.userID,
		Date:        date,
		Description: strings.Join(args, " "),
		Hours:       hours,
		ProjectName: c.project,
		TaskName:    c.task,
	})
	if err != nil {
		return c.app.errors.Handle("log time", err)
	}

	fmt.Fprintf(c.app.out, "Logged %s on %s to %s / %s\n",
		services.FormatClock(entry.Hours), entry.Date.Format(c.app.dateLayout()), entry.ProjectName, entry.TaskName)
	return nil
}
