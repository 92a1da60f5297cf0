package cli

import (
	"context"
	"embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"
	"time"

	"timesheet-report/internal/domain"
	"timesheet-report/internal/errors"
	"timesheet-report/internal/services"
)

// Output formats accepted by the report command.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

//go:embed templates/report.tmpl
var templateFS embed.FS

// csvHeader names the columns of a CSV export.
var csvHeader = []string{"project", "task", "date", "description", "duration", "hours"}

// ReportCommand handles the report command
type ReportCommand struct {
	app    *App
	format string
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{app: app, format: FormatText}
}

// Execute renders the report for the request id in args[0].
func (c *ReportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "report", "usage: tsr report <request-id> [--format text|csv|json]")
	}

	requestID, err := parseID("request ID", args[0])
	if err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimSpace(c.format))
	switch format {
	case FormatText, FormatCSV, FormatJSON:
	default:
		return errors.NewInvalidInputError("format", c.format, "unsupported format")
	}

	payload, err := c.app.api.GetReportValues(ctx, requestID)
	if err != nil {
		return c.app.errors.Handle("build report", err)
	}

	switch format {
	case FormatCSV:
		return writeCSV(c.app.out, payload, c.app.dateLayout())
	case FormatJSON:
		return writeJSON(c.app.out, payload)
	default:
		return renderText(c.app.out, payload, c.app.dateLayout())
	}
}

// newReportTemplate parses the embedded text layout with dates printed in layout.
func newReportTemplate(layout string) (*template.Template, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string { return t.Format(layout) },
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"rule":         func() string { return strings.Repeat("-", 69) },
		"companyLines": companyLines,
	}
	return template.New("report.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/report.tmpl")
}

// companyLines lists the non-empty address and contact lines of a profile.
func companyLines(p domain.CompanyProfile) []string {
	var lines []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}
	add(p.Street)
	add(p.Zip + " " + p.City)
	if p.State != nil {
		add(*p.State)
	}
	add(p.Phone)
	add(p.Email)
	add(p.Website)
	return lines
}

func renderText(w io.Writer, payload *services.ReportPayload, layout string) error {
	tmpl, err := newReportTemplate(layout)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}
	if err := tmpl.Execute(w, payload); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// writeCSV writes one row per entry, flattened with its project and task.
func writeCSV(w io.Writer, payload *services.ReportPayload, layout string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, project := range payload.TimesheetData.Projects {
		for _, task := range project.Tasks {
			for _, entry := range task.Entries {
				row := []string{
					project.Name,
					task.Name,
					entry.Date.Format(layout),
					entry.Description,
					entry.Duration,
					strconv.FormatFloat(entry.Hours, 'f', 2, 64),
				}
				if err := writer.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeJSON(w io.Writer, payload *services.ReportPayload) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
