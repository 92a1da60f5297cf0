package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-report/internal/domain"
	"timesheet-report/internal/services"
)

func TestReportCommand_Text(t *testing.T) {
	app, mock, out := setupTestApp(t)
	mock.payloads[1] = samplePayload()
	ctx := context.Background()

	err := NewReportCommand(app).Execute(ctx, []string{"1"})
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Acme GmbH\nHauptstr. 1\n80331 Munich\nBavaria\n"), text)
	assert.Contains(t, text, "Reference: TSR-REF-1")
	assert.Contains(t, text, "Employee:  Jane Doe (Engineer)")
	assert.Contains(t, text, "Period:    From 2024-01-01 To 2024-01-31")
	assert.Contains(t, text, "ProjectA")
	assert.Contains(t, text, "04:30")
	assert.Contains(t, text, "03:30")
	assert.Contains(t, text, domain.NoTask)
	assert.Contains(t, text, "2024-01-02")
	assert.Contains(t, text, "wrote, report")

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "Total"))
	assert.True(t, strings.HasSuffix(last, "05:00"))
}

func TestReportCommand_TextWithoutOptionalParts(t *testing.T) {
	app, mock, out := setupTestApp(t)
	payload := samplePayload()
	payload.Employee = nil
	payload.Period = nil
	empty := services.Aggregate(nil)
	payload.TimesheetData = &empty
	mock.payloads[2] = payload

	err := NewReportCommand(app).Execute(context.Background(), []string{"2"})
	require.NoError(t, err)

	text := out.String()
	assert.NotContains(t, text, "Employee:")
	assert.NotContains(t, text, "Period:")
	assert.Contains(t, text, "No time recorded.")
	assert.Contains(t, text, "00:00")
}

func TestReportCommand_DateFormat(t *testing.T) {
	app, mock, out := setupTestApp(t)
	app.config.Report.DateFormat = "02.01.2006"
	mock.payloads[1] = samplePayload()

	err := NewReportCommand(app).Execute(context.Background(), []string{"1"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "02.01.2024")
	assert.NotContains(t, out.String(), "    2024-01-02")
}

func TestReportCommand_CSV(t *testing.T) {
	app, mock, out := setupTestApp(t)
	mock.payloads[1] = samplePayload()
	cmd := NewReportCommand(app)
	cmd.format = FormatCSV

	err := cmd.Execute(context.Background(), []string{"1"})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"ProjectA", "Task1", "2024-01-01", "kickoff", "02:00", "2.00"}, records[1])
	assert.Equal(t, []string{"ProjectA", "Task1", "2024-01-02", "wrote, report", "01:30", "1.50"}, records[2])
	assert.Equal(t, []string{"ProjectB", domain.NoTask, "2024-01-04", "support call", "00:30", "0.50"}, records[4])
}

func TestReportCommand_JSON(t *testing.T) {
	app, mock, out := setupTestApp(t)
	mock.payloads[1] = samplePayload()
	cmd := NewReportCommand(app)
	cmd.format = "JSON"

	err := cmd.Execute(context.Background(), []string{"1"})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, services.DocModel, decoded["doc_model"])
	assert.Equal(t, "From 2024-01-01 To 2024-01-31", decoded["period"])

	timesheet, ok := decoded["timesheet_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "05:00", timesheet["total_hours_display"])

	docs, ok := decoded["docs"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "TSR-REF-1", docs["reference"])
	assert.Equal(t, "2024-01-01T00:00:00Z", docs["date_from"])
	assert.NotContains(t, docs, "FromDate")

	employee, ok := decoded["employee"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Engineer", employee["job_title"])

	company, ok := decoded["res_company"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Bavaria", company["state_name"])
	assert.NotContains(t, company, "logo")
}

func TestReportCommand_Errors(t *testing.T) {
	t.Run("requires a request id", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		err := NewReportCommand(app).Execute(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: tsr report")
	})

	t.Run("rejects a malformed request id", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		err := NewReportCommand(app).Execute(context.Background(), []string{"abc"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request ID")
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		mock.payloads[1] = samplePayload()
		cmd := NewReportCommand(app)
		cmd.format = "pdf"

		err := cmd.Execute(context.Background(), []string{"1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})

	t.Run("reports a missing request", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		err := NewReportCommand(app).Execute(context.Background(), []string{"9"})
		require.Error(t, err)
		assert.Equal(t, "failed to build report: report request not found: 9", err.Error())
	})
}

func TestCompanyLines(t *testing.T) {
	state := "Bavaria"
	lines := companyLines(domain.CompanyProfile{
		Name: "Acme", Street: "Hauptstr. 1", City: "Munich", State: &state, Email: "office@acme.test",
	})
	assert.Equal(t, []string{"Hauptstr. 1", "Munich", "Bavaria", "office@acme.test"}, lines)

	assert.Empty(t, companyLines(domain.CompanyProfile{Name: "Bare"}))
}
