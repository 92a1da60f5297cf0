package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "timesheet-report/internal/errors"
)

func TestLogCommand_Execute(t *testing.T) {
	t.Run("records a line with project and task", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		cmd := NewLogCommand(app)
		cmd.userID = 7
		cmd.date = "2024-01-05"
		cmd.hours = "1:30"
		cmd.project = "Website"
		cmd.task = "Design"

		err := cmd.Execute(context.Background(), []string{"homepage", "mockups"})
		require.NoError(t, err)

		require.Len(t, mock.lines, 1)
		line := mock.lines[0]
		assert.Equal(t, int64(7), line.UserID)
		assert.Equal(t, "homepage mockups", line.Description)
		assert.InDelta(t, 1.5, line.Hours, 1e-9)
		assert.Equal(t, "2024-01-05", line.Date.Format("2006-01-02"))
		assert.Equal(t, "Logged 01:30 on 2024-01-05 to Website / Design\n", out.String())
	})

	t.Run("defaults the date to today", func(t *testing.T) {
		original := timeNow
		timeNow = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
		defer func() { timeNow = original }()

		app, mock, out := setupTestApp(t)
		cmd := NewLogCommand(app)
		cmd.userID = 7
		cmd.hours = "0.5"

		require.NoError(t, cmd.Execute(context.Background(), nil))
		assert.Equal(t, "2024-03-15", mock.lines[0].Date.Format("2006-01-02"))
		assert.Contains(t, out.String(), "No Project / No Task")
	})

	t.Run("requires hours", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		cmd := NewLogCommand(app)
		cmd.userID = 7

		err := cmd.Execute(context.Background(), []string{"something"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: tsr log")
		assert.Empty(t, mock.lines)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		cmd := NewLogCommand(app)
		cmd.userID = 7
		cmd.hours = "1"
		cmd.date = "yesterday"

		err := cmd.Execute(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
	})

	t.Run("reports API validation failures", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		mock.err = apperrors.NewValidationError("invalid time line: user_id must be greater than 0", nil)
		cmd := NewLogCommand(app)
		cmd.hours = "1"

		err := cmd.Execute(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, "failed to log time: invalid time line: user_id must be greater than 0", err.Error())
	})
}

func TestEmployeeAddCommand_Execute(t *testing.T) {
	app, mock, out := setupTestApp(t)
	cmd := NewEmployeeAddCommand(app)
	cmd.userID = 7
	cmd.jobTitle = "Engineer"

	require.NoError(t, cmd.Execute(context.Background(), []string{"Jane", "Doe"}))

	require.Len(t, mock.employees, 1)
	require.NotNil(t, mock.employees[0].UserID)
	assert.Equal(t, int64(7), *mock.employees[0].UserID)
	assert.Equal(t, "Added employee 1: Jane Doe (Engineer)\n", out.String())

	unlinked := NewEmployeeAddCommand(app)
	require.NoError(t, unlinked.Execute(context.Background(), []string{"Contractor"}))
	assert.Nil(t, mock.employees[1].UserID)

	err := NewEmployeeAddCommand(app).Execute(context.Background(), nil)
	assert.Error(t, err)
}

func TestCompanySetCommand_Execute(t *testing.T) {
	t.Run("saves the profile with a logo file", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		logoPath := filepath.Join(t.TempDir(), "logo.png")
		require.NoError(t, os.WriteFile(logoPath, []byte{0x89, 0x50}, 0o600))

		cmd := NewCompanySetCommand(app)
		cmd.city = "Munich"
		cmd.state = "Bavaria"
		cmd.logoPath = logoPath

		require.NoError(t, cmd.Execute(context.Background(), []string{"Acme", "GmbH"}))

		require.Len(t, mock.companies, 1)
		assert.Equal(t, "Acme GmbH", mock.companies[0].Name)
		assert.Equal(t, "Bavaria", mock.companies[0].State)
		assert.Equal(t, []byte{0x89, 0x50}, mock.companies[0].Logo)
		assert.Equal(t, "Saved company 1: Acme GmbH\n", out.String())
	})

	t.Run("fails on a missing logo file", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		cmd := NewCompanySetCommand(app)
		cmd.logoPath = filepath.Join(t.TempDir(), "missing.png")

		err := cmd.Execute(context.Background(), []string{"Acme"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read logo")
		assert.Empty(t, mock.companies)
	})
}

func TestRequestCreateCommand_Execute(t *testing.T) {
	t.Run("creates a bounded request", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		cmd := NewRequestCreateCommand(app)
		cmd.userID = 7
		cmd.from = "2024-01-01"
		cmd.to = "2024-01-31"

		require.NoError(t, cmd.Execute(context.Background(), nil))

		require.Len(t, mock.requests, 1)
		require.NotNil(t, mock.requests[0].FromDate)
		require.NotNil(t, mock.requests[0].ToDate)
		assert.Equal(t, "Created report request 1 (TSR-MOCK-1)\nFrom 2024-01-01 To 2024-01-31\n", out.String())
	})

	t.Run("creates an open-ended request", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		cmd := NewRequestCreateCommand(app)
		cmd.userID = 7

		require.NoError(t, cmd.Execute(context.Background(), nil))

		assert.Nil(t, mock.requests[0].FromDate)
		assert.Nil(t, mock.requests[0].ToDate)
		assert.Equal(t, "Created report request 1 (TSR-MOCK-1)\n", out.String())
	})

	t.Run("rejects a malformed bound", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		cmd := NewRequestCreateCommand(app)
		cmd.userID = 7
		cmd.to = "31/01/2024"

		err := cmd.Execute(context.Background(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "to")
		assert.Empty(t, mock.requests)
	})
}
