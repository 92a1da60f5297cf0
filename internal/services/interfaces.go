package services

import (
	"context"
	"time"

	"timesheet-report/internal/domain"
)

// EntryView is the per-line row a report prints.
type EntryView struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Hours       float64   `json:"hours"`
}

// TaskGroup holds the entries of one task in store order.
type TaskGroup struct {
	Name            string      `json:"name"`
	Entries         []EntryView `json:"entries"`
	Subtotal        float64     `json:"subtotal"`
	SubtotalDisplay string      `json:"subtotal_display"`
}

// ProjectGroup holds the tasks of one project in first-seen order.
type ProjectGroup struct {
	Name            string      `json:"name"`
	Tasks           []TaskGroup `json:"tasks"`
	Subtotal        float64     `json:"subtotal"`
	SubtotalDisplay string      `json:"subtotal_display"`
}

// Task looks up a task group by name.
func (p ProjectGroup) Task(name string) (TaskGroup, bool) {
	for _, task := range p.Tasks {
		if task.Name == name {
			return task, true
		}
	}
	return TaskGroup{}, false
}

// ReportTotals is the project → task → entries tree with its grand total.
type ReportTotals struct {
	Projects     []ProjectGroup `json:"projects"`
	Total        float64        `json:"total"`
	TotalDisplay string         `json:"total_hours_display"`
}

// Project looks up a project group by name.
func (r ReportTotals) Project(name string) (ProjectGroup, bool) {
	for _, project := range r.Projects {
		if project.Name == name {
			return project, true
		}
	}
	return ProjectGroup{}, false
}

// EntryCount returns the number of entries across every group.
func (r ReportTotals) EntryCount() int {
	count := 0
	for _, project := range r.Projects {
		for _, task := range project.Tasks {
			count += len(task.Entries)
		}
	}
	return count
}

// ReportPayload is everything a timesheet template renders.
type ReportPayload struct {
	DocIDs        []int64               `json:"doc_ids"`
	DocModel      string                `json:"doc_model"`
	Docs          *domain.ReportRequest `json:"docs"`
	Employee      *domain.Employee      `json:"employee"`
	Period        *string               `json:"period"`
	TimesheetData *ReportTotals         `json:"timesheet_data"`
	Company       *domain.Company       `json:"res_company"`
	CompanyData   domain.CompanyProfile `json:"company_data"`
}

// TimesheetService aggregates a user's time lines into report totals.
type TimesheetService interface {
	GetTimesheets(ctx context.Context, userID int64, from, to *time.Time) (*ReportTotals, error)
}

// ReportService assembles the payload for a stored report request.
type ReportService interface {
	GetReportValues(ctx context.Context, requestID int64) (*ReportPayload, error)
}
