package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"timesheet-report/internal/domain"
	"timesheet-report/internal/repository/sqlite"
)

// timesheetServiceImpl implements the TimesheetService interface
type timesheetServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewTimesheetService creates a new TimesheetService instance
func NewTimesheetService(repo sqlite.Repository) TimesheetService {
	return &timesheetServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// GetTimesheets reads the user's lines inside the optional inclusive date
// range and folds them into report totals. An empty result is not an error.
func (s *timesheetServiceImpl) GetTimesheets(ctx context.Context, userID int64, from, to *time.Time) (*ReportTotals, error) {
	lines, err := s.repo.SearchAnalyticLines(ctx, sqlite.AnalyticLineFilter{
		UserID:   userID,
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		return nil, err
	}

	totals := Aggregate(s.mapper.TimeEntriesFromLines(lines))
	return &totals, nil
}

// Aggregate folds entries, already ordered by project, task and date, into
// the project → task → entries tree. Groups keep first-seen order and
// entries keep input order. Sums are accumulated as decimals so that every
// subtotal equals the exact sum of its members.
func Aggregate(entries []domain.TimeEntry) ReportTotals {
	b := newTotalsBuilder()
	for _, entry := range entries {
		b.add(entry)
	}
	return b.build()
}

type taskAccumulator struct {
	name     string
	entries  []EntryView
	subtotal decimal.Decimal
}

type projectAccumulator struct {
	name     string
	tasks    []*taskAccumulator
	index    map[string]int
	subtotal decimal.Decimal
}

// task returns the accumulator for name, creating it on first use.
func (p *projectAccumulator) task(name string) *taskAccumulator {
	if i, ok := p.index[name]; ok {
		return p.tasks[i]
	}
	t := &taskAccumulator{name: name}
	p.index[name] = len(p.tasks)
	p.tasks = append(p.tasks, t)
	return t
}

type totalsBuilder struct {
	projects []*projectAccumulator
	index    map[string]int
	total    decimal.Decimal
}

func newTotalsBuilder() *totalsBuilder {
	return &totalsBuilder{index: make(map[string]int)}
}

// project returns the accumulator for name, creating it on first use.
func (b *totalsBuilder) project(name string) *projectAccumulator {
	if i, ok := b.index[name]; ok {
		return b.projects[i]
	}
	p := &projectAccumulator{name: name, index: make(map[string]int)}
	b.index[name] = len(b.projects)
	b.projects = append(b.projects, p)
	return p
}

func (b *totalsBuilder) add(entry domain.TimeEntry) {
	hours := hoursToDecimal(entry.Hours)

	project := b.project(entry.ProjectName)
	task := project.task(entry.TaskName)

	task.entries = append(task.entries, EntryView{
		Date:        entry.Date,
		Description: entry.Description,
		Duration:    FormatClock(entry.Hours),
		Hours:       entry.Hours,
	})
	task.subtotal = task.subtotal.Add(hours)
	project.subtotal = project.subtotal.Add(hours)
	b.total = b.total.Add(hours)
}

// build snapshots the accumulators and attaches the formatted sums.
func (b *totalsBuilder) build() ReportTotals {
	projects := make([]ProjectGroup, 0, len(b.projects))
	for _, p := range b.projects {
		tasks := make([]TaskGroup, 0, len(p.tasks))
		for _, t := range p.tasks {
			tasks = append(tasks, TaskGroup{
				Name:            t.name,
				Entries:         t.entries,
				Subtotal:        t.subtotal.InexactFloat64(),
				SubtotalDisplay: FormatClockDecimal(t.subtotal),
			})
		}
		projects = append(projects, ProjectGroup{
			Name:            p.name,
			Tasks:           tasks,
			Subtotal:        p.subtotal.InexactFloat64(),
			SubtotalDisplay: FormatClockDecimal(p.subtotal),
		})
	}

	return ReportTotals{
		Projects:     projects,
		Total:        b.total.InexactFloat64(),
		TotalDisplay: FormatClockDecimal(b.total),
	}
}
