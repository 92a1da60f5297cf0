package domain

import (
	"time"
)

// Sentinel group names used when a line has no project or task.
const (
	NoProject = "No Project"
	NoTask    = "No Task"
)

// TimeEntry is one recorded time line as the report sees it.
// ProjectName and TaskName are never empty; absent references carry the
// NoProject / NoTask sentinels.
type TimeEntry struct {
	ID          int64
	Date        time.Time
	Description string
	Hours       float64
	ProjectName string
	TaskName    string
}

// NewTimeEntry builds an entry, substituting sentinels for missing names.
func NewTimeEntry(id int64, date time.Time, description string, hours float64, projectName, taskName *string) TimeEntry {
	return TimeEntry{
		ID:          id,
		Date:        date,
		Description: description,
		Hours:       hours,
		ProjectName: nameOr(projectName, NoProject),
		TaskName:    nameOr(taskName, NoTask),
	}
}

func nameOr(name *string, sentinel string) string {
	if name == nil || *name == "" {
		return sentinel
	}
	return *name
}
