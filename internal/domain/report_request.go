package domain

import (
	"time"
)

// DefaultDateLayout is used for period descriptions unless configured otherwise.
const DefaultDateLayout = "2006-01-02"

// ReportRequest asks for the timesheet of one user over an optional,
// inclusive date range.
type ReportRequest struct {
	ID        int64      `json:"id"`
	Reference string     `json:"reference"`
	UserID    int64      `json:"user_id"`
	FromDate  *time.Time `json:"date_from"`
	ToDate    *time.Time `json:"date_to"`
	CreatedAt time.Time  `json:"create_date"`
}

// Period describes the date range for humans. It returns nil when the
// request has neither bound.
func (r ReportRequest) Period(layout string) *string {
	if layout == "" {
		layout = DefaultDateLayout
	}

	var period string
	switch {
	case r.FromDate != nil && r.ToDate != nil:
		period = "From " + r.FromDate.Format(layout) + " To " + r.ToDate.Format(layout)
	case r.FromDate != nil:
		period = "From " + r.FromDate.Format(layout)
	case r.ToDate != nil:
		period = "To " + r.ToDate.Format(layout)
	default:
		return nil
	}
	return &period
}
