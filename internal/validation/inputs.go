package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ReportRequestInput is the data needed to store a report request.
type ReportRequestInput struct {
	UserID   int64      `json:"user_id" validate:"gt=0"`
	FromDate *time.Time `json:"from_date"`
	ToDate   *time.Time `json:"to_date"`
}

// TimeLineInput is one time line to record.
type TimeLineInput struct {
	UserID      int64     `json:"user_id" validate:"gt=0"`
	Date        time.Time `json:"date"`
	Description string    `json:"description" validate:"max=1024"`
	Hours       float64   `json:"hours" validate:"gte=0,lte=24"`
	ProjectName string    `json:"project" validate:"max=255"`
	TaskName    string    `json:"task" validate:"max=255"`
}

// EmployeeInput describes an employee to create.
type EmployeeInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	UserID   *int64 `json:"user_id" validate:"omitempty,gt=0"`
	JobTitle string `json:"job_title" validate:"max=255"`
}

// CompanyInput describes the acting company profile.
type CompanyInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"omitempty,email"`
	Street  string `json:"street" validate:"max=255"`
	City    string `json:"city" validate:"max=255"`
	Zip     string `json:"zip" validate:"max=32"`
	State   string `json:"state" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=64"`
	Website string `json:"website" validate:"max=255"`
	Logo    []byte `json:"-"`
}

func validateReportRequestInput(sl validator.StructLevel) {
	input := sl.Current().Interface().(ReportRequestInput)
	if input.FromDate != nil && input.ToDate != nil && input.ToDate.Before(*input.FromDate) {
		sl.ReportError(input.ToDate, "to_date", "ToDate", "date_order", "from_date")
	}
}

func validateTimeLineInput(sl validator.StructLevel) {
	input := sl.Current().Interface().(TimeLineInput)
	if input.Date.IsZero() {
		sl.ReportError(input.Date, "date", "Date", "required", "")
	}
}

// ValidateReportRequest validates a report request before it is stored.
func (v *Validator) ValidateReportRequest(input ReportRequestInput) error {
	return v.Struct(input)
}

// ValidateTimeLine validates a time line before it is stored.
func (v *Validator) ValidateTimeLine(input TimeLineInput) error {
	return v.Struct(input)
}

// ValidateEmployee validates an employee before it is stored.
func (v *Validator) ValidateEmployee(input EmployeeInput) error {
	return v.Struct(input)
}

// ValidateCompany validates a company profile before it is stored.
func (v *Validator) ValidateCompany(input CompanyInput) error {
	return v.Struct(input)
}
