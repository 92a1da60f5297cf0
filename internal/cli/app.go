package cli

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"timesheet-report/internal/api"
	"timesheet-report/internal/config"
	"timesheet-report/internal/domain"
	"timesheet-report/internal/errors"
)

// InputDateLayout is the layout accepted by every date flag.
const InputDateLayout = domain.DefaultDateLayout

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App carries what every command handler needs.
type App struct {
	api    api.ReportAPI
	config *config.Config
	out    io.Writer
	errors *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(reportAPI api.ReportAPI, cfg *config.Config, out io.Writer) *App {
	return &App{
		api:    reportAPI,
		config: cfg,
		out:    out,
		errors: NewErrorHandler(),
	}
}

// dateLayout is the layout dates are printed with.
func (a *App) dateLayout() string {
	if a.config != nil && a.config.Report.DateFormat != "" {
		return a.config.Report.DateFormat
	}
	return domain.DefaultDateLayout
}

// parseDate parses a date flag value.
func parseDate(field, value string) (time.Time, error) {
	d, err := time.Parse(InputDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError(field, value, "expected a date like "+InputDateLayout)
	}
	return d, nil
}

// parseOptionalDate is parseDate for flags that may be left empty.
func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseID parses a positional record id.
func parseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError(field, value, "must be a positive number")
	}
	return id, nil
}

// parseHours accepts decimal hours ("1.5") or a clock value ("1:30").
func parseHours(value string) (float64, error) {
	value = strings.TrimSpace(value)
	invalid := errors.NewInvalidInputError("hours", value, "expected hours like 1.5 or 1:30")

	if h, m, ok := strings.Cut(value, ":"); ok {
		hours, err := strconv.ParseInt(h, 10, 64)
		if err != nil || hours < 0 {
			return 0, invalid
		}
		minutes, err := strconv.ParseInt(m, 10, 64)
		if err != nil || minutes < 0 || minutes >= 60 {
			return 0, invalid
		}
		total := decimal.NewFromInt(hours).Add(decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60)))
		return total.InexactFloat64(), nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, invalid
	}
	return d.InexactFloat64(), nil
}
