package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"timesheet-report/internal/errors"
	"timesheet-report/internal/validation"
)

// CompanySetCommand handles the company set command
type CompanySetCommand struct {
	app      *App
	email    string
	street   string
	city     string
	zip      string
	state    string
	phone    string
	website  string
	logoPath string
}

// NewCompanySetCommand creates a new company set command handler
func NewCompanySetCommand(app *App) *CompanySetCommand {
	return &CompanySetCommand{app: app}
}

// Execute creates or overwrites the acting company named by args.
func (c *CompanySetCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "company set", "usage: tsr company set <name> [--city ...] [--logo <file>]")
	}

	input := validation.CompanyInput{
		Name:    strings.Join(args, " "),
		Email:   c.email,
		Street:  c.street,
		City:    c.city,
		Zip:     c.zip,
		State:   c.state,
		Phone:   c.phone,
		Website: c.website,
	}
	if c.logoPath != "" {
		logo, err := os.ReadFile(c.logoPath)
		if err != nil {
			return fmt.Errorf("failed to read logo: %w", err)
		}
		input.Logo = logo
	}

	company, err := c.app.api.SaveCompany(ctx, input)
	if err != nil {
		return c.app.errors.Handle("save company", err)
	}

	fmt.Fprintf(c.app.out, "Saved company %d: %s\n", company.ID, company.Name)
	return nil
}
