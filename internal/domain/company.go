package domain

// Company is the acting company whose profile heads a report.
type Company struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	StateName *string `json:"state_name"`
	Phone     string  `json:"phone"`
	Website   string  `json:"website"`
	Logo      []byte  `json:"logo,omitempty"`
}

// CompanyProfile is the flat projection of a Company handed to templates.
// HasLogo is false when the company has no logo.
type CompanyProfile struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	City    string  `json:"city"`
	Street  string  `json:"street"`
	Zip     string  `json:"zip"`
	State   *string `json:"state_id"`
	Phone   string  `json:"phone"`
	Website string  `json:"website"`
	HasLogo bool    `json:"has_logo"`
}

// Profile projects the company onto the fields a report header prints.
func (c Company) Profile() CompanyProfile {
	return CompanyProfile{
		Name:    c.Name,
		Email:   c.Email,
		City:    c.City,
		Street:  c.Street,
		Zip:     c.Zip,
		State:   c.StateName,
		Phone:   c.Phone,
		Website: c.Website,
		HasLogo: len(c.Logo) > 0,
	}
}
