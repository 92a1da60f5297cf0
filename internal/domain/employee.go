package domain

// Employee is the HR record linked to the reported user.
type Employee struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	UserID   *int64 `json:"user_id"`
	JobTitle string `json:"job_title"`
}

func (e Employee) String() string {
	if e.JobTitle == "" {
		return e.Name
	}
	return e.Name + " (" + e.JobTitle + ")"
}
