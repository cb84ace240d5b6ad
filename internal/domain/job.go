package domain

import "time"

type EmploymentType string

const (
	FullTime  EmploymentType = "FULL_TIME"
	PartTime  EmploymentType = "PART_TIME"
	Contract  EmploymentType = "CONTRACT"
	Temporary EmploymentType = "TEMPORARY"
	Intern    EmploymentType = "INTERN"
	Volunteer EmploymentType = "VOLUNTEER"
	PerDiem   EmploymentType = "PER_DIEM"
	Other     EmploymentType = "OTHER"
)

type Salary struct {
	Min      int64
	Max      int64
	Currency string // ISO 4217
}

// Job is one posting from the static dataset. Values are never mutated after load.
type Job struct {
	ID             string
	Title          string
	Company        string
	CompanyLogo    string
	Location       string
	Type           EmploymentType
	Salary         Salary
	PostedDate     time.Time
	Description    string
	Requirements   []string
	ApplicationURL string
}

// Clone returns a copy that shares no slices with j.
func (j Job) Clone() Job {
	out := j
	if j.Requirements != nil {
		out.Requirements = append([]string(nil), j.Requirements...)
	}
	return out
}
