package catalog

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"jobboard/internal/domain"
)

type file struct {
	Jobs []record `yaml:"jobs" validate:"dive"`
}

// record is the on-disk shape of one job; it is validated before being
// turned into a domain.Job.
type record struct {
	ID             string       `yaml:"id" validate:"required"`
	Title          string       `yaml:"title" validate:"required"`
	Company        string       `yaml:"company" validate:"required"`
	CompanyLogo    string       `yaml:"companyLogo" validate:"required,url"`
	Location       string       `yaml:"location" validate:"required"`
	Type           string       `yaml:"type" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT TEMPORARY INTERN VOLUNTEER PER_DIEM OTHER"`
	Salary         salaryRecord `yaml:"salary"`
	PostedDate     postedDate   `yaml:"postedDate"`
	Description    string       `yaml:"description" validate:"required"`
	Requirements   []string     `yaml:"requirements" validate:"dive,required"`
	ApplicationURL string       `yaml:"applicationUrl" validate:"required,url"`
}

type salaryRecord struct {
	Min      int64  `yaml:"min" validate:"gte=0"`
	Max      int64  `yaml:"max" validate:"gtefield=Min"`
	Currency string `yaml:"currency" validate:"required,iso4217"`
}

func (r record) toDomain() domain.Job {
	return domain.Job{
		ID:          r.ID,
		Title:       r.Title,
		Company:     r.Company,
		CompanyLogo: r.CompanyLogo,
		Location:    r.Location,
		Type:        domain.EmploymentType(r.Type),
		Salary: domain.Salary{
			Min:      r.Salary.Min,
			Max:      r.Salary.Max,
			Currency: r.Salary.Currency,
		},
		PostedDate:     r.PostedDate.UTC(),
		Description:    r.Description,
		Requirements:   append([]string(nil), r.Requirements...),
		ApplicationURL: r.ApplicationURL,
	}
}

// postedDate accepts a plain date or an RFC 3339 timestamp, quoted or not.
// Values without a zone are UTC.
type postedDate struct {
	time.Time
}

var postedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (d *postedDate) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: postedDate must be a date", n.Line)
	}
	if n.Tag == "!!null" || n.Value == "" {
		return nil
	}
	for _, layout := range postedLayouts {
		if t, err := time.Parse(layout, n.Value); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("line %d: postedDate %q is not YYYY-MM-DD or RFC 3339", n.Line, n.Value)
}
