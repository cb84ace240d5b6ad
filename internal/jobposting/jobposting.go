// Package jobposting projects a job into the schema.org JobPosting vocabulary
// used by search engines for job indexing.
package jobposting

import (
	"time"

	"jobboard/internal/domain"
)

const (
	Context  = "https://schema.org/"
	UnitYear = "YEAR"

	dateLayout   = "2006-01-02"
	isoMillisUTC = "2006-01-02T15:04:05.000Z"
)

type Posting struct {
	Context            string         `json:"@context"`
	Type               string         `json:"@type"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	DatePosted         string         `json:"datePosted"`
	ValidThrough       string         `json:"validThrough"`
	EmploymentType     string         `json:"employmentType"`
	HiringOrganization Organization   `json:"hiringOrganization"`
	JobLocation        Place          `json:"jobLocation"`
	BaseSalary         MonetaryAmount `json:"baseSalary"`
}

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Place struct {
	Type    string        `json:"@type"`
	Address PostalAddress `json:"address"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality"`
}

type MonetaryAmount struct {
	Type     string            `json:"@type"`
	Currency string            `json:"currency"`
	Value    QuantitativeValue `json:"value"`
}

type QuantitativeValue struct {
	Type     string `json:"@type"`
	MinValue int64  `json:"minValue"`
	MaxValue int64  `json:"maxValue"`
	UnitText string `json:"unitText"`
}

// ValidThrough is one calendar month after posted, computed in UTC. Day
// overflow normalizes forward, so Jan 31 becomes Mar 3 (Mar 2 in leap years).
func ValidThrough(posted time.Time) time.Time {
	return posted.UTC().AddDate(0, 1, 0)
}

func FromJob(job domain.Job) Posting {
	return Posting{
		Context:        Context,
		Type:           "JobPosting",
		Title:          job.Title,
		Description:    job.Description,
		DatePosted:     FormatDatePosted(job.PostedDate),
		ValidThrough:   ValidThrough(job.PostedDate).Format(isoMillisUTC),
		EmploymentType: string(job.Type),
		HiringOrganization: Organization{
			Type: "Organization",
			Name: job.Company,
			Logo: job.CompanyLogo,
		},
		JobLocation: Place{
			Type: "Place",
			Address: PostalAddress{
				Type:            "PostalAddress",
				AddressLocality: job.Location,
			},
		},
		BaseSalary: MonetaryAmount{
			Type:     "MonetaryAmount",
			Currency: job.Salary.Currency,
			Value: QuantitativeValue{
				Type:     "QuantitativeValue",
				MinValue: job.Salary.Min,
				MaxValue: job.Salary.Max,
				UnitText: UnitYear,
			},
		},
	}
}

// FormatDatePosted keeps date-only postings as a plain date and falls back to
// RFC 3339 when the posting carries a time of day.
func FormatDatePosted(t time.Time) string {
	t = t.UTC()
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(dateLayout)
	}
	return t.Format(time.RFC3339)
}
