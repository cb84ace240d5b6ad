package httpapi

import (
	"jobboard/internal/domain"
	"jobboard/internal/jobposting"
)

type SalaryDTO struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type JobDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	CompanyLogo    string    `json:"companyLogo"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	Salary         SalaryDTO `json:"salary"`
	PostedDate     string    `json:"postedDate"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements"`
	ApplicationURL string    `json:"applicationUrl"`
}

type JobDetailDTO struct {
	Job            JobDTO             `json:"job"`
	StructuredData jobposting.Posting `json:"structuredData"`
}

func toJobDTO(j domain.Job) JobDTO {
	reqs := j.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return JobDTO{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		CompanyLogo: j.CompanyLogo,
		Location:    j.Location,
		Type:        string(j.Type),
		Salary: SalaryDTO{
			Min:      j.Salary.Min,
			Max:      j.Salary.Max,
			Currency: j.Salary.Currency,
		},
		PostedDate:     jobposting.FormatDatePosted(j.PostedDate),
		Description:    j.Description,
		Requirements:   reqs,
		ApplicationURL: j.ApplicationURL,
	}
}
