package jobposting

import (
	"encoding/json"
	"testing"
	"time"

	"jobboard/internal/domain"
)

func sampleJob() domain.Job {
	return domain.Job{
		ID:          "42",
		Title:       "Site Reliability Engineer",
		Company:     "Acme",
		CompanyLogo: "https://img.example.com/acme.png",
		Location:    "Austin, TX",
		Type:        domain.FullTime,
		Salary:      domain.Salary{Min: 80000, Max: 120000, Currency: "USD"},
		PostedDate:  time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		Description: "Keep things up.",
	}
}

func TestValidThrough(t *testing.T) {
	tests := []struct {
		name   string
		posted time.Time
		want   time.Time
	}{
		{"mid month", date(2024, 3, 15), date(2024, 4, 15)},
		{"december rolls into next year", date(2024, 12, 15), date(2025, 1, 15)},
		{"december 31", date(2023, 12, 31), date(2024, 1, 31)},
		{"january 31 leap year", date(2024, 1, 31), date(2024, 3, 2)},
		{"january 31 common year", date(2023, 1, 31), date(2023, 3, 3)},
		{"keeps time of day", time.Date(2024, 5, 10, 13, 45, 0, 0, time.UTC), time.Date(2024, 6, 10, 13, 45, 0, 0, time.UTC)},
		{"converted to utc", time.Date(2024, 6, 30, 23, 0, 0, 0, time.FixedZone("X", -2*3600)), time.Date(2024, 8, 1, 1, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidThrough(tt.posted); !got.Equal(tt.want) {
				t.Fatalf("ValidThrough(%s) = %s, want %s", tt.posted, got, tt.want)
			}
		})
	}
}

func TestFromJobProjection(t *testing.T) {
	p := FromJob(sampleJob())

	if p.Context != "https://schema.org/" || p.Type != "JobPosting" {
		t.Fatalf("unexpected header %q %q", p.Context, p.Type)
	}
	if p.DatePosted != "2024-12-15" {
		t.Fatalf("datePosted = %q", p.DatePosted)
	}
	if p.ValidThrough != "2025-01-15T00:00:00.000Z" {
		t.Fatalf("validThrough = %q", p.ValidThrough)
	}
	if p.EmploymentType != "FULL_TIME" {
		t.Fatalf("employmentType = %q", p.EmploymentType)
	}
	if p.HiringOrganization.Name != "Acme" || p.HiringOrganization.Logo != "https://img.example.com/acme.png" {
		t.Fatalf("organization = %+v", p.HiringOrganization)
	}
	if p.JobLocation.Address.AddressLocality != "Austin, TX" {
		t.Fatalf("location = %+v", p.JobLocation)
	}
	v := p.BaseSalary.Value
	if p.BaseSalary.Currency != "USD" || v.MinValue != 80000 || v.MaxValue != 120000 || v.UnitText != "YEAR" {
		t.Fatalf("baseSalary = %+v", p.BaseSalary)
	}
}

func TestUnitTextIsAlwaysYear(t *testing.T) {
	for _, typ := range []domain.EmploymentType{domain.FullTime, domain.PartTime, domain.Contract, domain.Intern} {
		j := sampleJob()
		j.Type = typ
		if got := FromJob(j).BaseSalary.Value.UnitText; got != UnitYear {
			t.Fatalf("%s: unitText = %q", typ, got)
		}
	}
}

func TestJSONUsesSchemaKeys(t *testing.T) {
	b, err := json.Marshal(FromJob(sampleJob()))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"@context", "@type", "title", "description", "datePosted", "validThrough", "employmentType", "hiringOrganization", "jobLocation", "baseSalary"} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing key %q in %s", k, b)
		}
	}
	value := m["baseSalary"].(map[string]any)["value"].(map[string]any)
	if value["minValue"] != float64(80000) || value["maxValue"] != float64(120000) || value["unitText"] != "YEAR" {
		t.Fatalf("unexpected value %v", value)
	}
}

func TestFormatDatePosted(t *testing.T) {
	if got := FormatDatePosted(date(2024, 1, 2)); got != "2024-01-02" {
		t.Fatalf("date only: %q", got)
	}
	if got := FormatDatePosted(time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)); got != "2024-01-02T09:30:00Z" {
		t.Fatalf("with time: %q", got)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
