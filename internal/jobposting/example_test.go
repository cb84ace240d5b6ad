package jobposting

import (
	"fmt"
	"time"

	"jobboard/internal/domain"
)

func ExampleFromJob() {
	p := FromJob(domain.Job{
		ID:         "42",
		Title:      "Platform Engineer",
		Company:    "Acme",
		Type:       domain.FullTime,
		Salary:     domain.Salary{Min: 80000, Max: 120000, Currency: "USD"},
		PostedDate: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
	})

	fmt.Println(p.DatePosted, p.ValidThrough)
	fmt.Println(p.BaseSalary.Currency, p.BaseSalary.Value.MinValue, p.BaseSalary.Value.MaxValue, p.BaseSalary.Value.UnitText)
	// Output:
	// 2024-12-15 2025-01-15T00:00:00.000Z
	// USD 80000 120000 YEAR
}
