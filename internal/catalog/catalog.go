// Package catalog holds the static job dataset. It is decoded and validated
// once at startup and is read-only afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"jobboard/internal/apperrors"
	"jobboard/internal/domain"
)

//go:embed jobs.yml
var defaultDataset []byte

type Catalog struct {
	jobs []domain.Job
	byID map[string]int
}

// Load reads the dataset at path, or the embedded dataset when path is empty.
func Load(path string) (*Catalog, error) {
	b := defaultDataset
	if strings.TrimSpace(path) != "" {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return nil, apperrors.Internal("read catalog "+path, err)
		}
	}
	return Parse(b, time.Now())
}

// Parse decodes and validates a YAML dataset. now bounds the posting dates.
func Parse(b []byte, now time.Time) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, apperrors.InvalidInput("decode catalog", err)
	}

	if err := newValidator().Struct(f); err != nil {
		return nil, apperrors.InvalidInput("validate catalog", flattenValidation(err))
	}

	c := &Catalog{
		jobs: make([]domain.Job, 0, len(f.Jobs)),
		byID: make(map[string]int, len(f.Jobs)),
	}
	var errs []error
	for i, r := range f.Jobs {
		if prev, dup := c.byID[r.ID]; dup {
			errs = append(errs, fmt.Errorf("jobs[%d].id %q duplicates jobs[%d]", i, r.ID, prev))
			continue
		}
		if r.PostedDate.IsZero() {
			errs = append(errs, fmt.Errorf("jobs[%d].postedDate is required", i))
			continue
		}
		if r.PostedDate.After(now) {
			errs = append(errs, fmt.Errorf("jobs[%d].postedDate %s is in the future", i, r.PostedDate.Format(time.RFC3339)))
			continue
		}
		c.byID[r.ID] = len(c.jobs)
		c.jobs = append(c.jobs, r.toDomain())
	}
	if len(errs) > 0 {
		return nil, apperrors.InvalidInput("validate catalog", errors.Join(errs...))
	}
	return c, nil
}

// All returns every job in dataset order.
func (c *Catalog) All() []domain.Job {
	out := make([]domain.Job, len(c.jobs))
	for i, j := range c.jobs {
		out[i] = j.Clone()
	}
	return out
}

func (c *Catalog) Find(id string) (domain.Job, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Job{}, apperrors.NotFound(fmt.Sprintf("job %q", id), nil)
	}
	return c.jobs[i].Clone(), nil
}

func (c *Catalog) Len() int { return len(c.jobs) }

// LogoURLs returns the distinct company logo URLs in first-seen order.
func (c *Catalog) LogoURLs() []string {
	seen := map[string]bool{}
	var out []string
	for _, j := range c.jobs {
		if j.CompanyLogo == "" || seen[j.CompanyLogo] {
			continue
		}
		seen[j.CompanyLogo] = true
		out = append(out, j.CompanyLogo)
	}
	return out
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func flattenValidation(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	errs := make([]error, 0, len(ves))
	for _, fe := range ves {
		field := strings.TrimPrefix(fe.Namespace(), "file.")
		if fe.Param() != "" {
			errs = append(errs, fmt.Errorf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			errs = append(errs, fmt.Errorf("%s failed %s", field, fe.Tag()))
		}
	}
	return errors.Join(errs...)
}
