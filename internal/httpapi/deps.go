package httpapi

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"jobboard/internal/domain"
	"jobboard/internal/view"
)

// JobSource is the read-only dataset the handlers render.
type JobSource interface {
	All() []domain.Job
	Find(id string) (domain.Job, error)
}

// LogoSource maps a company logo URL to the src to render.
type LogoSource interface {
	Src(raw string) string
}

type Deps struct {
	Jobs     JobSource
	Renderer *view.Renderer
	Logger   *zap.Logger

	// Optional: nil Logos renders original logo URLs, nil DB disables /logo/
	// and /admin/checkpoint.
	Logos LogoSource
	DB    *sql.DB

	// Now is injected for tests; nil means time.Now.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Deps) logoSrc(raw string) string {
	if d.Logos == nil {
		return raw
	}
	return d.Logos.Src(raw)
}
