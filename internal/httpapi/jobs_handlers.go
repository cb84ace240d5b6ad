package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"jobboard/internal/jobposting"
)

type JobsHandler struct {
	Jobs   JobSource
	Logger *zap.Logger
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs := h.Jobs.All()
	out := make([]JobDTO, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobDTO(j))
	}
	writeJSON(w, out)
}

// GetByPath expects /api/jobs/{id}.
func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/jobs/")
	job, err := h.Jobs.Find(id)
	if err != nil {
		writeDomainError(w, r, h.Logger, err)
		return
	}
	writeJSON(w, JobDetailDTO{
		Job:            toJobDTO(job),
		StructuredData: jobposting.FromJob(job),
	})
}
