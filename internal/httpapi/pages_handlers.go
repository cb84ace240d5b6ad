package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"jobboard/internal/apperrors"
	"jobboard/internal/view"
)

type PagesHandler struct {
	Deps
}

// List renders one card per job in dataset order. It also owns "/", so any
// other unmatched path gets the not-found page.
func (h PagesHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.notFound(w, r)
		return
	}

	now := h.now()
	jobs := h.Jobs.All()
	cards := make([]view.Card, 0, len(jobs))
	for _, j := range jobs {
		cards = append(cards, view.CardFrom(j, now, h.logoSrc(j.CompanyLogo)))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.RenderList(w, cards); err != nil {
		h.renderFailed(w, r, err)
	}
}

// Detail expects /jobs/{id}. A miss is terminal: not-found page, no lookup
// retries and nothing else computed.
func (h PagesHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	job, err := h.Jobs.Find(id)
	if apperrors.IsNotFound(err) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.renderFailed(w, r, err)
		return
	}

	d := view.DetailFrom(job, h.now(), h.logoSrc(job.CompanyLogo))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Renderer.RenderDetail(w, d); err != nil {
		h.renderFailed(w, r, err)
	}
}

func (h PagesHandler) notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.Renderer.RenderNotFound(w); err != nil {
		h.Logger.Error("render not-found page", zap.String("request_id", RequestIDFrom(r.Context())), zap.Error(err), apperrors.StackField(err))
	}
}

// renderFailed is only reached before anything was written: the renderer
// buffers its output.
func (h PagesHandler) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	h.Logger.Error("render page",
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
		apperrors.StackField(err),
	)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
