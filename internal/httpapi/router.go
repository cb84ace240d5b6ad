package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages
	ph := PagesHandler{Deps: d}
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.List,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Detail, // expects /jobs/{id}
	}))

	// JSON API
	jh := JobsHandler{Jobs: d.Jobs, Logger: d.Logger}
	mux.HandleFunc("/api/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/api/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.GetByPath, // expects /api/jobs/{id}
	}))

	// Logos and cache maintenance
	if d.DB != nil {
		lh := LogosHandler{DB: d.DB}
		mux.HandleFunc("/logo/", methodMux(map[string]http.HandlerFunc{
			http.MethodGet: lh.GetByPath,
		}))
		dh := DBHandler{DB: d.DB}
		mux.HandleFunc("/admin/checkpoint", methodMux(map[string]http.HandlerFunc{
			http.MethodPost: dh.Checkpoint,
		}))
	}

	hh := HealthHandler{Jobs: d.Jobs}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// NewHandler is NewMux wrapped in the standard middleware chain.
func NewHandler(d Deps) http.Handler {
	return withMiddleware(NewMux(d), d.Logger)
}

// Metrics sits outside Recover so requests that panic are counted as 500s.
func withMiddleware(h http.Handler, logger *zap.Logger) http.Handler {
	return Chain(h,
		RequestID,
		Metrics,
		Recover(logger),
		AccessLog(logger),
		Cors,
	)
}
