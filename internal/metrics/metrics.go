package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of http requests handled by the service.",
		},
		[]string{"path", "method", "code"},
	)

	LogoFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logo_fetch_total",
			Help: "Company logo fetches by result (cached, fetched, rejected, failed).",
		},
		[]string{"result"},
	)

	CatalogJobs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_jobs",
			Help: "Number of jobs loaded into the catalog.",
		},
	)
)
