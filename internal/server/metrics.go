package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jonathan/job-compare/internal/catalog"
)

type metrics struct {
	registry    *prometheus.Registry
	duration    *prometheus.SummaryVec
	requests    *prometheus.CounterVec
	rateLimited prometheus.Counter
	catalogJobs *prometheus.GaugeVec
	reloads     *prometheus.CounterVec
}

// newMetrics registers the HTTP and catalog collectors on reg. Each server
// owns its registry so several can coexist in one process.
func newMetrics(reg *prometheus.Registry) *metrics {
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &metrics{
		registry: reg,
		duration: f.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		rateLimited: f.NewCounter(prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}),
		catalogJobs: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "job_catalog_jobs",
				Help: "Jobs in the current catalog snapshot",
			},
			[]string{"company"},
		),
		reloads: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "job_catalog_reloads_total",
				Help: "Catalog reload attempts by result",
			},
			[]string{"result"},
		),
	}
}

// observeCatalog publishes per-company job counts for cat.
func (m *metrics) observeCatalog(cat *catalog.Catalog) {
	m.catalogJobs.Reset()
	if cat == nil {
		return
	}
	for _, c := range cat.Companies() {
		m.catalogJobs.WithLabelValues(string(c)).Set(float64(len(cat.Jobs(c))))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// withMetrics records request counts and durations labelled by route pattern.
func (s *Server) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(rec.status)
		s.metrics.duration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		s.metrics.requests.WithLabelValues(r.Method, path, status).Inc()
	})
}
