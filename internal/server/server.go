// Package server provides the HTTP JSON API for browsing and comparing job listings.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathan/job-compare/internal/browse"
	"github.com/jonathan/job-compare/internal/ranking"
	"github.com/jonathan/job-compare/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	handler        http.Handler
	svc            *browse.Service
	rateLimiter    *ratelimit.Limiter
	metrics        *metrics
	allowedOrigins map[string]bool
	defaultSimilar int
	onShutdown     func()
}

// Config holds server configuration
type Config struct {
	Port int
	// AllowedOrigins lists CORS origins. Empty or "*" allows any origin.
	AllowedOrigins []string
	// DefaultSimilarResults is used when similar-jobs has no limit parameter.
	DefaultSimilarResults int
	// RateLimit overrides the environment-derived limiter config.
	RateLimit *ratelimit.Config
	// OnShutdown runs after the listener has drained, e.g. to close a pool.
	OnShutdown func()
}

// New creates a new server around svc.
func New(svc *browse.Service, cfg Config) *Server {
	rlCfg := cfg.RateLimit
	if rlCfg == nil {
		rlCfg = ratelimit.LoadConfig()
	}

	s := &Server{
		svc:            svc,
		rateLimiter:    ratelimit.NewLimiter(rlCfg),
		metrics:        newMetrics(prometheus.NewRegistry()),
		allowedOrigins: originSet(cfg.AllowedOrigins),
		defaultSimilar: cfg.DefaultSimilarResults,
		onShutdown:     cfg.OnShutdown,
	}
	if s.defaultSimilar <= 0 {
		s.defaultSimilar = ranking.DefaultMaxResults
	}
	s.metrics.observeCatalog(svc.Catalog())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /api/tags", s.handleListTags)
	mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	mux.HandleFunc("GET /api/jobs/{company}/{id}", s.handleGetJob)
	mux.HandleFunc("GET /api/similar-jobs/{id}", s.handleSimilarJobs)

	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/company-analysis", s.handleCompanyAnalysis)
	mux.HandleFunc("GET /api/competitiveness", s.handleCompetitiveness)
	mux.HandleFunc("GET /api/mercor-competitiveness", s.handleCompetitiveness)

	mux.HandleFunc("POST /api/reload", s.handleReload)

	// Metrics sit closest to the mux so they see the matched route pattern.
	s.handler = s.withRecover(s.withRateLimit(s.withRequestID(s.withLogging(s.withCORS(s.withMetrics(mux))))))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.rateLimiter.Stop()
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if s.onShutdown != nil {
		s.onShutdown()
	}
	log.Println("Server stopped")
	return nil
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status code and writes it. Internal errors are
// logged and their detail is not exposed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[server] %s %s failed (request %s): %v", r.Method, r.URL.Path, requestIDFrom(r.Context()), err)
		s.errorResponse(w, status, http.StatusText(status))
		return
	}
	s.errorResponse(w, status, err.Error())
}
