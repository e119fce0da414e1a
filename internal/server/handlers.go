package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/job-compare/internal/browse"
	"github.com/jonathan/job-compare/internal/catalog"
	"github.com/jonathan/job-compare/internal/types"
)

// maxSimilarLimit caps the limit query parameter of similar-jobs.
const maxSimilarLimit = 50

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"jobs":   s.svc.Catalog().Len(),
	})
}

// handleListTags returns every registered tag in id order.
func (s *Server) handleListTags(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.svc.ListTags())
}

// handleListJobs returns one page of jobs matching the query filters.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	tagID, err := parseTagParam(q.Get("tag"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	page, err := intParam(q.Get("page"), "page")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	perPage, err := intParam(q.Get("per_page"), "per_page")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.svc.ListJobs(browse.ListJobsRequest{
		Company:          q.Get("company"),
		TagID:            tagID,
		Search:           q.Get("search"),
		Page:             page,
		PerPage:          perPage,
		DescriptionLimit: browse.ListDescriptionLimit,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetJob returns one job with its full description.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.svc.GetJob(r.PathValue("company"), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleSimilarJobs ranks other companies' jobs by tag overlap with the target.
func (s *Server) handleSimilarJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := intParam(q.Get("limit"), "limit")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	switch {
	case limit < 0:
		s.writeError(w, r, &browse.InvalidRequestError{Field: "limit", Message: "must be positive"})
		return
	case limit == 0:
		limit = s.defaultSimilar
	case limit > maxSimilarLimit:
		limit = maxSimilarLimit
	}

	result, err := s.svc.GetSimilarJobs(r.PathValue("id"), q.Get("company"), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleStats returns job counts and salary summaries per company.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.svc.Stats())
}

// handleCompanyAnalysis returns salary spread and top tags per company.
func (s *Server) handleCompanyAnalysis(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.svc.CompanyAnalysis())
}

// handleCompetitiveness compares one company, mercor by default, with the rest.
func (s *Server) handleCompetitiveness(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")
	if strings.TrimSpace(company) == "" {
		company = string(types.CompanyMercor)
	}

	result, err := s.svc.Competitiveness(company)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// reloadResponse summarizes a catalog reload.
type reloadResponse struct {
	Loaded  map[types.Company]int `json:"loaded"`
	Total   int                   `json:"total"`
	Skipped int                   `json:"skipped"`
	Errors  []string              `json:"errors,omitempty"`
}

// maxReloadErrors bounds the skipped-row messages echoed back to the caller.
const maxReloadErrors = 20

// handleReload rebuilds the catalog from its sources.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Reload(r.Context())
	if err != nil {
		s.metrics.reloads.WithLabelValues("error").Inc()
		s.writeError(w, r, err)
		return
	}
	s.metrics.reloads.WithLabelValues("ok").Inc()
	s.metrics.observeCatalog(s.svc.Catalog())

	s.jsonResponse(w, http.StatusOK, newReloadResponse(summary))
}

func newReloadResponse(summary *catalog.LoadSummary) reloadResponse {
	resp := reloadResponse{Loaded: map[types.Company]int{}}
	if summary == nil {
		return resp
	}
	resp.Loaded = summary.Loaded
	resp.Total = summary.Total()
	resp.Skipped = len(summary.Skipped)
	for i, e := range summary.Skipped {
		if i == maxReloadErrors {
			break
		}
		resp.Errors = append(resp.Errors, e.Error())
	}
	return resp
}

// parseTagParam treats "" and "all" as no tag filter.
func parseTagParam(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "all") {
		return 0, nil
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, &browse.InvalidRequestError{Field: "tag", Message: "must be an integer or \"all\""}
	}
	if id <= 0 {
		return 0, &browse.InvalidRequestError{Field: "tag", Message: "tag id must be positive"}
	}
	return id, nil
}

// intParam parses an optional integer query parameter. Missing means 0.
func intParam(v, field string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &browse.InvalidRequestError{Field: field, Message: "must be an integer"}
	}
	return n, nil
}
