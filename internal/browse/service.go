// Package browse is the query surface of the job browser: tag listing,
// filtered and paginated job listing, similar-job search and stats views.
package browse

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jonathan/job-compare/internal/catalog"
	"github.com/jonathan/job-compare/internal/filter"
	"github.com/jonathan/job-compare/internal/pagination"
	"github.com/jonathan/job-compare/internal/ranking"
	"github.com/jonathan/job-compare/internal/stats"
	"github.com/jonathan/job-compare/internal/tags"
	"github.com/jonathan/job-compare/internal/types"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
	// ListDescriptionLimit is the description length used by job listings.
	ListDescriptionLimit = 200
)

// Loader builds a fresh catalog from the configured sources.
type Loader func(ctx context.Context) (*catalog.Catalog, *catalog.LoadSummary, error)

// ErrReloadUnavailable is returned by Reload when the service has no loader.
var ErrReloadUnavailable = errors.New("reload is not configured")

// Service answers queries against the current catalog snapshot.
type Service struct {
	registry *tags.Registry
	store    *catalog.Store
	loader   Loader

	reloadMu sync.Mutex
	cache    atomic.Pointer[derived]
}

// derived holds stats computed once for a single catalog snapshot.
type derived struct {
	cat *catalog.Catalog

	overviewOnce sync.Once
	overview     *stats.Overview

	analysisOnce sync.Once
	analysis     map[types.Company]stats.CompanyAnalysis
}

// New returns a service over cat. loader may be nil, in which case Reload
// is unavailable.
func New(reg *tags.Registry, cat *catalog.Catalog, loader Loader) *Service {
	return &Service{
		registry: reg,
		store:    catalog.NewStore(cat),
		loader:   loader,
	}
}

// Catalog returns the current snapshot.
func (s *Service) Catalog() *catalog.Catalog {
	return s.store.Load()
}

// Registry returns the tag registry.
func (s *Service) Registry() *tags.Registry {
	return s.registry
}

// ListTags returns every tag in registry order.
func (s *Service) ListTags() []types.Tag {
	return s.registry.All()
}

// ListJobsRequest holds the optional filters and paging parameters for ListJobs.
type ListJobsRequest struct {
	Company string // "" or "all" for every company
	TagID   int    // 0 for no tag filter
	Search  string
	Page    int
	PerPage int
	// DescriptionLimit truncates descriptions when positive.
	DescriptionLimit int
}

// ListJobs filters the catalog and returns the requested page.
func (s *Service) ListJobs(req ListJobsRequest) (*types.JobsPage, error) {
	company, err := parseCompanyFilter(req.Company)
	if err != nil {
		return nil, err
	}
	if req.TagID < 0 {
		return nil, &InvalidRequestError{Field: "tag", Message: "tag id must be positive"}
	}
	if req.TagID > 0 && !s.registry.Has(req.TagID) {
		return nil, &tags.UnknownTagError{ID: req.TagID}
	}

	cat := s.store.Load()
	matched := filter.Apply(cat.Jobs(""), filter.Criteria{
		Company: company,
		TagID:   req.TagID,
		Search:  req.Search,
	})

	page, perPage := pagination.Clamp(req.Page, req.PerPage, DefaultPerPage, MaxPerPage)
	p := pagination.Paginate(matched, page, perPage)

	views := make([]types.JobView, 0, len(p.Items))
	for i := range p.Items {
		views = append(views, s.view(&p.Items[i], req.DescriptionLimit))
	}

	return &types.JobsPage{
		Jobs:       views,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}, nil
}

// GetJob returns one job by company and id.
func (s *Service) GetJob(company, id string) (*types.JobView, error) {
	c, err := parseCompany(company)
	if err != nil {
		return nil, err
	}
	job, err := s.store.Load().Get(c, id)
	if err != nil {
		return nil, err
	}
	v := s.view(&job, 0)
	return &v, nil
}

// GetSimilarJobs finds the jobs at other companies with the most similar tag
// sets. When company is empty the id is resolved across all companies in
// priority order.
func (s *Service) GetSimilarJobs(jobID, company string, maxResults int) (*types.SimilarJobs, error) {
	cat := s.store.Load()

	var target types.Job
	var err error
	if strings.TrimSpace(company) == "" {
		target, err = cat.FindByID(jobID)
	} else {
		var c types.Company
		if c, err = parseCompany(company); err != nil {
			return nil, err
		}
		target, err = cat.Get(c, jobID)
	}
	if err != nil {
		return nil, err
	}

	matches := ranking.FindSimilarTo(cat, target, maxResults)
	out := &types.SimilarJobs{
		Target:    s.view(&target, 0),
		Matches:   make([]types.SimilarJob, 0, len(matches)),
		MatchType: ranking.MatchType(matches),
	}
	for i := range matches {
		out.Matches = append(out.Matches, types.SimilarJob{
			Job:             s.view(&matches[i].Job, 0),
			SimilarityScore: matches[i].Score,
		})
	}
	return out, nil
}

// Stats returns the catalog overview for the current snapshot.
func (s *Service) Stats() *stats.Overview {
	d := s.derivedFor(s.store.Load())
	d.overviewOnce.Do(func() {
		d.overview = stats.ComputeOverview(d.cat)
	})
	return d.overview
}

// CompanyAnalysis returns per-company salary and tag analysis.
func (s *Service) CompanyAnalysis() map[types.Company]stats.CompanyAnalysis {
	d := s.derivedFor(s.store.Load())
	d.analysisOnce.Do(func() {
		d.analysis = stats.Analyze(d.cat, s.registry)
	})
	return d.analysis
}

// Competitiveness compares one company against the rest of the market.
func (s *Service) Competitiveness(company string) (*stats.Competitiveness, error) {
	c, err := parseCompany(company)
	if err != nil {
		return nil, err
	}
	return stats.Compare(s.store.Load(), s.registry, c), nil
}

// derivedFor returns the stats cache for cat, replacing a cache that belongs
// to an older snapshot.
func (s *Service) derivedFor(cat *catalog.Catalog) *derived {
	if d := s.cache.Load(); d != nil && d.cat == cat {
		return d
	}
	d := &derived{cat: cat}
	s.cache.Store(d)
	return d
}

// Reload rebuilds the catalog with the configured loader and swaps it in.
// On failure the current catalog stays in place.
func (s *Service) Reload(ctx context.Context) (*catalog.LoadSummary, error) {
	if s.loader == nil {
		return nil, ErrReloadUnavailable
	}

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	next, summary, err := s.loader(ctx)
	if err != nil {
		log.Printf("[browse] reload failed, keeping current catalog: %v", err)
		return summary, err
	}
	s.store.Swap(next)

	skipped := 0
	if summary != nil {
		skipped = len(summary.Skipped)
	}
	log.Printf("[browse] reloaded catalog: %d jobs, %d rows skipped", next.Len(), skipped)
	return summary, nil
}

func parseCompanyFilter(s string) (types.Company, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}
	return parseCompany(s)
}

func parseCompany(s string) (types.Company, error) {
	c, err := types.ParseCompany(s)
	if err != nil {
		return "", &InvalidRequestError{Field: "company", Cause: err}
	}
	return c, nil
}
