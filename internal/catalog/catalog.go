package catalog

import (
	"fmt"
	"log"
	"sort"

	"github.com/jonathan/job-compare/internal/types"
)

// Source is the set of rows for one company. Rejected holds rows the reader
// could not turn into a Record; they are reported with the load summary.
type Source struct {
	Company  types.Company
	Rows     []Record
	Rejected []*MalformedRecordError
}

// LoadSummary reports what a Load kept and what it skipped.
type LoadSummary struct {
	Loaded  map[types.Company]int
	Skipped []*MalformedRecordError
}

// Total returns the number of jobs loaded across all companies.
func (s *LoadSummary) Total() int {
	n := 0
	for _, c := range s.Loaded {
		n += c
	}
	return n
}

// Catalog is the read-only collection of jobs. It is safe for concurrent use.
type Catalog struct {
	all       []types.Job // company priority order, then row order
	byCompany map[types.Company][]types.Job
	index     map[types.Company]map[string]int // id -> position in all
	companies []types.Company
}

// Load builds a catalog from per-company sources. Bad rows are skipped and
// reported in the summary; ErrNoData is returned only if nothing loaded.
func Load(sources []Source) (*Catalog, *LoadSummary, error) {
	summary := &LoadSummary{Loaded: make(map[types.Company]int)}

	ordered := make([]Source, 0, len(sources))
	for _, src := range sources {
		if !src.Company.Valid() {
			return nil, summary, fmt.Errorf("unknown company in source: %q", src.Company)
		}
		ordered = append(ordered, src)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Company.Priority() < ordered[j].Company.Priority()
	})

	c := &Catalog{
		byCompany: make(map[types.Company][]types.Job),
		index:     make(map[types.Company]map[string]int),
	}

	for _, src := range ordered {
		ids := c.index[src.Company]
		if ids == nil {
			ids = make(map[string]int)
			c.index[src.Company] = ids
		}

		for _, rejected := range src.Rejected {
			c.skip(summary, rejected)
		}

		for i := range src.Rows {
			rec := &src.Rows[i]
			row := i + 1
			if rec.Row > 0 {
				row = rec.Row
			}
			if field, err := validateRecord(rec); err != nil {
				c.skip(summary, &MalformedRecordError{
					Company: src.Company, Row: row, Field: field,
					Message: "validation failed", Cause: err,
				})
				continue
			}

			job := rec.toJob(src.Company)
			if _, dup := ids[job.ID]; dup {
				c.skip(summary, &MalformedRecordError{
					Company: src.Company, Row: row, Field: "ID",
					Message: fmt.Sprintf("duplicate id %q", job.ID),
				})
				continue
			}

			ids[job.ID] = len(c.all)
			c.all = append(c.all, job)
			summary.Loaded[src.Company]++
		}
	}

	// Company slices share the flattened backing array, each capped so an
	// append by a caller can never overwrite the next company.
	start := 0
	for _, company := range types.Companies() {
		n := summary.Loaded[company]
		if n == 0 {
			continue
		}
		c.byCompany[company] = c.all[start : start+n : start+n]
		c.companies = append(c.companies, company)
		start += n
	}

	if len(c.all) == 0 {
		return nil, summary, ErrNoData
	}
	return c, summary, nil
}

func (c *Catalog) skip(summary *LoadSummary, err *MalformedRecordError) {
	log.Printf("[catalog] skipping row: %v", err)
	summary.Skipped = append(summary.Skipped, err)
}

// Get returns the job with the given id from one company.
func (c *Catalog) Get(company types.Company, id string) (types.Job, error) {
	pos, ok := c.index[company][id]
	if !ok {
		return types.Job{}, &JobNotFoundError{Company: company, ID: id}
	}
	return c.all[pos], nil
}

// FindByID looks an id up across all companies. When more than one company
// uses the same id the first company in priority order wins.
func (c *Catalog) FindByID(id string) (types.Job, error) {
	for _, company := range c.companies {
		if pos, ok := c.index[company][id]; ok {
			return c.all[pos], nil
		}
	}
	return types.Job{}, &JobNotFoundError{ID: id}
}

// Jobs returns one company's jobs in load order, or every job when company
// is empty. Callers must not modify the returned slice.
func (c *Catalog) Jobs(company types.Company) []types.Job {
	if company == "" {
		return c.all[:len(c.all):len(c.all)]
	}
	return c.byCompany[company]
}

// Index returns the position of a job in the cross-company order.
func (c *Catalog) Index(company types.Company, id string) (int, bool) {
	pos, ok := c.index[company][id]
	return pos, ok
}

// Companies returns the companies that have at least one job, in priority order.
func (c *Catalog) Companies() []types.Company {
	out := make([]types.Company, len(c.companies))
	copy(out, c.companies)
	return out
}

// Len returns the total number of jobs.
func (c *Catalog) Len() int {
	return len(c.all)
}
