// Package filter narrows a job list by company, tag and free-text search.
package filter

import (
	"strings"

	"github.com/jonathan/job-compare/internal/types"
)

// Criteria holds the optional filters. Zero values disable a filter.
type Criteria struct {
	Company types.Company
	TagID   int // tag ids are positive, so 0 means no tag filter
	Search  string
}

// IsEmpty reports whether no filter is active.
func (c Criteria) IsEmpty() bool {
	return c.Company == "" && c.TagID == 0 && strings.TrimSpace(c.Search) == ""
}

// Apply returns the jobs matching every active criterion, in input order.
// The input slice is never modified.
func Apply(jobs []types.Job, c Criteria) []types.Job {
	needle := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]types.Job, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if c.Company != "" && job.Company != c.Company {
			continue
		}
		if c.TagID != 0 && !job.HasTag(c.TagID) {
			continue
		}
		if needle != "" && !matchesText(job, needle) {
			continue
		}
		out = append(out, *job)
	}
	return out
}

func matchesText(job *types.Job, needle string) bool {
	return strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.Description), needle)
}
