// Package types provides type definitions for structured data used throughout the job-compare system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobView is a Job prepared for display, with tag ids resolved to names.
type JobView struct {
	ID           string   `json:"id"`
	Company      Company  `json:"company"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Compensation *string  `json:"compensation,omitempty"`
	URL          *string  `json:"url,omitempty"`
	SalaryAvg    *float64 `json:"salary_avg,omitempty"`
	TagIDs       []int    `json:"tag_ids"`
	TagNames     []string `json:"tag_names"`
}

// SimilarJob is one ranked match in a similar-jobs response.
type SimilarJob struct {
	Job JobView `json:"job"`
	// SimilarityScore is the Jaccard index in [0,1].
	SimilarityScore float64 `json:"similarity_score"`
}

// SimilarJobs is the response for a similar-jobs query.
type SimilarJobs struct {
	Target    JobView      `json:"target"`
	Matches   []SimilarJob `json:"matches"`
	MatchType string       `json:"match_type"`
}

// JobsPage is one page of a filtered job listing.
type JobsPage struct {
	Jobs       []JobView `json:"jobs"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalItems int       `json:"total_items"`
	TotalPages int       `json:"total_pages"`
}
