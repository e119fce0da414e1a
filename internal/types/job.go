// Package types provides type definitions for structured data used throughout the job-compare system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"
	"sort"
)

// Job is a single listing loaded into the catalog. Jobs are immutable once loaded.
type Job struct {
	ID           string  `json:"id"`
	Company      Company `json:"company"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Compensation *string `json:"compensation,omitempty"`
	URL          *string `json:"url,omitempty"`
	// Tags holds tag ids sorted ascending with no duplicates.
	Tags []int `json:"tags"`
}

// HasTag reports whether the job carries the given tag id.
func (j *Job) HasTag(id int) bool {
	_, found := slices.BinarySearch(j.Tags, id)
	return found
}

// NormalizeTagSet returns a sorted copy of ids with duplicates removed.
// The result is never nil.
func NormalizeTagSet(ids []int) []int {
	out := make([]int, 0, len(ids))
	out = append(out, ids...)
	sort.Ints(out)
	return slices.Compact(out)
}
