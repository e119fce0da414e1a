// Package ingestion reads per-company job tables into catalog sources.
package ingestion

import (
	"fmt"

	"github.com/jonathan/job-compare/internal/types"
)

// ColumnMap names the CSV header for each record field. An empty name means
// the source has no such column.
type ColumnMap struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location,omitempty"`
	Compensation string `json:"compensation,omitempty"`
	URL          string `json:"url,omitempty"`
	Tags         string `json:"tag_ids"`
}

// SourceSpec describes one company's CSV file.
type SourceSpec struct {
	Company types.Company `json:"company"`
	Path    string        `json:"path"`
	Columns ColumnMap     `json:"columns"`
	// DefaultLocation fills rows with no location value.
	DefaultLocation string `json:"default_location,omitempty"`
	// DescriptionIsHTML strips markup from descriptions.
	DescriptionIsHTML bool `json:"description_is_html,omitempty"`
}

// SourceError reports a source that could not be read at all.
type SourceError struct {
	Company types.Company
	Path    string
	Message string
	Cause   error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source %s (%s): %s: %v", e.Company, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("source %s (%s): %s", e.Company, e.Path, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}
