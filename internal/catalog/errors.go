// Package catalog provides the immutable in-memory collection of job listings.
package catalog

import (
	"errors"
	"fmt"

	"github.com/jonathan/job-compare/internal/types"
)

// ErrNoData is returned when no source produced a single loadable job.
var ErrNoData = errors.New("no job data could be loaded")

// MalformedRecordError describes a source row rejected during load.
type MalformedRecordError struct {
	Company types.Company
	Row     int // 1-based position within the source
	Field   string
	Message string
	Cause   error
}

func (e *MalformedRecordError) Error() string {
	msg := fmt.Sprintf("malformed record: %s row %d", e.Company, e.Row)
	if e.Field != "" {
		msg += fmt.Sprintf(" field %s", e.Field)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Cause
}

// JobNotFoundError indicates a lookup for a job that is not in the catalog.
type JobNotFoundError struct {
	Company types.Company // empty for global lookups
	ID      string
}

func (e *JobNotFoundError) Error() string {
	if e.Company != "" {
		return fmt.Sprintf("job not found: %s/%s", e.Company, e.ID)
	}
	return fmt.Sprintf("job not found: %s", e.ID)
}
