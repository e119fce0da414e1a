package catalog

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-compare/internal/types"
)

// Record is one already-parsed source row. Required fields must be non-blank;
// Compensation and URL are optional and an empty value means absent.
type Record struct {
	ID           string `validate:"required"`
	Title        string `validate:"required"`
	Description  string `validate:"required"`
	Location     string `validate:"required"`
	Compensation string
	URL          string
	Tags         []int `validate:"dive,gt=0"`
	// Row is the 1-based row in the source file, when it differs from the
	// position in Source.Rows. Zero means use the slice position.
	Row int
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRecord checks r and returns the first failing field, if any.
func validateRecord(r *Record) (field string, err error) {
	trimmed := Record{
		ID:          strings.TrimSpace(r.ID),
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		Location:    strings.TrimSpace(r.Location),
		Tags:        r.Tags,
	}
	if err := validate.Struct(&trimmed); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return verrs[0].Field(), err
		}
		return "", err
	}
	return "", nil
}

// toJob converts a validated record into a Job.
func (r *Record) toJob(company types.Company) types.Job {
	return types.Job{
		ID:           strings.TrimSpace(r.ID),
		Company:      company,
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		Location:     strings.TrimSpace(r.Location),
		Compensation: optional(r.Compensation),
		URL:          optional(r.URL),
		Tags:         types.NormalizeTagSet(r.Tags),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
