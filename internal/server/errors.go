package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/job-compare/internal/browse"
	"github.com/jonathan/job-compare/internal/catalog"
	"github.com/jonathan/job-compare/internal/tags"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *catalog.JobNotFoundError
		unknownTag *tags.UnknownTagError
		invalid    *browse.InvalidRequestError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &notFound), errors.As(err, &unknownTag):
		return http.StatusNotFound
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.Is(err, browse.ErrReloadUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
