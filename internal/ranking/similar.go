package ranking

import (
	"sort"

	"github.com/jonathan/job-compare/internal/catalog"
	"github.com/jonathan/job-compare/internal/types"
)

// DefaultMaxResults is used when the caller asks for zero or fewer results.
const DefaultMaxResults = 10

// Match type labels returned alongside a similarity search.
const (
	MatchExact   = "exact"
	MatchSimilar = "similar"
	MatchNone    = "none"
)

// Match is a candidate job and its similarity to the target.
type Match struct {
	Job   types.Job
	Score float64
}

// FindSimilar resolves targetID across all companies and returns the most
// similar jobs from the other companies.
func FindSimilar(cat *catalog.Catalog, targetID string, maxResults int) ([]Match, error) {
	target, err := cat.FindByID(targetID)
	if err != nil {
		return nil, err
	}
	return FindSimilarTo(cat, target, maxResults), nil
}

// FindSimilarTo ranks jobs from companies other than target's. Jobs with no
// tag overlap are dropped. Equal scores keep catalog order.
func FindSimilarTo(cat *catalog.Catalog, target types.Job, maxResults int) []Match {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	all := cat.Jobs("")
	matches := make([]Match, 0)
	for i := range all {
		candidate := &all[i]
		if candidate.Company == target.Company {
			continue
		}
		score := Jaccard(target.Tags, candidate.Tags)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Job: *candidate, Score: score})
	}

	// candidates were collected in catalog order, so a stable sort keeps
	// that order among equal scores
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// MatchType labels a result list: exact when the best match has an identical
// tag set, similar when anything matched, none otherwise.
func MatchType(matches []Match) string {
	if len(matches) == 0 {
		return MatchNone
	}
	if matches[0].Score == 1.0 {
		return MatchExact
	}
	return MatchSimilar
}
