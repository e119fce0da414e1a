package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-compare/internal/catalog"
	"github.com/jonathan/job-compare/internal/types"
)

// Listing is one row of the job_listings table.
type Listing struct {
	Company      string
	JobID        string
	Title        string
	Description  string
	Location     *string
	Compensation *string
	URL          *string
	TagIDs       []int32
}

const listingsQuery = `
	SELECT company, job_id, title, description, location, compensation, url, tag_ids
	FROM job_listings
	ORDER BY company, id`

// ListListings returns every listing in insertion order per company.
func (db *DB) ListListings(ctx context.Context) ([]Listing, error) {
	rows, err := db.pool.Query(ctx, listingsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query job listings: %w", err)
	}

	listings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Listing, error) {
		var l Listing
		err := row.Scan(&l.Company, &l.JobID, &l.Title, &l.Description,
			&l.Location, &l.Compensation, &l.URL, &l.TagIDs)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan job listings: %w", err)
	}
	return listings, nil
}

// LoadSources reads every listing and groups it into per-company catalog sources.
func (db *DB) LoadSources(ctx context.Context) ([]catalog.Source, error) {
	listings, err := db.ListListings(ctx)
	if err != nil {
		return nil, err
	}
	return GroupListings(listings), nil
}

// Loader returns a catalog loader backed by the job_listings table.
func (db *DB) Loader() func(ctx context.Context) (*catalog.Catalog, *catalog.LoadSummary, error) {
	return func(ctx context.Context) (*catalog.Catalog, *catalog.LoadSummary, error) {
		sources, err := db.LoadSources(ctx)
		if err != nil {
			return nil, nil, err
		}
		return catalog.Load(sources)
	}
}

// GroupListings converts listings to catalog sources, one per company, in
// first-seen order. Rows for unknown companies are dropped.
func GroupListings(listings []Listing) []catalog.Source {
	var sources []catalog.Source
	index := make(map[types.Company]int)

	for _, l := range listings {
		company, err := types.ParseCompany(l.Company)
		if err != nil {
			log.Printf("[db] skipping listing %s: %v", l.JobID, err)
			continue
		}
		i, ok := index[company]
		if !ok {
			i = len(sources)
			index[company] = i
			sources = append(sources, catalog.Source{Company: company})
		}
		src := &sources[i]
		rec := l.toRecord()
		rec.Row = len(src.Rows) + 1
		src.Rows = append(src.Rows, rec)
	}
	return sources
}

func (l Listing) toRecord() catalog.Record {
	tags := make([]int, 0, len(l.TagIDs))
	for _, id := range l.TagIDs {
		tags = append(tags, int(id))
	}
	return catalog.Record{
		ID:           l.JobID,
		Title:        l.Title,
		Description:  l.Description,
		Location:     deref(l.Location),
		Compensation: deref(l.Compensation),
		URL:          deref(l.URL),
		Tags:         tags,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
