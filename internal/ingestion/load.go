package ingestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-compare/internal/catalog"
)

// Result is the outcome of reading every configured source.
type Result struct {
	Sources  []catalog.Source
	Metadata []*SourceMetadata
	Failed   []*SourceError
}

// ReadFile reads one source file.
func ReadFile(spec SourceSpec) (*catalog.Source, *SourceMetadata, error) {
	if !spec.Company.Valid() {
		return nil, nil, &SourceError{Company: spec.Company, Path: spec.Path, Message: "unknown company"}
	}

	content, err := os.ReadFile(spec.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, &SourceError{Company: spec.Company, Path: spec.Path, Message: "file not found", Cause: err}
		}
		return nil, nil, &SourceError{Company: spec.Company, Path: spec.Path, Message: "failed to read file", Cause: err}
	}

	src, err := ReadCSV(bytes.NewReader(content), spec)
	if err != nil {
		return nil, nil, &SourceError{Company: spec.Company, Path: spec.Path, Message: "invalid CSV", Cause: err}
	}

	meta := newSourceMetadata(spec, content)
	meta.Rows = len(src.Rows)
	meta.Rejected = len(src.Rejected)
	return src, meta, nil
}

// ReadAll reads every source concurrently. A source that fails is logged and
// left out; the others still load. Results keep the order of specs.
func ReadAll(ctx context.Context, specs []SourceSpec) (*Result, error) {
	sources := make([]*catalog.Source, len(specs))
	metas := make([]*SourceMetadata, len(specs))
	failures := make([]*SourceError, len(specs))

	g, gCtx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			src, meta, err := ReadFile(spec)
			if err != nil {
				var se *SourceError
				if !errors.As(err, &se) {
					se = &SourceError{Company: spec.Company, Path: spec.Path, Message: "read failed", Cause: err}
				}
				failures[i] = se
				return nil
			}
			sources[i] = src
			metas[i] = meta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reading sources: %w", err)
	}

	res := &Result{}
	for i := range specs {
		if failures[i] != nil {
			log.Printf("[ingestion] skipping source: %v", failures[i])
			res.Failed = append(res.Failed, failures[i])
			continue
		}
		res.Sources = append(res.Sources, *sources[i])
		res.Metadata = append(res.Metadata, metas[i])
	}
	return res, nil
}

// Build reads every source and loads the result into a catalog.
func Build(ctx context.Context, specs []SourceSpec) (*catalog.Catalog, *catalog.LoadSummary, error) {
	res, err := ReadAll(ctx, specs)
	if err != nil {
		return nil, nil, err
	}
	for _, m := range res.Metadata {
		log.Printf("[ingestion] %s: %d rows read, %d rejected (sha256 %.12s)", m.Company, m.Rows, m.Rejected, m.Hash)
	}
	return catalog.Load(res.Sources)
}

// NewLoader returns a loader that rebuilds the catalog from specs on every call.
func NewLoader(specs []SourceSpec) func(ctx context.Context) (*catalog.Catalog, *catalog.LoadSummary, error) {
	return func(ctx context.Context) (*catalog.Catalog, *catalog.LoadSummary, error) {
		return Build(ctx, specs)
	}
}
