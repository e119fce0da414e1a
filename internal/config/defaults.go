package config

import (
	"github.com/jonathan/job-compare/internal/ingestion"
	"github.com/jonathan/job-compare/internal/types"
)

const (
	DefaultPort              = 5001
	DefaultTagsPath          = "augment/Tags.md"
	DefaultMaxSimilarResults = 10
	DefaultTaggerBatchSize   = 10
	DefaultTaggerInterval    = 6.0
	DefaultMaxTagsPerJob     = 2
)

// Defaults returns the built-in configuration: one tagged CSV per company
// under tagged/, with the column names each company's export uses. Rows
// without a location are listed as remote.
func Defaults() Config {
	return Config{
		TagsPath:          DefaultTagsPath,
		MaxSimilarResults: DefaultMaxSimilarResults,
		Sources:           DefaultSources(),
		Server:            ServerConfig{Port: DefaultPort},
		Tagger: TaggerConfig{
			BatchSize:       DefaultTaggerBatchSize,
			IntervalSeconds: DefaultTaggerInterval,
			MaxTagsPerJob:   DefaultMaxTagsPerJob,
		},
	}
}

// DefaultSources returns the standard per-company source layout.
func DefaultSources() []ingestion.SourceSpec {
	return []ingestion.SourceSpec{
		{
			Company: types.CompanyMercor,
			Path:    "tagged/mercor_jobs_tagged.csv",
			Columns: ingestion.ColumnMap{
				Title: "title", URL: "absolute_url", Description: "description",
				Compensation: "compensation", Location: "location", Tags: "tag_ids",
			},
			DefaultLocation: "Remote",
		},
		{
			Company: types.CompanyAfterquery,
			Path:    "tagged/afterquery_jobs_tagged.csv",
			Columns: ingestion.ColumnMap{
				Title: "Position", URL: "Detail URL", Description: "Job Description",
				Compensation: "Salary Range", Tags: "tag_ids",
			},
			DefaultLocation: "Remote",
		},
		{
			Company: types.CompanyAlignerr,
			Path:    "tagged/alignerr_jobs_tagged.csv",
			Columns: ingestion.ColumnMap{
				Title: "title", URL: "absolute_url", Description: "description_raw",
				Compensation: "salary", Location: "location", Tags: "tag_ids",
			},
			DefaultLocation:   "Remote",
			DescriptionIsHTML: true,
		},
		{
			Company: types.CompanyHandshake,
			Path:    "tagged/handshake_jobs_tagged.csv",
			Columns: ingestion.ColumnMap{
				Title: "title", URL: "url", Description: "overview",
				Compensation: "pay", Tags: "tag_ids",
			},
			DefaultLocation: "Remote",
		},
		{
			Company: types.CompanyOutlier,
			Path:    "tagged/outlier_jobs_tagged.csv",
			Columns: ingestion.ColumnMap{
				Title: "title", URL: "url", Description: "description",
				Compensation: "payment", Location: "location", Tags: "tag_ids",
			},
			DefaultLocation: "Remote",
		},
		{
			Company: types.CompanyInvisible,
			Path:    "tagged/invisible_jobs_tagged.csv",
			Columns: ingestion.ColumnMap{
				Title: "title", URL: "url", Description: "description_raw",
				Location: "location", Tags: "tag_ids",
			},
			DefaultLocation:   "Remote",
			DescriptionIsHTML: true,
		},
	}
}
