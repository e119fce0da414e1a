package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-compare/internal/ingestion"
	"github.com/jonathan/job-compare/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))
	return tmpFile
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"database_url": "postgres://localhost/jobs",
		"max_similar_results": 5,
		"verbose": true,
		"server": {"port": 8080, "allowed_origins": ["http://localhost:3000"]},
		"sources": [{
			"company": "outlier",
			"path": "data/outlier.csv",
			"columns": {"title": "title", "description": "description", "tag_ids": "tag_ids"}
		}]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres://localhost/jobs", cfg.DatabaseURL)
	assert.Equal(t, 5, cfg.MaxSimilarResults)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 8080, cfg.Server.Port)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, types.CompanyOutlier, cfg.Sources[0].Company)
	assert.Equal(t, "description", cfg.Sources[0].Columns.Description)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"sources": [{"company": "acme", "path": "x.csv", "columns": {"title": "t", "description": "d", "tag_ids": "x"}}]}`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config does not match schema")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func validSource() ingestion.SourceSpec {
	return ingestion.SourceSpec{
		Company: types.CompanyMercor,
		Path:    "m.csv",
		Columns: ingestion.ColumnMap{Title: "title", Description: "description", Tags: "tag_ids"},
	}
}

func TestValidate(t *testing.T) {
	dup := validSource()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{Sources: []ingestion.SourceSpec{validSource()}}},
		{name: "negative results", cfg: Config{MaxSimilarResults: -1}, wantErr: "max_similar_results"},
		{name: "bad port", cfg: Config{Server: ServerConfig{Port: 70000}}, wantErr: "server.port"},
		{name: "negative batch", cfg: Config{Tagger: TaggerConfig{BatchSize: -2}}, wantErr: "tagger.batch_size"},
		{name: "negative interval", cfg: Config{Tagger: TaggerConfig{IntervalSeconds: -1}}, wantErr: "tagger.interval_seconds"},
		{name: "unknown company", cfg: Config{Sources: []ingestion.SourceSpec{{Company: "acme", Path: "x"}}}, wantErr: "unknown company"},
		{name: "duplicate company", cfg: Config{Sources: []ingestion.SourceSpec{validSource(), dup}}, wantErr: "duplicate company"},
		{name: "missing path", cfg: Config{Sources: []ingestion.SourceSpec{{Company: types.CompanyMercor, Columns: validSource().Columns}}}, wantErr: "'path' is required"},
		{name: "missing columns", cfg: Config{Sources: []ingestion.SourceSpec{{Company: types.CompanyMercor, Path: "x"}}}, wantErr: "columns"},
		{name: "missing tags file", cfg: Config{TagsPath: "/nonexistent/Tags.md"}, wantErr: "tags file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()
	cfg.TagsPath = "" // the default tags file is resolved at load time

	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Sources, len(types.Companies()))
	for _, src := range cfg.Sources {
		assert.Equal(t, "Remote", src.DefaultLocation, src.Company)
		assert.Empty(t, src.Columns.ID, "ids are synthesized for %s", src.Company)
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://custom",
		Server:      ServerConfig{Port: 9000},
	}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "postgres://custom", merged.DatabaseURL)
	assert.Equal(t, 9000, merged.Server.Port)
	assert.Equal(t, DefaultTagsPath, merged.TagsPath)
	assert.Equal(t, DefaultMaxSimilarResults, merged.MaxSimilarResults)
	assert.Equal(t, DefaultTaggerBatchSize, merged.Tagger.BatchSize)
	assert.Equal(t, DefaultTaggerInterval, merged.Tagger.IntervalSeconds)
	assert.Len(t, merged.Sources, 6)

	// receiver is not modified
	assert.Empty(t, cfg.TagsPath)
	assert.Empty(t, cfg.Sources)
}

func TestMergeWithDefaults_ConfiguredSourcesReplaceDefaults(t *testing.T) {
	cfg := &Config{Sources: []ingestion.SourceSpec{validSource()}}

	merged := cfg.MergeWithDefaults(Defaults())
	require.Len(t, merged.Sources, 1)
	assert.Equal(t, "m.csv", merged.Sources[0].Path)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{TagsPath: "tags.yaml"}

	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, "tags.yaml", merged.TagsPath)
	assert.Empty(t, merged.Sources)
	assert.Zero(t, merged.Server.Port)
}
