package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/job-compare/internal/schemas"
)

func TestAllSchemaFiles_ValidJSONSchema(t *testing.T) {
	files, err := filepath.Glob("*.schema.json")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, schemaFile := range files {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err)

			var v interface{}
			require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")

			_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err, "schema should compile")
		})
	}
}

func TestConfigSchema_AcceptsFullConfig(t *testing.T) {
	doc := `{
		"tags_path": "augment/Tags.md",
		"max_similar_results": 10,
		"server": {"port": 5001, "allowed_origins": ["http://localhost:3000"]},
		"tagger": {"batch_size": 10, "interval_seconds": 6},
		"sources": [{
			"company": "afterquery",
			"path": "tagged/afterquery_jobs_tagged.csv",
			"default_location": "Remote",
			"columns": {"title": "Position", "description": "Job Description", "url": "Detail URL", "tag_ids": "tag_ids"}
		}]
	}`
	assert.NoError(t, schemas.ValidateJSONString(Config, doc))
}

func TestConfigSchema_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown field", doc: `{"unknown": true}`},
		{name: "unknown company", doc: `{"sources": [{"company": "acme", "path": "x.csv", "columns": {"title": "t", "description": "d", "tag_ids": "tags"}}]}`},
		{name: "missing columns", doc: `{"sources": [{"company": "mercor", "path": "x.csv"}]}`},
		{name: "port out of range", doc: `{"server": {"port": 70000}}`},
		{name: "negative results", doc: `{"max_similar_results": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateJSONString(Config, tt.doc)
			var ve *schemas.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}
