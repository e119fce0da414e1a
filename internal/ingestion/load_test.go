package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-compare/internal/types"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func simpleSpec(company types.Company, path string) SourceSpec {
	return SourceSpec{
		Company: company,
		Path:    path,
		Columns: ColumnMap{ID: "id", Title: "title", Description: "description", Location: "location", Tags: "tag_ids"},
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "m.csv", "id,title,description,location,tag_ids\nm1,T,D,L,1\nm2,T,D,L,x\n")

	src, meta, err := ReadFile(simpleSpec(types.CompanyMercor, path))
	require.NoError(t, err)

	assert.Len(t, src.Rows, 1)
	assert.Equal(t, 1, meta.Rows)
	assert.Equal(t, 1, meta.Rejected)
	assert.Len(t, meta.Hash, 64)
	assert.Equal(t, path, meta.Path)
}

func TestReadFile_Errors(t *testing.T) {
	_, _, err := ReadFile(simpleSpec(types.CompanyMercor, filepath.Join(t.TempDir(), "missing.csv")))
	var se *SourceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "file not found", se.Message)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, _, err = ReadFile(simpleSpec("acme", "x.csv"))
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "unknown company", se.Message)
}

func TestBuild_SkipsFailedSources(t *testing.T) {
	dir := t.TempDir()
	outlier := writeCSV(t, dir, "o.csv", "id,title,description,location,tag_ids\no1,T,D,L,1\n")
	mercor := writeCSV(t, dir, "m.csv", "id,title,description,location,tag_ids\nm1,T,D,L,1\nm2,T,D,L,2\n")

	specs := []SourceSpec{
		simpleSpec(types.CompanyOutlier, outlier),
		simpleSpec(types.CompanyHandshake, filepath.Join(dir, "missing.csv")),
		simpleSpec(types.CompanyMercor, mercor),
	}

	res, err := ReadAll(context.Background(), specs)
	require.NoError(t, err)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, types.CompanyHandshake, res.Failed[0].Company)
	require.Len(t, res.Sources, 2)
	assert.Equal(t, types.CompanyOutlier, res.Sources[0].Company)

	cat, summary, err := NewLoader(specs)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, 3, summary.Total())
	// catalog order follows company priority, not input order
	assert.Equal(t, "m1", cat.Jobs("")[0].ID)
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Build(ctx, []SourceSpec{simpleSpec(types.CompanyMercor, "x.csv")})
	assert.ErrorIs(t, err, context.Canceled)
}
