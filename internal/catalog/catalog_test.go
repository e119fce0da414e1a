package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-compare/internal/types"
)

func validRow(id string, tags ...int) Record {
	return Record{
		ID:          id,
		Title:       "Title " + id,
		Description: "Description for " + id,
		Location:    "Remote",
		Tags:        tags,
	}
}

func TestLoad_SkipsMalformedRow(t *testing.T) {
	rows := make([]Record, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, validRow(fmt.Sprintf("m-%d", i), 7))
	}
	rows[4].ID = "" // one bad row among ten

	cat, summary, err := Load([]Source{{Company: types.CompanyMercor, Rows: rows}})
	require.NoError(t, err)

	assert.Len(t, cat.Jobs(types.CompanyMercor), 9)
	assert.Equal(t, 9, summary.Loaded[types.CompanyMercor])
	require.Len(t, summary.Skipped, 1)
	assert.Equal(t, 5, summary.Skipped[0].Row)
	assert.Equal(t, "ID", summary.Skipped[0].Field)
	assert.Equal(t, types.CompanyMercor, summary.Skipped[0].Company)
}

func TestLoad_MalformedFields(t *testing.T) {
	tests := []struct {
		name  string
		row   Record
		field string
	}{
		{name: "blank title", row: Record{ID: "1", Title: "  ", Description: "d", Location: "l"}, field: "Title"},
		{name: "missing description", row: Record{ID: "1", Title: "t", Location: "l"}, field: "Description"},
		{name: "missing location", row: Record{ID: "1", Title: "t", Description: "d"}, field: "Location"},
		{name: "non-positive tag", row: Record{ID: "1", Title: "t", Description: "d", Location: "l", Tags: []int{3, 0}}, field: "Tags[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, summary, err := Load([]Source{
				{Company: types.CompanyOutlier, Rows: []Record{tt.row, validRow("ok")}},
			})
			require.NoError(t, err)
			require.Len(t, summary.Skipped, 1)
			assert.Equal(t, tt.field, summary.Skipped[0].Field)
			assert.Contains(t, summary.Skipped[0].Error(), "outlier row 1")
		})
	}
}

func TestLoad_DuplicateIDWithinCompany(t *testing.T) {
	cat, summary, err := Load([]Source{
		{Company: types.CompanyAlignerr, Rows: []Record{validRow("a"), validRow("a"), validRow("b")}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())
	require.Len(t, summary.Skipped, 1)
	assert.Contains(t, summary.Skipped[0].Error(), `duplicate id "a"`)
}

func TestLoad_NoData(t *testing.T) {
	_, summary, err := Load([]Source{{Company: types.CompanyMercor, Rows: []Record{{ID: "x"}}}})
	assert.ErrorIs(t, err, ErrNoData)
	assert.Len(t, summary.Skipped, 1)

	_, _, err = Load(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLoad_UnknownCompany(t *testing.T) {
	_, _, err := Load([]Source{{Company: "acme", Rows: []Record{validRow("1")}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown company")
}

func TestLoad_PriorityOrder(t *testing.T) {
	cat, _, err := Load([]Source{
		{Company: types.CompanyOutlier, Rows: []Record{validRow("o1"), validRow("o2")}},
		{Company: types.CompanyMercor, Rows: []Record{validRow("m1")}},
		{Company: types.CompanyHandshake, Rows: []Record{validRow("h1")}},
	})
	require.NoError(t, err)

	var got []string
	for _, j := range cat.Jobs("") {
		got = append(got, j.ID)
	}
	assert.Equal(t, []string{"m1", "h1", "o1", "o2"}, got)
	assert.Equal(t, []types.Company{types.CompanyMercor, types.CompanyHandshake, types.CompanyOutlier}, cat.Companies())

	pos, ok := cat.Index(types.CompanyOutlier, "o2")
	require.True(t, ok)
	assert.Equal(t, 3, pos)
}

func TestLoad_NormalizesRecord(t *testing.T) {
	row := validRow(" m1 ", 19, 11, 19)
	row.Compensation = "  $40/hr "
	row.URL = "   "

	cat, _, err := Load([]Source{{Company: types.CompanyMercor, Rows: []Record{row}}})
	require.NoError(t, err)

	job, err := cat.Get(types.CompanyMercor, "m1")
	require.NoError(t, err)
	assert.Equal(t, []int{11, 19}, job.Tags)
	require.NotNil(t, job.Compensation)
	assert.Equal(t, "$40/hr", *job.Compensation)
	assert.Nil(t, job.URL)
	assert.Equal(t, types.CompanyMercor, job.Company)
}

func TestLoad_EmptyTagsAllowed(t *testing.T) {
	cat, summary, err := Load([]Source{{Company: types.CompanyMercor, Rows: []Record{validRow("m1")}}})
	require.NoError(t, err)
	assert.Empty(t, summary.Skipped)

	job, err := cat.Get(types.CompanyMercor, "m1")
	require.NoError(t, err)
	assert.Empty(t, job.Tags)
}

func TestCatalog_Get(t *testing.T) {
	cat, _, err := Load([]Source{{Company: types.CompanyMercor, Rows: []Record{validRow("m1")}}})
	require.NoError(t, err)

	_, err = cat.Get(types.CompanyOutlier, "m1")
	var notFound *JobNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "job not found: outlier/m1", err.Error())
}

func TestCatalog_FindByID_CompanyPriority(t *testing.T) {
	shared := validRow("shared", 1)
	cat, _, err := Load([]Source{
		{Company: types.CompanyOutlier, Rows: []Record{shared}},
		{Company: types.CompanyMercor, Rows: []Record{shared}},
	})
	require.NoError(t, err)

	job, err := cat.FindByID("shared")
	require.NoError(t, err)
	assert.Equal(t, types.CompanyMercor, job.Company)

	_, err = cat.FindByID("nonexistent-id")
	var notFound *JobNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "job not found: nonexistent-id", err.Error())
}

func TestCatalog_JobsSlicesAreCapped(t *testing.T) {
	cat, _, err := Load([]Source{
		{Company: types.CompanyMercor, Rows: []Record{validRow("m1")}},
		{Company: types.CompanyOutlier, Rows: []Record{validRow("o1")}},
	})
	require.NoError(t, err)

	mercor := cat.Jobs(types.CompanyMercor)
	_ = append(mercor, types.Job{ID: "intruder"})

	job, err := cat.Get(types.CompanyOutlier, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", job.ID)
	assert.Nil(t, cat.Jobs(types.CompanyHandshake))
}

func TestStore_Swap(t *testing.T) {
	first, _, err := Load([]Source{{Company: types.CompanyMercor, Rows: []Record{validRow("m1")}}})
	require.NoError(t, err)
	second, _, err := Load([]Source{{Company: types.CompanyMercor, Rows: []Record{validRow("m1"), validRow("m2")}}})
	require.NoError(t, err)

	store := NewStore(first)
	snapshot := store.Load()

	prev := store.Swap(second)
	assert.Same(t, first, prev)
	assert.Equal(t, 2, store.Load().Len())
	// A snapshot taken before the swap keeps seeing the old catalog
	assert.Equal(t, 1, snapshot.Len())
}

func TestLoad_RejectedRowsAndSourceRowNumbers(t *testing.T) {
	bad := Record{ID: "b", Title: "t", Description: "d", Row: 7}
	cat, summary, err := Load([]Source{{
		Company:  types.CompanyHandshake,
		Rows:     []Record{validRow("a"), bad},
		Rejected: []*MalformedRecordError{{Company: types.CompanyHandshake, Row: 3, Field: "Tags", Message: "bad tag id"}},
	}})
	require.NoError(t, err)

	assert.Equal(t, 1, cat.Len())
	require.Len(t, summary.Skipped, 2)
	assert.Equal(t, 3, summary.Skipped[0].Row)
	assert.Equal(t, "Tags", summary.Skipped[0].Field)
	assert.Equal(t, 7, summary.Skipped[1].Row)
	assert.Equal(t, "Location", summary.Skipped[1].Field)
}
