package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-compare/internal/types"
)

func mercorSpec() SourceSpec {
	return SourceSpec{
		Company: types.CompanyMercor,
		Columns: ColumnMap{
			ID: "id", Title: "title", Description: "description", Location: "location",
			Compensation: "compensation", URL: "absolute_url", Tags: "tag_ids",
		},
	}
}

func TestReadCSV_MapsColumns(t *testing.T) {
	input := "id, title ,description,location,compensation,absolute_url,tag_ids\n" +
		`m1,Python Dev,"Build   services",NYC,$40/hr,https://x/1,"19, 7"` + "\n" +
		"m2,Tutor,Teach,Remote,,,\n"

	src, err := ReadCSV(strings.NewReader(input), mercorSpec())
	require.NoError(t, err)

	assert.Equal(t, types.CompanyMercor, src.Company)
	assert.Empty(t, src.Rejected)
	require.Len(t, src.Rows, 2)

	first := src.Rows[0]
	assert.Equal(t, "m1", first.ID)
	assert.Equal(t, "Python Dev", first.Title)
	assert.Equal(t, "Build services", first.Description)
	assert.Equal(t, "NYC", first.Location)
	assert.Equal(t, "$40/hr", first.Compensation)
	assert.Equal(t, "https://x/1", first.URL)
	assert.Equal(t, []int{19, 7}, first.Tags)
	assert.Equal(t, 1, first.Row)

	second := src.Rows[1]
	assert.Empty(t, second.Compensation)
	assert.Empty(t, second.Tags)
	assert.Equal(t, 2, second.Row)
}

func TestReadCSV_SynthesizesIDsAndDefaultLocation(t *testing.T) {
	spec := SourceSpec{
		Company:         types.CompanyAfterquery,
		Columns:         ColumnMap{Title: "Position", Description: "Job Description", Tags: "tag_ids"},
		DefaultLocation: "Remote",
	}
	input := "Position,Job Description,tag_ids\nA,desc a,1\nB,desc b,2\n"

	src, err := ReadCSV(strings.NewReader(input), spec)
	require.NoError(t, err)
	require.Len(t, src.Rows, 2)

	assert.Equal(t, "afterquery-1", src.Rows[0].ID)
	assert.Equal(t, "afterquery-2", src.Rows[1].ID)
	assert.Equal(t, "Remote", src.Rows[0].Location)
}

func TestReadCSV_RejectsBadTagIDs(t *testing.T) {
	input := "id,title,description,location,compensation,absolute_url,tag_ids\n" +
		"m1,T,D,L,,,3\n" +
		"m2,T,D,L,,,\"3, seven\"\n"

	src, err := ReadCSV(strings.NewReader(input), mercorSpec())
	require.NoError(t, err)

	require.Len(t, src.Rows, 1)
	require.Len(t, src.Rejected, 1)
	assert.Equal(t, 2, src.Rejected[0].Row)
	assert.Equal(t, "Tags", src.Rejected[0].Field)
	assert.Contains(t, src.Rejected[0].Error(), `"seven"`)
}

func TestReadCSV_HTMLDescriptions(t *testing.T) {
	spec := mercorSpec()
	spec.DescriptionIsHTML = true
	input := "id,title,description,location,compensation,absolute_url,tag_ids\n" +
		`m1,T,"<p>About the role</p><ul><li>Write code</li><li>Review</li></ul><script>x()</script>",L,,,1` + "\n"

	src, err := ReadCSV(strings.NewReader(input), spec)
	require.NoError(t, err)
	require.Len(t, src.Rows, 1)

	assert.Equal(t, "About the role\n- Write code\n- Review", src.Rows[0].Description)
}

func TestReadCSV_MissingColumnLeavesFieldEmpty(t *testing.T) {
	input := "id,title,description,location,tag_ids\nm1,T,D,L,1\n"

	src, err := ReadCSV(strings.NewReader(input), mercorSpec())
	require.NoError(t, err)
	require.Len(t, src.Rows, 1)
	assert.Empty(t, src.Rows[0].URL)
	assert.Empty(t, src.Rows[0].Compensation)
}

func TestReadCSV_ShortRows(t *testing.T) {
	input := "id,title,description,location,compensation,absolute_url,tag_ids\nm1,T\n"

	src, err := ReadCSV(strings.NewReader(input), mercorSpec())
	require.NoError(t, err)
	require.Len(t, src.Rows, 1)
	assert.Equal(t, "T", src.Rows[0].Title)
	assert.Empty(t, src.Rows[0].Description)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), mercorSpec())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestParseTagIDs(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{input: "", want: []int{}},
		{input: "7", want: []int{7}},
		{input: "7, 19", want: []int{7, 19}},
		{input: "7,,19,", want: []int{7, 19}},
		{input: "x", wantErr: true},
		{input: "3,0", wantErr: true},
		{input: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTagIDs(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
