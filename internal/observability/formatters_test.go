package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-compare/internal/catalog"
	"github.com/jonathan/job-compare/internal/stats"
	"github.com/jonathan/job-compare/internal/types"
)

func ptr[T any](v T) *T { return &v }

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 200))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintLoadSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skipped := make([]*catalog.MalformedRecordError, 0, 7)
	for i := 1; i <= 7; i++ {
		skipped = append(skipped, &catalog.MalformedRecordError{Company: types.CompanyOutlier, Row: i, Field: "Title", Message: "required"})
	}
	p.PrintLoadSummary(&catalog.LoadSummary{
		Loaded:  map[types.Company]int{types.CompanyOutlier: 3, types.CompanyMercor: 9},
		Skipped: skipped,
	})
	output := buf.String()

	assert.Contains(t, output, "CATALOG LOADED")
	assert.Less(t, strings.Index(output, "mercor"), strings.Index(output, "outlier"))
	assert.Contains(t, output, "12 jobs")
	assert.Contains(t, output, "Skipped rows: 7")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintLoadSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintLoadSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintTags(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTags([]types.Tag{{ID: 1, Name: "Math & Stats"}, {ID: 28, Name: "None"}})
	assert.Equal(t, "  1. Math & Stats\n 28. None\n", buf.String())
}

func TestPrintJobsPage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobsPage(&types.JobsPage{
		Jobs: []types.JobView{{
			ID: "42", Company: types.CompanyMercor, Title: "Data Annotator",
			Location: "Remote", Compensation: ptr("$40/hr"), TagNames: []string{"Finance"},
		}},
		Page: 2, PerPage: 1, TotalItems: 3, TotalPages: 3,
	})
	output := buf.String()

	assert.Contains(t, output, "page 2/3")
	assert.Contains(t, output, "[mercor] Data Annotator  (42)")
	assert.Contains(t, output, "$40/hr")
	assert.Contains(t, output, "Tags: Finance")
}

func TestPrintJobsPage_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobsPage(&types.JobsPage{Jobs: []types.JobView{}, Page: 1, TotalPages: 1})
	assert.Contains(t, buf.String(), "No jobs match.")
}

func TestPrintSimilarJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSimilarJobs(&types.SimilarJobs{
		Target:    types.JobView{ID: "M1", Company: types.CompanyMercor, Title: "Quant", TagNames: []string{"Finance"}},
		MatchType: "similar",
		Matches: []types.SimilarJob{
			{Job: types.JobView{ID: "O1", Company: types.CompanyOutlier, Title: "Analyst"}, SimilarityScore: 0.5},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "SIMILAR JOBS")
	assert.Contains(t, output, "Target: [mercor] Quant (M1)")
	assert.Contains(t, output, "Match:  similar")
	assert.Contains(t, output, "0.50  [outlier] Analyst (O1)")
}

func TestPrintOverview(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOverview(&stats.Overview{
		TotalJobs: 4,
		Companies: map[types.Company]stats.CompanyOverview{
			types.CompanyOutlier: {TotalJobs: 1},
			types.CompanyMercor: {
				TotalJobs: 3, AvgSalary: ptr(50.0),
				SalaryRange: stats.Bounds{Min: ptr(40.0), Max: ptr(60.0)},
			},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "Total jobs: 4")
	assert.Contains(t, output, "avg $50.00  range $40.00 - $60.00")
	assert.Contains(t, output, "avg n/a")
	assert.Less(t, strings.Index(output, "mercor"), strings.Index(output, "outlier"))
}

func TestPrintCompanyAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompanyAnalysis(map[types.Company]stats.CompanyAnalysis{
		types.CompanyHandshake: {
			TotalJobs: 2,
			TopTags:   []stats.TagCount{{TagID: 7, Name: "Coding", Count: 2}},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "handshake (2 jobs)")
	assert.Contains(t, output, "Coding (2)")
}

func TestPrintCompetitiveness(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompetitiveness(&stats.Competitiveness{
		Company:     types.CompanyMercor,
		MarketShare: stats.MarketShare{FocalJobs: 1, TotalJobs: 4, Percentage: 25},
		TagAnalysis: stats.TagAnalysis{OverlapTags: []string{"Finance"}, UniqueFocalTags: []string{"Law"}},
	})
	output := buf.String()

	assert.Contains(t, output, "MERCOR COMPETITIVENESS")
	assert.Contains(t, output, "1 of 4 jobs (25.0%)")
	assert.Contains(t, output, "Shared tags:      1")
}

func TestPrinters_NilInputs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobsPage(nil)
	p.PrintSimilarJobs(nil)
	p.PrintOverview(nil)
	p.PrintCompanyAnalysis(nil)
	p.PrintCompetitiveness(nil)

	assert.Empty(t, buf.String())
}
