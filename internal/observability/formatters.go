// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/job-compare/internal/catalog"
	"github.com/jonathan/job-compare/internal/stats"
	"github.com/jonathan/job-compare/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(clip(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// clip shortens s to width runes, marking the cut with "...".
func clip(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-3]) + "..."
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func money(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("$%.2f", *v)
}

// PrintLoadSummary outputs per-company load counts and the first skipped rows.
func (p *Printer) PrintLoadSummary(summary *catalog.LoadSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	for _, c := range types.Companies() {
		if n, ok := summary.Loaded[c]; ok {
			sb.WriteString(fmt.Sprintf("%-12s %5d jobs\n", c, n))
		}
	}
	sb.WriteString(fmt.Sprintf("%-12s %5d jobs\n", "total", summary.Total()))

	if len(summary.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped rows: %d\n", len(summary.Skipped)))
		count := min(len(summary.Skipped), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.Skipped[i].Error()))
		}
		if len(summary.Skipped) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Skipped)-maxItemsToShow))
		}
	}

	p.printBox("CATALOG LOADED", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTags outputs the tag registry as a numbered list.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTags(list []types.Tag) {
	for _, t := range list {
		fmt.Fprintf(p.out, "%3d. %s\n", t.ID, t.Name)
	}
}

// PrintJobsPage outputs one page of listings.
func (p *Printer) PrintJobsPage(page *types.JobsPage) {
	if page == nil {
		return
	}

	var sb strings.Builder
	if len(page.Jobs) == 0 {
		sb.WriteString("No jobs match.\n")
	}
	for i, j := range page.Jobs {
		sb.WriteString(fmt.Sprintf("[%s] %s  (%s)\n", j.Company, j.Title, j.ID))
		sb.WriteString(fmt.Sprintf("    %s", j.Location))
		if j.Compensation != nil {
			sb.WriteString(fmt.Sprintf(" · %s", *j.Compensation))
		}
		sb.WriteString("\n")
		if len(j.TagNames) > 0 {
			sb.WriteString(fmt.Sprintf("    Tags: %s\n", strings.Join(j.TagNames, ", ")))
		}
		if i < len(page.Jobs)-1 {
			sb.WriteString("\n")
		}
	}

	title := fmt.Sprintf("JOBS  page %d/%d  (%d total)", page.Page, page.TotalPages, page.TotalItems)
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSimilarJobs outputs the target job and its ranked matches.
func (p *Printer) PrintSimilarJobs(result *types.SimilarJobs) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target: [%s] %s (%s)\n", result.Target.Company, result.Target.Title, result.Target.ID))
	if len(result.Target.TagNames) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:   %s\n", strings.Join(result.Target.TagNames, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Match:  %s\n", result.MatchType))

	if len(result.Matches) > 0 {
		sb.WriteString("\n")
	}
	for i, m := range result.Matches {
		sb.WriteString(fmt.Sprintf("#%-2d %.2f  [%s] %s (%s)\n", i+1, m.SimilarityScore, m.Job.Company, m.Job.Title, m.Job.ID))
	}

	p.printBox("SIMILAR JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOverview outputs job counts and salary ranges per company.
func (p *Printer) PrintOverview(o *stats.Overview) {
	if o == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs: %d\n\n", o.TotalJobs))
	for _, c := range sortedCompanies(o.Companies) {
		co := o.Companies[c]
		sb.WriteString(fmt.Sprintf("%-12s %5d jobs  avg %s  range %s - %s\n",
			c, co.TotalJobs, money(co.AvgSalary), money(co.SalaryRange.Min), money(co.SalaryRange.Max)))
	}

	p.printBox("MARKET OVERVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompanyAnalysis outputs salary spread and top tags per company.
func (p *Printer) PrintCompanyAnalysis(analysis map[types.Company]stats.CompanyAnalysis) {
	if len(analysis) == 0 {
		return
	}

	var sb strings.Builder
	companies := sortedCompanies(analysis)
	for i, c := range companies {
		a := analysis[c]
		sb.WriteString(fmt.Sprintf("%s (%d jobs)\n", c, a.TotalJobs))
		sb.WriteString(fmt.Sprintf("  Salary: avg %s  median %s\n", money(a.AvgSalary), money(a.SalaryDistribution.Median)))
		count := min(len(a.TopTags), maxItemsToShow)
		for j := 0; j < count; j++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", a.TopTags[j].Name, a.TopTags[j].Count))
		}
		if i < len(companies)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("COMPANY ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompetitiveness outputs how one company compares with the rest.
func (p *Printer) PrintCompetitiveness(c *stats.Competitiveness) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Market share: %d of %d jobs (%.1f%%)\n",
		c.MarketShare.FocalJobs, c.MarketShare.TotalJobs, c.MarketShare.Percentage))
	sb.WriteString(fmt.Sprintf("Avg salary:   %s vs %s\n",
		money(c.SalaryComparison.FocalAvg), money(c.SalaryComparison.CompetitorAvg)))
	sb.WriteString(fmt.Sprintf("Median:       %s vs %s\n",
		money(c.SalaryComparison.FocalMedian), money(c.SalaryComparison.CompetitorMedian)))
	sb.WriteString(fmt.Sprintf("\nShared tags:      %d\n", len(c.TagAnalysis.OverlapTags)))
	sb.WriteString(fmt.Sprintf("Only %-12s %d\n", string(c.Company)+":", len(c.TagAnalysis.UniqueFocalTags)))
	sb.WriteString(fmt.Sprintf("Only competitors: %d", len(c.TagAnalysis.UniqueCompetitorTags)))

	p.printBox(strings.ToUpper(string(c.Company))+" COMPETITIVENESS", sb.String())
}

// sortedCompanies returns the keys of m in company priority order.
func sortedCompanies[V any](m map[types.Company]V) []types.Company {
	out := make([]types.Company, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Priority() < out[j].Priority() })
	return out
}
