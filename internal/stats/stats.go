package stats

import (
	"sort"

	"github.com/jonathan/job-compare/internal/catalog"
	"github.com/jonathan/job-compare/internal/tags"
	"github.com/jonathan/job-compare/internal/types"
)

// TopTagLimit is the number of tags reported per company by Analyze.
const TopTagLimit = 10

// Bounds is a min/max pair; nil fields mean no salary data.
type Bounds struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// CompanyOverview is the per-company part of Overview.
type CompanyOverview struct {
	TotalJobs   int      `json:"total_jobs"`
	AvgSalary   *float64 `json:"avg_salary"`
	SalaryRange Bounds   `json:"salary_range"`
}

// Overview is the catalog-wide summary.
type Overview struct {
	TotalJobs int                               `json:"total_jobs"`
	Companies map[types.Company]CompanyOverview `json:"companies"`
}

// TagCount is one entry of a company's tag frequency table.
type TagCount struct {
	TagID int    `json:"tag_id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Distribution describes the salaries of one company.
type Distribution struct {
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Median *float64 `json:"median"`
}

// CompanyAnalysis is the detailed per-company view.
type CompanyAnalysis struct {
	TotalJobs          int          `json:"total_jobs"`
	AvgSalary          *float64     `json:"avg_salary"`
	SalaryStd          *float64     `json:"salary_std"`
	TopTags            []TagCount   `json:"top_tags"`
	SalaryDistribution Distribution `json:"salary_distribution"`
}

// SalaryComparison compares one company's salaries with everyone else's.
type SalaryComparison struct {
	FocalAvg         *float64 `json:"focal_avg"`
	CompetitorAvg    *float64 `json:"competitor_avg"`
	FocalMedian      *float64 `json:"focal_median"`
	CompetitorMedian *float64 `json:"competitor_median"`
}

// TagAnalysis splits the tag universe into shared and exclusive tags.
type TagAnalysis struct {
	OverlapTags          []string `json:"overlap_tags"`
	UniqueFocalTags      []string `json:"unique_focal_tags"`
	UniqueCompetitorTags []string `json:"unique_competitor_tags"`
}

// MarketShare is the focal company's share of all listings.
type MarketShare struct {
	FocalJobs  int     `json:"focal_jobs"`
	TotalJobs  int     `json:"total_jobs"`
	Percentage float64 `json:"percentage"`
}

// Competitiveness is the result of Compare.
type Competitiveness struct {
	Company          types.Company    `json:"company"`
	SalaryComparison SalaryComparison `json:"salary_comparison"`
	TagAnalysis      TagAnalysis      `json:"tag_analysis"`
	MarketShare      MarketShare      `json:"market_share"`
}

// salaries collects parsed ranges for jobs that have a compensation value.
type salaries struct {
	mins, maxs, avgs []float64
}

func (s *salaries) add(job *types.Job) {
	if job.Compensation == nil {
		return
	}
	r, ok := ParseSalary(*job.Compensation)
	if !ok {
		return
	}
	s.mins = append(s.mins, r.Min)
	s.maxs = append(s.maxs, r.Max)
	s.avgs = append(s.avgs, r.Avg())
}

func collect(jobs []types.Job) salaries {
	var s salaries
	for i := range jobs {
		s.add(&jobs[i])
	}
	return s
}

// ComputeOverview returns job counts and salary summaries per company.
func ComputeOverview(cat *catalog.Catalog) *Overview {
	out := &Overview{
		TotalJobs: cat.Len(),
		Companies: make(map[types.Company]CompanyOverview),
	}
	for _, company := range cat.Companies() {
		jobs := cat.Jobs(company)
		s := collect(jobs)
		out.Companies[company] = CompanyOverview{
			TotalJobs:   len(jobs),
			AvgSalary:   mean(s.avgs),
			SalaryRange: Bounds{Min: minOf(s.mins), Max: maxOf(s.maxs)},
		}
	}
	return out
}

// Analyze returns salary statistics and the most frequent tags per company.
func Analyze(cat *catalog.Catalog, reg *tags.Registry) map[types.Company]CompanyAnalysis {
	out := make(map[types.Company]CompanyAnalysis)
	for _, company := range cat.Companies() {
		jobs := cat.Jobs(company)
		s := collect(jobs)
		out[company] = CompanyAnalysis{
			TotalJobs: len(jobs),
			AvgSalary: mean(s.avgs),
			SalaryStd: sampleStdDev(s.avgs),
			TopTags:   topTags(jobs, reg, TopTagLimit),
			SalaryDistribution: Distribution{
				Min:    minOf(s.mins),
				Max:    maxOf(s.maxs),
				Median: median(s.avgs),
			},
		}
	}
	return out
}

func topTags(jobs []types.Job, reg *tags.Registry, limit int) []TagCount {
	counts := make(map[int]int)
	for i := range jobs {
		for _, id := range jobs[i].Tags {
			counts[id]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, TagCount{TagID: id, Name: reg.DisplayName(id), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].TagID < out[j].TagID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Compare measures focal against all other companies combined.
func Compare(cat *catalog.Catalog, reg *tags.Registry, focal types.Company) *Competitiveness {
	all := cat.Jobs("")
	focalJobs := cat.Jobs(focal)

	var focalSal, otherSal salaries
	focalTags := make(map[int]bool)
	otherTags := make(map[int]bool)
	for i := range all {
		job := &all[i]
		sal, set := &otherSal, otherTags
		if job.Company == focal {
			sal, set = &focalSal, focalTags
		}
		sal.add(job)
		for _, id := range job.Tags {
			set[id] = true
		}
	}

	var overlap, onlyFocal, onlyOther []int
	for id := range focalTags {
		if otherTags[id] {
			overlap = append(overlap, id)
		} else {
			onlyFocal = append(onlyFocal, id)
		}
	}
	for id := range otherTags {
		if !focalTags[id] {
			onlyOther = append(onlyOther, id)
		}
	}

	share := 0.0
	if len(all) > 0 {
		share = float64(len(focalJobs)) / float64(len(all)) * 100
	}

	return &Competitiveness{
		Company: focal,
		SalaryComparison: SalaryComparison{
			FocalAvg:         mean(focalSal.avgs),
			CompetitorAvg:    mean(otherSal.avgs),
			FocalMedian:      median(focalSal.avgs),
			CompetitorMedian: median(otherSal.avgs),
		},
		TagAnalysis: TagAnalysis{
			OverlapTags:          names(overlap, reg),
			UniqueFocalTags:      names(onlyFocal, reg),
			UniqueCompetitorTags: names(onlyOther, reg),
		},
		MarketShare: MarketShare{
			FocalJobs:  len(focalJobs),
			TotalJobs:  len(all),
			Percentage: share,
		},
	}
}

// names resolves ids in ascending order.
func names(ids []int, reg *tags.Registry) []string {
	sort.Ints(ids)
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, reg.DisplayName(id))
	}
	return out
}
