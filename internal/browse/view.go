package browse

import (
	"log"
	"slices"

	"github.com/jonathan/job-compare/internal/stats"
	"github.com/jonathan/job-compare/internal/types"
)

// view resolves tag names and salary for display. A positive limit truncates
// the description to that many runes plus "...".
func (s *Service) view(job *types.Job, limit int) types.JobView {
	v := types.JobView{
		ID:           job.ID,
		Company:      job.Company,
		Title:        job.Title,
		Description:  truncate(job.Description, limit),
		Location:     job.Location,
		Compensation: job.Compensation,
		URL:          job.URL,
		TagIDs:       slices.Clone(job.Tags),
		TagNames:     make([]string, 0, len(job.Tags)),
	}
	if v.TagIDs == nil {
		v.TagIDs = []int{}
	}

	for _, id := range job.Tags {
		name, err := s.registry.Name(id)
		if err != nil {
			log.Printf("[browse] %s/%s: %v", job.Company, job.ID, err)
			name = s.registry.DisplayName(id)
		}
		v.TagNames = append(v.TagNames, name)
	}

	if job.Compensation != nil {
		if r, ok := stats.ParseSalary(*job.Compensation); ok {
			avg := r.Avg()
			v.SalaryAvg = &avg
		}
	}
	return v
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
