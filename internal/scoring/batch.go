package scoring

import "jobsift/internal/types"

// ScoredJob pairs a listing with its scoring outcome.
type ScoredJob struct {
	Job    types.JobRecord `json:"job"`
	Result Result          `json:"result"`
}

// ScoreJobs scores a batch of listings in input order.
func ScoreJobs(jobs []types.JobRecord) []ScoredJob {
	scored := make([]ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		scored = append(scored, ScoredJob{
			Job:    job,
			Result: ScoreJob(job.Title, job.Description),
		})
	}
	return scored
}

// Summary aggregates classification counts over a scored batch.
type Summary struct {
	Total   int `json:"total"`
	Apply   int `json:"apply"`
	Stretch int `json:"stretch"`
	Ignore  int `json:"ignore"`
}

// Summarize tallies a scored batch by classification.
func Summarize(scored []ScoredJob) Summary {
	s := Summary{Total: len(scored)}
	for _, sj := range scored {
		switch sj.Result.Classification {
		case ClassApply:
			s.Apply++
		case ClassStretch:
			s.Stretch++
		default:
			s.Ignore++
		}
	}
	return s
}
