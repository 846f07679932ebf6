package scoring

import (
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// ExperienceMatch scores the candidate's total experience against the job's
// required years. Meeting or exceeding the requirement scores 100; no
// derivable experience scores 0; anything in between earns proportional
// credit.
func ExperienceMatch(job types.JobRequirements, candidate types.CandidateProfile) float64 {
	requiredYears := parsing.RequiredYears(job.YearsOfExperience)
	candidateYears := parsing.TotalYears(candidate.Experience)

	switch {
	case candidateYears >= requiredYears:
		return 100.0
	case candidateYears <= 0:
		return 0.0
	default:
		return candidateYears / requiredYears * 100.0
	}
}
