package scoring

import (
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// EducationMatch scores the candidate's highest degree against the posting's
// education requirement. A posting that names no degree implicitly wants a
// bachelor's. A candidate at or above the required level scores 100, one
// with no recognizable degree scores 0, and anything in between earns
// linear partial credit.
func EducationMatch(requiredText string, education []types.EducationEntry) float64 {
	requiredLevel := parsing.DegreeLevel(requiredText)
	if requiredLevel == 0 {
		requiredLevel = parsing.BachelorLevel
	}

	candidateLevel := 0
	for _, entry := range education {
		if level := parsing.DegreeLevel(entry.Degree); level > candidateLevel {
			candidateLevel = level
		}
	}

	switch {
	case candidateLevel >= requiredLevel:
		return 100.0
	case candidateLevel == 0:
		return 0.0
	default:
		return float64(candidateLevel) / float64(requiredLevel) * 100.0
	}
}
