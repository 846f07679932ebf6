package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// topCandidateCount bounds the comparative statistics window.
const topCandidateCount = 5

// significantSpreadYears flags a notable experience gap across top candidates.
const significantSpreadYears = 3.0

// maxListedSkills limits how many skills a key-difference line names.
const maxListedSkills = 3

// buildInsights computes comparative statistics over the top candidates:
// skills every one of them matched, gaps across the pool, and the spread of
// inferred experience years.
func buildInsights(ranked []types.RankedCandidate) types.RankingInsights {
	top := ranked
	if len(top) > topCandidateCount {
		top = top[:topCandidateCount]
	}
	if len(top) == 0 {
		return types.RankingInsights{}
	}

	common := commonMatchingSkills(top)
	gaps := unionMissingSkills(top)

	minYears, maxYears := experienceBounds(top)
	insights := types.RankingInsights{
		CommonSkills:       common,
		SharedGaps:         gaps,
		MinExperienceYears: minYears,
		MaxExperienceYears: maxYears,
		SignificantSpread:  maxYears-minYears >= significantSpreadYears,
	}
	insights.KeyDifferences = keyDifferences(insights, len(top))
	return insights
}

// commonMatchingSkills intersects the matched-skill sets of the top
// candidates, sorted for stable output.
func commonMatchingSkills(top []types.RankedCandidate) []string {
	counts := make(map[string]int)
	for _, candidate := range top {
		for _, skill := range candidate.Score.MatchingSkills {
			counts[skill]++
		}
	}

	common := make([]string, 0)
	for skill, count := range counts {
		if count == len(top) {
			common = append(common, skill)
		}
	}
	sort.Strings(common)
	return common
}

// unionMissingSkills collects every skill missing from at least one top
// candidate, sorted for stable output.
func unionMissingSkills(top []types.RankedCandidate) []string {
	seen := make(map[string]bool)
	union := make([]string, 0)
	for _, candidate := range top {
		for _, skill := range candidate.Score.MissingSkills {
			if !seen[skill] {
				seen[skill] = true
				union = append(union, skill)
			}
		}
	}
	sort.Strings(union)
	return union
}

// experienceBounds returns the min and max inferred experience years.
func experienceBounds(top []types.RankedCandidate) (minYears, maxYears float64) {
	for i, candidate := range top {
		years := parsing.TotalYears(candidate.Candidate.Experience)
		if i == 0 || years < minYears {
			minYears = years
		}
		if i == 0 || years > maxYears {
			maxYears = years
		}
	}
	return minYears, maxYears
}

// keyDifferences renders the statistics as short comparison lines.
func keyDifferences(insights types.RankingInsights, poolSize int) []string {
	if poolSize < 2 {
		return []string{"Not enough candidates to compare differences."}
	}

	differences := make([]string, 0, 3)
	if len(insights.CommonSkills) > 0 {
		differences = append(differences,
			fmt.Sprintf("All top candidates possess: %s", joinLimited(insights.CommonSkills)))
	}
	if len(insights.SharedGaps) > 0 {
		differences = append(differences,
			fmt.Sprintf("Skills lacking across candidates: %s", joinLimited(insights.SharedGaps)))
	}
	if insights.SignificantSpread {
		differences = append(differences,
			fmt.Sprintf("Significant experience gap: from %.1f to %.1f years",
				insights.MinExperienceYears, insights.MaxExperienceYears))
	}
	return differences
}

func joinLimited(skills []string) string {
	if len(skills) > maxListedSkills {
		skills = skills[:maxListedSkills]
	}
	return strings.Join(skills, ", ")
}
