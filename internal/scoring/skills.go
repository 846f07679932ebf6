// Package scoring implements the deterministic ATS match computation between
// a structured job requirement record and a structured candidate profile.
package scoring

import "strings"

// Partial credit awarded when a required skill only matches a candidate
// skill at the substring level.
const partialSkillCredit = 0.5

// SkillMatch returns the match percentage (0-100) between a required skill
// set and a candidate skill set. Inputs are expected lower-cased; duplicates
// collapse so the denominator is the true set size.
//
// An empty required set is a vacuous match (100). Each required skill earns
// full credit on an exact match, otherwise half credit when it contains or is
// contained by any candidate skill. Only the first substring match counts;
// a required skill appearing inside several candidate skills earns no extra
// credit. That first-match-only rule is intentional, changing it would
// silently shift scores.
func SkillMatch(required, candidate []string) float64 {
	requiredSet := dedupe(required)
	if len(requiredSet) == 0 {
		return 100.0
	}

	candidateSet := make(map[string]bool, len(candidate))
	for _, skill := range candidate {
		candidateSet[skill] = true
	}

	credits := 0.0
	for _, req := range requiredSet {
		if candidateSet[req] {
			credits += 1.0
			continue
		}
		for cand := range candidateSet {
			if strings.Contains(cand, req) || strings.Contains(req, cand) {
				credits += partialSkillCredit
				break
			}
		}
	}

	score := credits / float64(len(requiredSet)) * 100.0
	if score > 100.0 {
		score = 100.0
	}
	return score
}

// dedupe collapses duplicate entries, preserving first-seen order and
// dropping empties.
func dedupe(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		out = append(out, skill)
	}
	return out
}
