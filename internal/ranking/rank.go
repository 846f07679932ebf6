// Package ranking converts scored candidates into a stable composite ranking
// with simple comparative statistics over the top of the pool.
package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// Weights for the composite ranking score. The ATS score dominates, the
// skill sub-score is counted a second time, experience and education act
// as tie-breakers. Fixed design constants, not configuration.
const (
	atsWeight        = 0.5
	skillWeight      = 0.3
	experienceWeight = 0.1
	educationWeight  = 0.1
)

// The authenticity factor discounts candidates flagged as likely
// AI-generated: factor = base + range × score keeps it in [0.8, 1.2].
const (
	authenticityBase    = 0.8
	authenticityRange   = 0.4
	defaultAuthenticity = 0.5
)

// Rank orders candidates by composite score, descending, preserving input
// order among ties. The per-candidate ScoreResult is never modified; the
// composite lands on the RankedCandidate wrapper. An empty pool is a normal
// outcome and returns an explanatory message rather than an error.
func Rank(candidates []types.ScoredCandidate) types.RankedList {
	if len(candidates) == 0 {
		return types.RankedList{
			Ranked:  []types.RankedCandidate{},
			Message: "No candidates to rank.",
		}
	}

	ranked := make([]types.RankedCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, types.RankedCandidate{
			ScoredCandidate: candidate,
			CompositeScore:  compositeScore(candidate),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompositeScore > ranked[j].CompositeScore
	})

	return types.RankedList{
		Ranked:   ranked,
		Insights: buildInsights(ranked),
	}
}

// compositeScore blends the ATS sub-scores and applies the authenticity
// discount, rounded to two decimals and capped at 100.
func compositeScore(candidate types.ScoredCandidate) float64 {
	authenticity := defaultAuthenticity
	if candidate.Candidate.AuthenticityScore != nil {
		authenticity = *candidate.Candidate.AuthenticityScore
	}
	factor := authenticityBase + authenticityRange*authenticity

	score := candidate.Score
	composite := (atsWeight*score.ATSScore +
		skillWeight*score.SkillMatch +
		experienceWeight*score.ExperienceMatch +
		educationWeight*score.EducationMatch) * factor

	composite = math.Round(composite*100) / 100
	if composite > 100.0 {
		composite = 100.0
	}
	return composite
}
