package types

// ScoreResult holds the composite ATS score and its sub-scores for one
// (job, candidate) pair. All scores are in [0, 100]. A ScoreResult is
// created once per pair and never mutated afterwards; ranking augments
// candidates with a separate composite score instead of editing it.
type ScoreResult struct {
	ATSScore        float64 `json:"ats_score"`
	SkillMatch      float64 `json:"skill_match"`
	ExperienceMatch float64 `json:"experience_match"`
	EducationMatch  float64 `json:"education_match"`
	KeywordDensity  float64 `json:"keyword_density"`
	TitleMatch      float64 `json:"title_match"`

	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`

	// Narrative fields are attached by an external LLM collaborator and
	// default to empty. The numeric fields above never depend on them.
	DetailedAnalysis string   `json:"detailed_analysis,omitempty"`
	Strengths        []string `json:"strengths,omitempty"`
	ImprovementAreas []string `json:"improvement_areas,omitempty"`

	// Fallback marks a result produced by the neutral-fallback path after
	// an internal scoring fault. All sub-scores are 50.0 in that case.
	Fallback bool `json:"fallback,omitempty"`
}

// ScoredCandidate pairs a candidate profile with its ScoreResult.
// This is the input shape consumed by the ranker.
type ScoredCandidate struct {
	Candidate CandidateProfile `json:"candidate"`
	Score     ScoreResult      `json:"score"`
}

// RankedCandidate is a scored candidate augmented with the ranker's
// composite score.
type RankedCandidate struct {
	ScoredCandidate
	CompositeScore float64 `json:"composite_score"`
}

// RankedList is the ordered output of a ranking request, sorted descending
// by composite score with input order preserved among ties. It is built
// fresh per request and never persisted.
type RankedList struct {
	Ranked   []RankedCandidate `json:"ranked"`
	Insights RankingInsights   `json:"insights"`

	// Message explains a normal-but-empty outcome, e.g. an empty pool.
	Message string `json:"message,omitempty"`
}

// RankingInsights holds simple comparative statistics over the top
// candidates (at most five).
type RankingInsights struct {
	// CommonSkills are matched by every top candidate.
	CommonSkills []string `json:"common_skills,omitempty"`
	// SharedGaps is the union of skills missing across top candidates.
	SharedGaps []string `json:"shared_gaps,omitempty"`

	MinExperienceYears float64 `json:"min_experience_years"`
	MaxExperienceYears float64 `json:"max_experience_years"`
	// SignificantSpread is set when the experience spread is at least three years.
	SignificantSpread bool `json:"significant_spread"`

	KeyDifferences []string `json:"key_differences,omitempty"`
}
