package screening

import (
	"context"

	"github.com/jonathan/resume-screener/internal/types"
)

// Narrative is the human-readable supplement an external analyst may attach
// to a score. The numeric score fields never depend on it.
type Narrative struct {
	Analysis         string   `json:"analysis"`
	Strengths        []string `json:"strengths"`
	ImprovementAreas []string `json:"improvement_areas"`
}

// NarrativeAnalyst produces a narrative explanation for a scored candidate.
// Implementations live outside this module (typically LLM-backed); when the
// analyst errors or is absent the narrative simply stays empty.
type NarrativeAnalyst interface {
	Analyze(ctx context.Context, job types.JobRequirements, candidate types.CandidateProfile, score types.ScoreResult) (Narrative, error)
}

// AuthenticityDetector estimates how likely a profile's content is genuinely
// human-written, in [0, 1]. Implementations live outside this module; when
// the detector errors or is absent, ranking falls back to the neutral 0.5.
type AuthenticityDetector interface {
	DetectAuthenticity(ctx context.Context, candidate types.CandidateProfile) (float64, error)
}
