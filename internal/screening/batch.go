package screening

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// ScoreAll scores the whole pool concurrently over a bounded worker pool.
// Each candidate's result lands in its input slot, so output order matches
// input order regardless of completion order. Workers never propagate
// failures: a faulting task degrades its own candidate to the neutral
// fallback score without touching siblings.
func (s *Screener) ScoreAll(ctx context.Context, job types.JobRequirements, candidates []types.CandidateProfile) []types.ScoredCandidate {
	results := make([]types.ScoredCandidate, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range candidates {
		i := i
		g.Go(func() error {
			results[i] = s.scoreTask(gCtx, job, candidates[i])
			return nil
		})
	}
	// Workers always return nil; Wait only synchronizes.
	_ = g.Wait()

	fallbacks := 0
	for _, result := range results {
		if result.Score.Fallback {
			fallbacks++
		}
	}
	s.logger.Info("batch scoring complete",
		zap.Int("candidates", len(results)),
		zap.Int("fallbacks", fallbacks),
	)
	return results
}

// scoreTask scores one candidate, consulting the optional collaborators.
// Any fault escaping the scorer's own recovery boundary is converted here
// into this candidate's fallback result.
func (s *Screener) scoreTask(ctx context.Context, job types.JobRequirements, candidate types.CandidateProfile) (result types.ScoredCandidate) {
	candidate.EnsureID()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("screening task fault, substituting neutral fallback",
				zap.Any("panic", r),
				zap.String("candidate", candidate.Name),
			)
			result = types.ScoredCandidate{Candidate: candidate, Score: scoring.FallbackResult()}
		}
	}()

	if s.authenticity != nil && candidate.AuthenticityScore == nil {
		authenticity, err := s.authenticity.DetectAuthenticity(ctx, candidate)
		if err != nil {
			s.logger.Warn("authenticity detector failed, ranking will use the neutral default",
				zap.String("candidate", candidate.Name),
				zap.Error(err),
			)
		} else {
			candidate.AuthenticityScore = &authenticity
		}
	}

	score := s.scorer.Score(job, candidate)

	if s.narrative != nil {
		narrative, err := s.narrative.Analyze(ctx, job, candidate, score)
		if err != nil {
			s.logger.Warn("narrative analyst failed, numeric scores are unaffected",
				zap.String("candidate", candidate.Name),
				zap.Error(err),
			)
		} else {
			score.DetailedAnalysis = narrative.Analysis
			score.Strengths = narrative.Strengths
			score.ImprovementAreas = narrative.ImprovementAreas
		}
	}

	return types.ScoredCandidate{Candidate: candidate, Score: score}
}
