// Package screening orchestrates batch candidate scoring and ranking.
//
// Scoring a single (job, candidate) pair is pure and synchronous; batches
// fan out over a bounded worker pool. A failure while scoring one candidate
// degrades that candidate to a neutral fallback score and never cancels or
// corrupts sibling tasks, so a ranking request always completes.
package screening

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// defaultWorkers bounds batch concurrency when no limit is configured.
const defaultWorkers = 4

// Options configures a Screener. All fields are optional.
type Options struct {
	// Workers bounds the scoring worker pool; <= 0 uses the default.
	Workers int
	// Narrative, when set, attaches narrative explanations to scores.
	Narrative NarrativeAnalyst
	// Authenticity, when set, supplies authenticity scores for ranking.
	Authenticity AuthenticityDetector
	// Logger receives fault and batch reporting; nil disables logging.
	Logger *zap.Logger
}

// Screener scores candidate pools against job requirements and ranks them.
type Screener struct {
	scorer       *scoring.Scorer
	narrative    NarrativeAnalyst
	authenticity AuthenticityDetector
	logger       *zap.Logger
	workers      int
}

// New creates a Screener.
func New(opts Options) *Screener {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Screener{
		scorer:       scoring.NewScorer(log),
		narrative:    opts.Narrative,
		authenticity: opts.Authenticity,
		logger:       log,
		workers:      workers,
	}
}

// Score computes the deterministic ATS score for one (job, candidate) pair.
// It never fails; internal faults degrade to the neutral fallback result.
func (s *Screener) Score(job types.JobRequirements, candidate types.CandidateProfile) types.ScoreResult {
	return s.scorer.Score(job, candidate)
}

// Rank scores every candidate in the pool and returns the stable composite
// ranking. An empty pool is a normal outcome, not an error.
func (s *Screener) Rank(ctx context.Context, job types.JobRequirements, candidates []types.CandidateProfile) types.RankedList {
	scored := s.ScoreAll(ctx, job, candidates)
	return ranking.Rank(scored)
}
