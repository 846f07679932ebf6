package scoring

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
)

// Weights for the composite ATS score. Skills dominate, experience is
// second, education/keywords/title act as tie-breakers. These are fixed
// design constants, not configuration.
const (
	skillWeight      = 0.40
	experienceWeight = 0.30
	educationWeight  = 0.15
	keywordWeight    = 0.10
	titleWeight      = 0.05

	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3
)

// neutralScore is substituted for every sub-score when scoring faults.
const neutralScore = 50.0

// Scorer computes deterministic ATS scores for (job, candidate) pairs.
// Scoring is a pure in-memory computation; the zero-configuration Scorer
// only carries a logger for fault reporting.
type Scorer struct {
	logger *zap.Logger
}

// NewScorer creates a Scorer. A nil logger disables fault logging.
func NewScorer(logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{logger: logger}
}

// Score computes the composite ATS score for one (job, candidate) pair.
// It never fails: any internal fault is recovered at this boundary and
// replaced by a neutral fallback result so a batch run cannot be aborted
// by a single malformed profile.
func (s *Scorer) Score(job types.JobRequirements, candidate types.CandidateProfile) (result types.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scoring fault, substituting neutral fallback",
				zap.Any("panic", r),
				zap.String("candidate", candidate.Name),
			)
			result = FallbackResult()
		}
	}()

	requiredSkills := lowerAll(job.RequiredSkills)
	preferredSkills := lowerAll(job.PreferredSkills)
	candidateSkills := candidate.LowerSkills()

	skillMatch := requiredSkillWeight*SkillMatch(requiredSkills, candidateSkills) +
		preferredSkillWeight*SkillMatch(preferredSkills, candidateSkills)

	experienceMatch := ExperienceMatch(job, candidate)
	educationMatch := EducationMatch(job.EducationRequirements, candidate.Education)
	keywordDensity := KeywordDensity(job, candidate)
	titleMatch := TitleMatch(strings.ToLower(job.JobTitle), candidate.Experience)

	atsScore := skillWeight*skillMatch +
		experienceWeight*experienceMatch +
		educationWeight*educationMatch +
		keywordWeight*keywordDensity +
		titleWeight*titleMatch
	if atsScore > 100.0 {
		atsScore = 100.0
	}

	matching, missing := splitSkills(job.AllSkills(), candidateSkills)

	return types.ScoreResult{
		ATSScore:        atsScore,
		SkillMatch:      skillMatch,
		ExperienceMatch: experienceMatch,
		EducationMatch:  educationMatch,
		KeywordDensity:  keywordDensity,
		TitleMatch:      titleMatch,
		MatchingSkills:  matching,
		MissingSkills:   missing,
	}
}

// FallbackResult is the neutral result substituted when scoring faults:
// every sub-score at 50 and empty skill lists.
func FallbackResult() types.ScoreResult {
	return types.ScoreResult{
		ATSScore:        neutralScore,
		SkillMatch:      neutralScore,
		ExperienceMatch: neutralScore,
		EducationMatch:  neutralScore,
		KeywordDensity:  neutralScore,
		TitleMatch:      neutralScore,
		MatchingSkills:  []string{},
		MissingSkills:   []string{},
		Fallback:        true,
	}
}

// splitSkills partitions the job's skill universe into skills the candidate
// holds exactly and skills absent from the profile. Output is sorted for
// stable presentation.
func splitSkills(jobSkills, candidateSkills []string) (matching, missing []string) {
	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[skill] = true
	}

	matching = make([]string, 0, len(jobSkills))
	missing = make([]string, 0, len(jobSkills))
	for _, skill := range jobSkills {
		if candidateSet[skill] {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)
	return matching, missing
}

// lowerAll lower-cases and trims a skill list, dropping empties.
func lowerAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if lower != "" {
			out = append(out, lower)
		}
	}
	return out
}
