package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestPrintJobRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobRequirements{
		JobTitle:          "Senior Data Engineer",
		SeniorityLevel:    "senior",
		YearsOfExperience: "5+ years",
		RequiredSkills:    []string{"Python", "SQL", "Airflow"},
		PreferredSkills:   []string{"Spark"},
	}

	p.PrintJobRequirements(job)
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENTS")
	assert.Contains(t, output, "Senior Data Engineer")
	assert.Contains(t, output, "5+ years")
	assert.Contains(t, output, "Python")
	assert.Contains(t, output, "Spark")
}

func TestPrintJobRequirements_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirements(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScoreResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScoreResult{
		ATSScore:        72.5,
		SkillMatch:      80,
		ExperienceMatch: 60,
		EducationMatch:  100,
		KeywordDensity:  50,
		TitleMatch:      66.7,
		MatchingSkills:  []string{"python", "sql"},
		MissingSkills:   []string{"docker"},
	}

	p.PrintScoreResult("Jane Doe", result)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE SCORE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "72.5")
	assert.Contains(t, output, "python, sql")
	assert.Contains(t, output, "docker")
	assert.NotContains(t, output, "fallback")
}

func TestPrintScoreResult_Fallback(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScoreResult{ATSScore: 50, Fallback: true}

	p.PrintScoreResult("Broken", result)

	assert.Contains(t, buf.String(), "fallback scores")
}

func TestPrintRankedList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	list := &types.RankedList{
		Ranked: []types.RankedCandidate{
			{
				ScoredCandidate: types.ScoredCandidate{
					Candidate: types.CandidateProfile{Name: "Alice"},
					Score: types.ScoreResult{
						ATSScore:       80,
						MatchingSkills: []string{"go", "postgres"},
					},
				},
				CompositeScore: 74.25,
			},
			{
				ScoredCandidate: types.ScoredCandidate{
					Candidate: types.CandidateProfile{Name: "Bob"},
					Score:     types.ScoreResult{ATSScore: 55},
				},
				CompositeScore: 51.0,
			},
		},
	}

	p.PrintRankedList(list)
	output := buf.String()

	assert.Contains(t, output, "RANKED CANDIDATES")
	assert.Contains(t, output, "#1  Alice")
	assert.Contains(t, output, "74.25")
	assert.Contains(t, output, "go, postgres")
	assert.Contains(t, output, "#2  Bob")
}

func TestPrintRankedList_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedList(&types.RankedList{})

	assert.Empty(t, buf.String())
}

func TestPrintInsights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	insights := &types.RankingInsights{
		CommonSkills:       []string{"python"},
		SharedGaps:         []string{"kubernetes"},
		MinExperienceYears: 2.0,
		MaxExperienceYears: 7.5,
		SignificantSpread:  true,
		KeyDifferences:     []string{"Experience ranges from 2.0 to 7.5 years"},
	}

	p.PrintInsights(insights)
	output := buf.String()

	assert.Contains(t, output, "POOL INSIGHTS")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "kubernetes")
	assert.Contains(t, output, "2.0 to 7.5 years")
}
