package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestTitleMatch_NeutralDefaults(t *testing.T) {
	assert.Equal(t, 50.0, TitleMatch("", []types.ExperienceEntry{{Title: "Engineer"}}))
	assert.Equal(t, 50.0, TitleMatch("software engineer", nil))
}

func TestTitleMatch_IdenticalTitle(t *testing.T) {
	score := TitleMatch("software engineer", []types.ExperienceEntry{
		{Title: "Software Engineer"},
	})

	assert.InDelta(t, 100.0, score, 0.001)
}

func TestTitleMatch_JaccardSimilarity(t *testing.T) {
	score := TitleMatch("data engineer", []types.ExperienceEntry{
		{Title: "Software Engineer"},
	})

	// Intersection {engineer}, union {data, software, engineer}.
	assert.InDelta(t, 100.0/3.0, score, 0.001)
}

func TestTitleMatch_BestOfRecentThree(t *testing.T) {
	score := TitleMatch("backend engineer", []types.ExperienceEntry{
		{Title: "Support Analyst"},
		{Title: "Backend Engineer"},
		{Title: "Barista"},
		{Title: "Backend Engineer"}, // beyond the recent-3 window, ignored
	})

	assert.InDelta(t, 100.0, score, 0.001)
}

func TestTitleMatch_OlderEntriesIgnored(t *testing.T) {
	score := TitleMatch("backend engineer", []types.ExperienceEntry{
		{Title: "Chef"},
		{Title: "Waiter"},
		{Title: "Cook"},
		{Title: "Backend Engineer"},
	})

	assert.Equal(t, 0.0, score)
}

func TestTitleMatch_EmptyEntryTitleSkipped(t *testing.T) {
	// The union with an empty candidate title is just the job tokens, so
	// similarity is 0; the entry does not crash the computation.
	score := TitleMatch("engineer", []types.ExperienceEntry{{Title: ""}})

	assert.Equal(t, 0.0, score)
}
