package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreeLevel_Basic(t *testing.T) {
	assert.Equal(t, 1, DegreeLevel("High school education"))
	assert.Equal(t, 2, DegreeLevel("Associate degree in Nursing"))
	assert.Equal(t, 3, DegreeLevel("Bachelor of Science in Computer Science"))
	assert.Equal(t, 4, DegreeLevel("Master of Business Administration"))
	assert.Equal(t, 5, DegreeLevel("PhD in Machine Learning"))
}

func TestDegreeLevel_HighestKeywordWins(t *testing.T) {
	// Both "bachelor" and "master" present; the higher level wins.
	assert.Equal(t, 4, DegreeLevel("Bachelor's degree required, Master's preferred"))
}

func TestDegreeLevel_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 5, DegreeLevel("DOCTORATE"))
	assert.Equal(t, 4, DegreeLevel("mba"))
}

func TestDegreeLevel_NoKeyword(t *testing.T) {
	assert.Equal(t, 0, DegreeLevel(""))
	assert.Equal(t, 0, DegreeLevel("Self-taught"))
}

func TestDegreeLevel_UndergraduateContainsGraduate(t *testing.T) {
	// "undergraduate" embeds "graduate"; the max across matches is kept.
	assert.Equal(t, 4, DegreeLevel("Undergraduate degree"))
}
