package parsing

import "strings"

// degreeLevels maps degree keywords to ordinal education levels.
// Substring search means broader keywords also fire inside longer ones
// ("undergraduate" contains "graduate"); taking the maximum across all
// matches keeps the highest level regardless.
var degreeLevels = map[string]int{
	"high school":   1,
	"associate":     2,
	"diploma":       2,
	"bachelor":      3,
	"bs":            3,
	"ba":            3,
	"undergraduate": 3,
	"master":        4,
	"mba":           4,
	"graduate":      4,
	"phd":           5,
	"doctorate":     5,
}

// BachelorLevel is the ordinal level of a bachelor's degree, assumed as the
// implicit requirement when a job posting omits education requirements.
const BachelorLevel = 3

// DegreeLevel returns the highest education level named anywhere in the
// given free text, or 0 when no degree keyword is present.
func DegreeLevel(text string) int {
	lower := strings.ToLower(text)
	level := 0
	for keyword, score := range degreeLevels {
		if strings.Contains(lower, keyword) && score > level {
			level = score
		}
	}
	return level
}
