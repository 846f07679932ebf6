package scoring

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// neutralTitleScore is returned when either side has no title data.
const neutralTitleScore = 50.0

// recentTitleCount bounds how many positions are compared; entries arrive
// most-recent-first.
const recentTitleCount = 3

// TitleMatch computes the best Jaccard similarity (0-100) between the target
// job title and the candidate's most recent job titles, tokenized into
// lower-cased word sets. Missing data on either side yields a neutral 50.
func TitleMatch(jobTitle string, experience []types.ExperienceEntry) float64 {
	if jobTitle == "" || len(experience) == 0 {
		return neutralTitleScore
	}

	jobTokens := tokenSet(jobTitle)

	recent := experience
	if len(recent) > recentTitleCount {
		recent = recent[:recentTitleCount]
	}

	best := 0.0
	for _, entry := range recent {
		candidateTokens := tokenSet(entry.Title)

		union := make(map[string]bool, len(jobTokens)+len(candidateTokens))
		intersection := 0
		for token := range jobTokens {
			union[token] = true
		}
		for token := range candidateTokens {
			if jobTokens[token] {
				intersection++
			}
			union[token] = true
		}
		if len(union) == 0 {
			continue
		}

		similarity := float64(intersection) / float64(len(union)) * 100.0
		if similarity > best {
			best = similarity
		}
	}
	return best
}

// tokenSet splits a title into a set of lower-cased whitespace-separated words.
func tokenSet(title string) map[string]bool {
	tokens := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(title)) {
		tokens[word] = true
	}
	return tokens
}
