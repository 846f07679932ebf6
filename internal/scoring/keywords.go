package scoring

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// stopWords are excluded from the keyword universe.
var stopWords = map[string]bool{
	"and": true, "the": true, "to": true, "of": true, "for": true,
	"in": true, "a": true, "with": true, "on": true, "an": true,
	"this": true, "that": true, "be": true, "as": true,
}

// minKeywordLength drops tokens too short to be meaningful keywords.
const minKeywordLength = 3

// KeywordDensity measures what fraction of the job's keyword universe
// (required skills, preferred skills and critical keywords, minus stop words
// and short tokens) appears anywhere in the candidate's text corpus. Each
// keyword counts at most once. An empty universe is a vacuous match (100).
func KeywordDensity(job types.JobRequirements, candidate types.CandidateProfile) float64 {
	keywords := keywordUniverse(job)
	if len(keywords) == 0 {
		return 100.0
	}

	corpus := candidateCorpus(candidate)

	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(corpus, keyword) {
			matches++
		}
	}
	return float64(matches) / float64(len(keywords)) * 100.0
}

// keywordUniverse builds the deduplicated, filtered keyword set in
// first-seen order.
func keywordUniverse(job types.JobRequirements) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0)

	add := func(raw string) {
		keyword := strings.ToLower(strings.TrimSpace(raw))
		if len(keyword) < minKeywordLength || stopWords[keyword] || seen[keyword] {
			return
		}
		seen[keyword] = true
		keywords = append(keywords, keyword)
	}

	for _, skill := range job.RequiredSkills {
		add(skill)
	}
	for _, skill := range job.PreferredSkills {
		add(skill)
	}
	for _, keyword := range job.CriticalKeywords {
		add(keyword)
	}
	return keywords
}

// candidateCorpus concatenates the candidate's searchable text, lower-cased:
// skills, summary, and title/company/description of every experience entry.
func candidateCorpus(candidate types.CandidateProfile) string {
	var sb strings.Builder
	for _, skill := range candidate.Skills {
		sb.WriteString(skill)
		sb.WriteString(" ")
	}
	sb.WriteString(candidate.Summary)
	for _, exp := range candidate.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Company)
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
	}
	return strings.ToLower(sb.String())
}
