// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirements outputs a human-readable summary of the parsed job requirements.
func (p *Printer) PrintJobRequirements(job *types.JobRequirements) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:       %s\n", job.JobTitle))
	if job.SeniorityLevel != "" {
		sb.WriteString(fmt.Sprintf("Seniority:   %s\n", job.SeniorityLevel))
	}
	if job.YearsOfExperience != "" {
		sb.WriteString(fmt.Sprintf("Experience:  %s\n", job.YearsOfExperience))
	}
	sb.WriteString("\n")

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(job.PreferredSkills) > 0 {
		sb.WriteString("Preferred Skills:\n")
		count := min(len(job.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.PreferredSkills[i]))
		}
		if len(job.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.PreferredSkills)-3))
		}
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreResult outputs the score breakdown for a single candidate.
func (p *Printer) PrintScoreResult(name string, result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", name))
	if result.Fallback {
		sb.WriteString("(fallback scores; candidate could not be evaluated)\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("ATS Score:        %6.1f\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("  Skill Match:    %6.1f\n", result.SkillMatch))
	sb.WriteString(fmt.Sprintf("  Experience:     %6.1f\n", result.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("  Education:      %6.1f\n", result.EducationMatch))
	sb.WriteString(fmt.Sprintf("  Keywords:       %6.1f\n", result.KeywordDensity))
	sb.WriteString(fmt.Sprintf("  Title Match:    %6.1f\n", result.TitleMatch))

	if len(result.MatchingSkills) > 0 {
		skills := strings.Join(result.MatchingSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nMatched:  %s\n", skills))
	}
	if len(result.MissingSkills) > 0 {
		skills := strings.Join(result.MissingSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", skills))
	}

	p.printBox("CANDIDATE SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedList outputs the ranked candidates with composite scores.
func (p *Printer) PrintRankedList(list *types.RankedList) {
	if list == nil || len(list.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(list.Ranked)))

	count := min(len(list.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		ranked := list.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, ranked.Candidate.Name))
		sb.WriteString(fmt.Sprintf("    Composite: %.2f  (ATS: %.1f)\n", ranked.CompositeScore, ranked.Score.ATSScore))
		if len(ranked.Score.MatchingSkills) > 0 {
			skills := strings.Join(ranked.Score.MatchingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(list.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(list.Ranked)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintInsights outputs the pool-level comparison insights.
func (p *Printer) PrintInsights(insights *types.RankingInsights) {
	if insights == nil {
		return
	}

	var sb strings.Builder

	if len(insights.CommonSkills) > 0 {
		skills := strings.Join(insights.CommonSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Common skills:  %s\n", skills))
	}
	if len(insights.SharedGaps) > 0 {
		gaps := strings.Join(insights.SharedGaps, ", ")
		if len(gaps) > 45 {
			gaps = gaps[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Shared gaps:    %s\n", gaps))
	}
	sb.WriteString(fmt.Sprintf("Experience:     %.1f to %.1f years\n", insights.MinExperienceYears, insights.MaxExperienceYears))

	if len(insights.KeyDifferences) > 0 {
		sb.WriteString("\nKey Differences:\n")
		for _, diff := range insights.KeyDifferences {
			sb.WriteString(fmt.Sprintf("  • %s\n", diff))
		}
	}

	p.printBox("POOL INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}
