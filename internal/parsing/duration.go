// Package parsing provides lenient free-text parsers for resume and job posting fields.
//
// Every parser in this package resolves a failed match to a documented
// default instead of returning an error: resume data arrives from
// inconsistent extractors and a single malformed entry must never abort
// a batch screening run.
package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
)

var (
	yearsPhrasePattern  = regexp.MustCompile(`(\d+\.?\d*)\s*years?`)
	monthsPhrasePattern = regexp.MustCompile(`(\d+\.?\d*)\s*months?`)
	calendarYearPattern = regexp.MustCompile(`(\d{4})`)
	monthNamePattern    = regexp.MustCompile(`(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`)
)

// monthOrdinals maps three-letter month abbreviations to calendar months.
var monthOrdinals = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// defaultMonth is assumed when a date names a year but no month (mid-year).
const defaultMonth = 6

// now is the clock used to close open-ended date ranges; tests override it.
var now = time.Now

// TotalYears sums the duration of every experience entry, in years.
// An entry contributes via its free-text Duration when present, otherwise
// via its StartDate/EndDate pair. Unparseable entries contribute 0 and
// negative spans (reversed or corrupt dates) are discarded.
func TotalYears(entries []types.ExperienceEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		if strings.TrimSpace(entry.Duration) != "" {
			total += durationYears(entry.Duration)
			continue
		}
		total += dateRangeYears(entry.StartDate, entry.EndDate)
	}
	return total
}

// durationYears parses phrases like "2 years", "18 months" or "2 years 3 months".
// Either component may be absent; neither matching yields 0.
func durationYears(duration string) float64 {
	lower := strings.ToLower(duration)

	years := 0.0
	if m := yearsPhrasePattern.FindStringSubmatch(lower); m != nil {
		years, _ = strconv.ParseFloat(m[1], 64)
	}
	months := 0.0
	if m := monthsPhrasePattern.FindStringSubmatch(lower); m != nil {
		months, _ = strconv.ParseFloat(m[1], 64)
	}
	return years + months/12.0
}

// dateRangeYears derives a span from free-text start and end dates. A 4-digit
// year is required on both ends (the current date substitutes for an absent or
// present-tense end); month names are optional and default to mid-year.
func dateRangeYears(startDate, endDate string) float64 {
	startYear, ok := extractYear(startDate)
	if !ok {
		return 0
	}
	startMonth := extractMonth(startDate)

	var endYear, endMonth int
	lowerEnd := strings.ToLower(endDate)
	if endDate == "" || strings.Contains(lowerEnd, "present") || strings.Contains(lowerEnd, "current") {
		current := now()
		endYear = current.Year()
		endMonth = int(current.Month())
	} else {
		var ok bool
		endYear, ok = extractYear(endDate)
		if !ok {
			return 0
		}
		endMonth = extractMonth(endDate)
	}

	years := float64(endYear-startYear) + float64(endMonth-startMonth)/12.0
	if years < 0 {
		return 0
	}
	return years
}

// extractYear finds the first 4-digit year in a free-text date.
func extractYear(date string) (int, bool) {
	m := calendarYearPattern.FindStringSubmatch(date)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

// extractMonth finds the first month-name abbreviation in a free-text date,
// defaulting to mid-year when no month is named.
func extractMonth(date string) int {
	m := monthNamePattern.FindStringSubmatch(strings.ToLower(date))
	if m == nil {
		return defaultMonth
	}
	return monthOrdinals[m[1]]
}
